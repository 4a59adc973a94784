package web

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error body: a stable code plus a human-readable
// message naming the field or product and the rule violated.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterJobBody mirrors the job registration form. Cantidad arrives as a
// JSON number; it is revalidated as text so the service's quantity rules
// apply unchanged.
type RegisterJobBody struct {
	Cliente          string      `json:"cliente"`
	TrabajoPendiente string      `json:"trabajo_pendiente"`
	Producto         string      `json:"producto,omitempty"` // sublimation surface
	FechaEntrega     string      `json:"fecha_entrega"`
	Cantidad         json.Number `json:"cantidad"`
}

// AddInventoryBody mirrors the restock form.
type AddInventoryBody struct {
	Producto string      `json:"producto"`
	Cantidad json.Number `json:"cantidad"`
}

// DeductionLine reports one committed material deduction.
type DeductionLine struct {
	Producto   string          `json:"producto"`
	Descontado decimal.Decimal `json:"descontado"`
	Restante   decimal.Decimal `json:"restante"`
}

// RegisterJobResponse reports a settled, persisted job.
type RegisterJobResponse struct {
	Cliente          string          `json:"cliente"`
	TrabajoPendiente string          `json:"trabajo_pendiente"`
	FechaEntrega     string          `json:"fecha_entrega"`
	Materiales       []DeductionLine `json:"materiales"`
}

// AddInventoryResponse reports a committed restock.
type AddInventoryResponse struct {
	Producto      string          `json:"producto"`
	Agregado      decimal.Decimal `json:"agregado"`
	NuevaCantidad decimal.Decimal `json:"nueva_cantidad"`
	Creado        bool            `json:"creado"`
}

// InventoryLine is one row of the inventory listing.
type InventoryLine struct {
	Producto string          `json:"producto"`
	Cantidad decimal.Decimal `json:"cantidad"`
}

// InventoryResponse is the full stock listing.
type InventoryResponse struct {
	Productos     []InventoryLine `json:"productos"`
	TotalUnidades decimal.Decimal `json:"total_unidades"`
}

// SearchResponse reports a product lookup; Disponibles is filled on a miss.
type SearchResponse struct {
	Producto    string          `json:"producto"`
	Encontrado  bool            `json:"encontrado"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Disponibles []string        `json:"disponibles,omitempty"`
}

// JobLine is one persisted job.
type JobLine struct {
	Cliente          string `json:"cliente"`
	TrabajoPendiente string `json:"trabajo_pendiente"`
	FechaEntrega     string `json:"fecha_entrega"`
}

// JobListResponse is the persisted job log.
type JobListResponse struct {
	Trabajos []JobLine `json:"trabajos"`
	Total    int       `json:"total"`
}
