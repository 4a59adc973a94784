// Package web exposes the six shop operations as a JSON API: the same
// validation and persistence contracts as the menu, with enumerated fields
// rejected server-side.
package web

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"taller-grafico/internal/app"
	"taller-grafico/internal/core"
	"taller-grafico/internal/store"
)

// Handler serves the shop API over the ApplicationService.
type Handler struct {
	svc app.ApplicationService
	log zerolog.Logger
}

// NewHandler constructs the handler.
func NewHandler(svc app.ApplicationService, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Health reports liveness.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// RegisterJob handles POST /api/trabajos.
func (h *Handler) RegisterJob(c *fiber.Ctx) error {
	var body RegisterJobBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.svc.RegisterJob(c.Context(), app.RegisterJobRequest{
		Client:   body.Cliente,
		WorkType: body.TrabajoPendiente,
		Primary:  body.Producto,
		DueDate:  body.FechaEntrega,
		Quantity: body.Cantidad.String(),
	})
	if err != nil {
		return h.fail(c, err)
	}

	resp := RegisterJobResponse{
		Cliente:          result.Job.Client,
		TrabajoPendiente: string(result.Job.WorkType),
		FechaEntrega:     result.Job.FormatDueDate(),
	}
	for _, d := range result.Deductions {
		resp.Materiales = append(resp.Materiales, DeductionLine{
			Producto:   string(d.Product),
			Descontado: d.Deducted,
			Restante:   d.Remaining,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// AddInventory handles POST /api/inventario.
func (h *Handler) AddInventory(c *fiber.Ctx) error {
	var body AddInventoryBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.svc.AddInventory(c.Context(), app.AddInventoryRequest{
		Product:  body.Producto,
		Quantity: body.Cantidad.String(),
	})
	if err != nil {
		return h.fail(c, err)
	}

	status := fiber.StatusOK
	if result.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(AddInventoryResponse{
		Producto:      string(result.Item.Product),
		Agregado:      result.Item.Quantity,
		NuevaCantidad: result.NewQuantity,
		Creado:        result.Created,
	})
}

// GetInventory handles GET /api/inventario.
func (h *Handler) GetInventory(c *fiber.Ctx) error {
	result, err := h.svc.GetInventory(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	resp := InventoryResponse{TotalUnidades: result.TotalUnits}
	for _, line := range result.Lines {
		resp.Productos = append(resp.Productos, InventoryLine{
			Producto: string(line.Product),
			Cantidad: line.Quantity,
		})
	}
	return c.JSON(resp)
}

// SearchProduct handles GET /api/inventario/:producto. A miss answers 404
// with the stocked product names as suggestions.
func (h *Handler) SearchProduct(c *fiber.Ctx) error {
	name, err := urlParam(c, "producto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: "producto ilegible"})
	}

	result, err := h.svc.SearchProduct(c.Context(), name)
	if err != nil {
		return h.fail(c, err)
	}

	resp := SearchResponse{
		Producto:   string(result.Product),
		Encontrado: result.Found,
		Cantidad:   result.Quantity,
	}
	if !result.Found {
		for _, p := range result.Available {
			resp.Disponibles = append(resp.Disponibles, string(p))
		}
		return c.Status(fiber.StatusNotFound).JSON(resp)
	}
	return c.JSON(resp)
}

// ListJobs handles GET /api/trabajos.
func (h *Handler) ListJobs(c *fiber.Ctx) error {
	result, err := h.svc.ListJobs(c.Context())
	if err != nil {
		return h.fail(c, err)
	}

	resp := JobListResponse{Total: len(result.Jobs)}
	for _, job := range result.Jobs {
		resp.Trabajos = append(resp.Trabajos, JobLine{
			Cliente:          job.Client,
			TrabajoPendiente: job.WorkType,
			FechaEntrega:     job.DueDate,
		})
	}
	return c.JSON(resp)
}

// urlParam decodes a path parameter ("papel%20impresión" → "papel impresión").
func urlParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}

// fail maps domain errors to HTTP statuses: validation → 400, deduction
// aborts → 409, store failures → 500. The message always names the field
// or product and the rule violated.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrStoreIO):
		h.log.Error().Err(err).Str("path", c.Path()).Msg("fallo de almacenamiento")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "STORE_IO", Message: err.Error()})
	case errors.Is(err, core.ErrProductNotInInventory):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Code: "PRODUCT_NOT_IN_INVENTORY", Message: err.Error()})
	case errors.Is(err, core.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
}
