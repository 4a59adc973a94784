package app

// RegisterJobRequest carries the raw user input for one job registration.
// All fields arrive unvalidated; the service normalizes and validates them.
type RegisterJobRequest struct {
	Client   string
	WorkType string
	// Primary is the sublimation surface (playera, taza or vidrio). It is
	// required for sublimado and ignored for other work types.
	Primary string
	// DueDate in dd-mm-yyyy.
	DueDate string
	// Quantity of material requested: vinil sheets for corte, surface units
	// for sublimado.
	Quantity string
}

// AddInventoryRequest carries raw input for a manual restock.
type AddInventoryRequest struct {
	Product  string
	Quantity string
}
