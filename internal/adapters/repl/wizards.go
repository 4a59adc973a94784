package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"time"

	"taller-grafico/internal/app"
	"taller-grafico/internal/core"
)

// registerJobWizard collects the fields for one job registration: client,
// work type (numbered selection), due date (defaults to today), the
// sublimation surface when applicable, and the requested quantity.
func registerJobWizard(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) error {
	fmt.Println("\n--- REGISTRAR TRABAJO ---")

	client, err := prompt(reader, "Ingrese el nombre del cliente: ")
	if err != nil {
		return errExit
	}

	fmt.Println("Tipos de trabajo:")
	for i, wt := range core.ValidWorkTypes {
		fmt.Printf("  %d. %s\n", i+1, wt)
	}
	workType, err := pickOption(reader, "Seleccione el tipo de trabajo (número): ", len(core.ValidWorkTypes))
	if err != nil {
		return err
	}
	selected := core.ValidWorkTypes[workType]

	today := time.Now().Format(core.DueDateLayout)
	dueDate, err := prompt(reader, fmt.Sprintf("Fecha de entrega (dd-mm-yyyy) [%s]: ", today))
	if err != nil {
		return errExit
	}
	if dueDate == "" {
		dueDate = today
	}

	req := app.RegisterJobRequest{
		Client:   client,
		WorkType: string(selected),
		DueDate:  dueDate,
	}

	switch selected {
	case core.WorkTypeSublimado:
		fmt.Println("Productos para sublimado:")
		for i, p := range core.SublimationProducts {
			fmt.Printf("  %d. %s\n", i+1, p)
		}
		pick, err := pickOption(reader, "Seleccione el producto (número): ", len(core.SublimationProducts))
		if err != nil {
			return err
		}
		req.Primary = string(core.SublimationProducts[pick])
		if req.Quantity, err = prompt(reader, "Cantidad: "); err != nil {
			return errExit
		}
	default:
		if req.Quantity, err = prompt(reader, "Cantidad de hojas de vinil: "); err != nil {
			return errExit
		}
	}

	result, err := svc.RegisterJob(ctx, req)
	if err != nil {
		return err
	}
	printRegistered(result)
	return nil
}

// addInventoryWizard collects a product (free text, validated by the
// service) and a quantity for a manual restock.
func addInventoryWizard(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) error {
	fmt.Println("\n--- AGREGAR AL INVENTARIO ---")
	fmt.Println("Productos válidos:")
	for i, p := range core.ValidProducts {
		fmt.Printf("  %d. %s\n", i+1, p)
	}

	product, err := prompt(reader, "Ingrese el nombre del producto: ")
	if err != nil {
		return errExit
	}
	quantity, err := prompt(reader, "Ingrese la cantidad: ")
	if err != nil {
		return errExit
	}

	result, err := svc.AddInventory(ctx, app.AddInventoryRequest{Product: product, Quantity: quantity})
	if err != nil {
		return err
	}
	if result.Created {
		fmt.Printf("\n  ✓ Producto '%s' agregado al almacén con cantidad: %s\n",
			result.Item.Product, result.NewQuantity.String())
	} else {
		fmt.Printf("\n  ✓ Producto '%s' actualizado en almacén. Nueva cantidad: %s\n",
			result.Item.Product, result.NewQuantity.String())
	}
	return nil
}

// pickOption reads a 1-based menu selection, re-prompting on bad input.
func pickOption(reader *bufio.Reader, label string, count int) (int, error) {
	for {
		raw, err := prompt(reader, label)
		if err != nil {
			return 0, errExit
		}
		n, err := strconv.Atoi(raw)
		if err == nil && n >= 1 && n <= count {
			return n - 1, nil
		}
		fmt.Printf("  Opción inválida. Ingrese un número del 1 al %d.\n", count)
	}
}
