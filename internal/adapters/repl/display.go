package repl

import (
	"fmt"
	"strings"

	"taller-grafico/internal/app"
)

func printRegistered(result *app.RegisterJobResult) {
	fmt.Println("\n  ✓ Trabajo registrado exitosamente")
	fmt.Printf("    Cliente : %s\n", result.Job.Client)
	fmt.Printf("    Trabajo : %s\n", result.Job.WorkType)
	fmt.Printf("    Entrega : %s\n", result.Job.FormatDueDate())
	fmt.Println("    Materiales descontados:")
	for _, d := range result.Deductions {
		fmt.Printf("      %-18s -%s (restante: %s)\n",
			d.Product, d.Deducted.String(), d.Remaining.String())
	}
}

func printInventory(result *app.InventoryResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 46))
	fmt.Println("  INVENTARIO ALMACENADO")
	fmt.Println(strings.Repeat("=", 46))
	if len(result.Lines) == 0 {
		fmt.Println("  El almacén está vacío")
		fmt.Println(strings.Repeat("=", 46))
		return
	}
	fmt.Printf("  %-24s %12s\n", "PRODUCTO", "CANTIDAD")
	fmt.Println(strings.Repeat("-", 46))
	for _, line := range result.Lines {
		fmt.Printf("  %-24s %12s\n", line.Product, line.Quantity.String())
	}
	fmt.Println(strings.Repeat("-", 46))
	fmt.Printf("  %-24s %12s\n", "TOTAL DE UNIDADES", result.TotalUnits.String())
	fmt.Println(strings.Repeat("=", 46))
}

func printSearch(result *app.SearchResult) {
	fmt.Println()
	if result.Found {
		fmt.Println("  ✓ PRODUCTO ENCONTRADO")
		fmt.Printf("    Producto: %s\n", result.Product)
		fmt.Printf("    Cantidad en stock: %s unidades\n", result.Quantity.String())
		return
	}
	fmt.Printf("  ✗ El producto '%s' no está en el almacén\n", result.Product)
	if len(result.Available) > 0 {
		fmt.Println("  Productos disponibles:")
		for _, p := range result.Available {
			fmt.Printf("    - %s\n", p)
		}
	}
}

func printJobs(result *app.JobListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Println("  TRABAJOS REGISTRADOS")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Jobs) == 0 {
		fmt.Println("  No hay trabajos registrados")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-20s %-36s %s\n", "CLIENTE", "TRABAJO", "ENTREGA")
	fmt.Println(strings.Repeat("-", 72))
	for _, job := range result.Jobs {
		fmt.Printf("  %-20s %-36s %s\n", job.Client, job.WorkType, job.DueDate)
	}
	fmt.Println(strings.Repeat("-", 72))
	fmt.Printf("  Total de trabajos: %d\n", len(result.Jobs))
	fmt.Println(strings.Repeat("=", 72))
}
