// Package cli executes one-shot subcommands for scripting: the same
// operations as the menu, without the interactive loop.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"taller-grafico/internal/app"
)

// Run executes a one-shot CLI command and returns.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "inventario", "inv":
		result, err := svc.GetInventory(ctx)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		printJSON(result)

	case "trabajos", "jobs":
		result, err := svc.ListJobs(ctx)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		printJSON(result)

	case "buscar", "b":
		if len(args) < 2 {
			log.Fatal("Uso: app buscar \"<producto>\"")
		}
		result, err := svc.SearchProduct(ctx, args[1])
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		printJSON(result)

	case "agregar", "add":
		if len(args) < 3 {
			log.Fatal("Uso: app agregar \"<producto>\" <cantidad>")
		}
		result, err := svc.AddInventory(ctx, app.AddInventoryRequest{
			Product:  args[1],
			Quantity: args[2],
		})
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("Producto '%s' — nueva cantidad: %s\n",
			result.Item.Product, result.NewQuantity.String())

	default:
		log.Fatalf("Comando desconocido: %s (use inventario, trabajos, buscar, agregar)", args[0])
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
