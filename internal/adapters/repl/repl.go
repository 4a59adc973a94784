// Package repl is the interactive numbered-menu front end. It only reads
// input, calls the ApplicationService, and renders results — all business
// rules live behind the service.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"taller-grafico/internal/app"
)

var errExit = errors.New("salir")

// Run starts the menu loop. It returns when the user picks the exit option
// or input is closed (Ctrl-D / interrupt): one operation completes before
// the next begins, and no failure of a single operation ends the session.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("          SISTEMA DE GESTIÓN")
	fmt.Println("        Inventario y Trabajos")
	fmt.Println(strings.Repeat("=", 50))

	for {
		printMenu()
		option, err := prompt(reader, "\nIngrese su opción (1-6): ")
		if err != nil {
			fmt.Println("\nPrograma interrumpido por el usuario")
			return
		}

		if err := dispatch(ctx, svc, reader, option); err != nil {
			if errors.Is(err, errExit) {
				fmt.Println("\nGracias por usar el sistema")
				return
			}
			fmt.Printf("\n  ✗ %v\n", err)
		}
	}
}

func printMenu() {
	fmt.Println("\n" + strings.Repeat("-", 50))
	fmt.Println("  1. Registrar un trabajo")
	fmt.Println("  2. Agregar producto al inventario")
	fmt.Println("  3. Mostrar almacén completo")
	fmt.Println("  4. Buscar producto en almacén")
	fmt.Println("  5. Ver trabajos registrados")
	fmt.Println("  6. Salir")
	fmt.Println(strings.Repeat("-", 50))
}

func dispatch(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, option string) error {
	switch option {
	case "1":
		return registerJobWizard(ctx, svc, reader)
	case "2":
		return addInventoryWizard(ctx, svc, reader)
	case "3":
		result, err := svc.GetInventory(ctx)
		if err != nil {
			return err
		}
		printInventory(result)
	case "4":
		name, err := prompt(reader, "\nIngrese el nombre del producto a buscar: ")
		if err != nil {
			return errExit
		}
		result, serr := svc.SearchProduct(ctx, name)
		if serr != nil {
			return serr
		}
		printSearch(result)
	case "5":
		result, err := svc.ListJobs(ctx)
		if err != nil {
			return err
		}
		printJobs(result)
	case "6":
		return errExit
	default:
		fmt.Println("\n  Opción inválida. Por favor ingrese un número del 1 al 6.")
	}
	return nil
}

// prompt prints a label and reads one trimmed line. An error means the
// input stream ended.
func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
