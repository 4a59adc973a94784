package main

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"taller-grafico/internal/adapters/cli"
	"taller-grafico/internal/adapters/repl"
	"taller-grafico/internal/app"
	"taller-grafico/internal/config"
	"taller-grafico/internal/core"
	"taller-grafico/internal/logger"
	"taller-grafico/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("No se pudo cargar la configuración: %v", err)
	}
	zl := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	wb, err := store.Open(cfg.Store.Path)
	if err != nil {
		log.Fatalf("No se pudo abrir el almacén %s: %v", cfg.Store.Path, err)
	}
	zl.Debug().Str("libro", wb.Path()).Msg("almacén listo")

	ledger := core.NewLedger(wb)
	engine := core.NewDeductionEngine(ledger)
	svc := app.NewAppService(ledger, engine, wb, zl)

	ctx := context.Background()
	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}
	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
