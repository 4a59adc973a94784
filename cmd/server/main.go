package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"taller-grafico/internal/adapters/web"
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
		zl.Fatal().Err(err).Str("libro", cfg.Store.Path).Msg("no se pudo abrir el almacén")
	}

	ledger := core.NewLedger(wb)
	engine := core.NewDeductionEngine(ledger)
	svc := app.NewAppService(ledger, engine, wb, zl)

	fb := web.NewApp(svc, zl)

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		zl.Info().Msg("apagando servidor")
		_ = fb.Shutdown()
	}()

	zl.Info().Str("addr", cfg.HTTP.Addr()).Str("libro", wb.Path()).Msg("servidor iniciado")
	if err := fb.Listen(cfg.HTTP.Addr()); err != nil {
		zl.Fatal().Err(err).Msg("servidor terminó con error")
	}
}
