package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/stemsi/exstem-roster/internal/cli"
	"github.com/stemsi/exstem-roster/internal/config"
	"github.com/stemsi/exstem-roster/internal/handler"
	"github.com/stemsi/exstem-roster/internal/logger"
	"github.com/stemsi/exstem-roster/internal/repository"
	"github.com/stemsi/exstem-roster/internal/response"
	"github.com/stemsi/exstem-roster/internal/router"
	"github.com/stemsi/exstem-roster/internal/service"
	"github.com/stemsi/exstem-roster/internal/storage"
	"github.com/stemsi/exstem-roster/internal/validator"
	"golang.org/x/term"
	"golang.org/x/text/language"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("data_dir", cfg.DataDir).
		Str("restore_policy", string(cfg.RestorePolicy)).
		Str("locale", cfg.CollationLocale).
		Msg("Starting roster")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	locale, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		log.Warn().Err(err).Str("locale", cfg.CollationLocale).Msg("Unknown collation locale, using English")
		locale = language.English
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("Failed to create data directory")
	}

	// ─── Initialize Repository & Service ───────────────────────────────
	studentRepo := repository.NewStudentRepository(locale)
	store := storage.NewJSONFileStore(cfg.DataDir)
	studentService := service.NewStudentService(studentRepo, store, cfg, log)

	// ─── Initialize Handlers & Router ──────────────────────────────────
	out := response.NewPrinter(os.Stdout)
	r := router.SetupRouter(&router.Handlers{
		Student: handler.NewStudentHandler(studentService, out, log),
		System:  handler.NewSystemHandler(out),
	}, out, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompt := cfg.Prompt
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		prompt = ""
	}

	// ─── Run Session ───────────────────────────────────────────────────
	if err := cli.NewSession(r, os.Stdin, os.Stdout, prompt).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Reading input failed")
		os.Exit(1)
	}
}
