package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/finrev/annotator/internal/annotate"
	"github.com/finrev/annotator/internal/config"
	"github.com/finrev/annotator/internal/engine"
)

func main() {
	// stdout carries only the success line; diagnostics go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "annotator: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "annotator: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	return engine.Run(cfg.LicenseKey, log, func(rt *engine.Runtime) error {
		doc, err := rt.Open(cfg.InputPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", cfg.InputPath, err)
		}
		defer doc.Close()

		opts := annotate.DefaultOptions(cfg.StampImagePath, cfg.OutputPath)
		if err := annotate.New(doc, opts, log).Run(); err != nil {
			return err
		}

		fmt.Printf("annotated report written to %s\n", cfg.OutputPath)
		return nil
	})
}
