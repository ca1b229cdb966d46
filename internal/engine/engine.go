// Package engine adapts the third-party PDF libraries (pdfcpu for
// mutation and saving, ledongthuc/pdf for text geometry) to the document
// contract the annotation stages work against.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Runtime is the process-wide engine context: the pdfcpu configuration
// and a scratch directory holding working copies of open documents. It is
// created once per run and torn down exactly once on every exit path.
type Runtime struct {
	conf    *model.Configuration
	workDir string
	log     *slog.Logger
}

// Run initializes the engine runtime, invokes fn with it, and guarantees
// teardown regardless of how fn exits.
func Run(licenseKey string, log *slog.Logger, fn func(*Runtime) error) error {
	rt, err := start(licenseKey, log)
	if err != nil {
		return fmt.Errorf("engine init: %w", err)
	}
	defer rt.shutdown()

	return fn(rt)
}

func start(licenseKey string, log *slog.Logger) (*Runtime, error) {
	if licenseKey == "" {
		return nil, errors.New("missing engine license key")
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	workDir, err := os.MkdirTemp("", "annotator-*")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	return &Runtime{conf: conf, workDir: workDir, log: log}, nil
}

func (rt *Runtime) shutdown() {
	if err := os.RemoveAll(rt.workDir); err != nil {
		rt.log.Error("remove scratch dir", "dir", rt.workDir, "error", err)
	}
}
