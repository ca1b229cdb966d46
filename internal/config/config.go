package config

import (
	"fmt"
	"os"
)

type Config struct {
	// Annotation run paths
	InputPath      string
	OutputPath     string
	StampImagePath string

	// PDF engine runtime credential, required at startup.
	LicenseKey string
}

func Load() Config {
	return Config{
		InputPath:      envOr("ANNOTATOR_INPUT_PDF", "reports/q3-financial-report.pdf"),
		OutputPath:     envOr("ANNOTATOR_OUTPUT_PDF", "reports/q3-financial-report-annotated.pdf"),
		StampImagePath: envOr("ANNOTATOR_STAMP_IMAGE", "assets/review-seal.png"),
		LicenseKey:     os.Getenv("PDF_ENGINE_LICENSE_KEY"),
	}
}

func (c Config) Validate() error {
	if c.LicenseKey == "" {
		return fmt.Errorf("PDF_ENGINE_LICENSE_KEY is required")
	}
	if c.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.StampImagePath == "" {
		return fmt.Errorf("stamp image path must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
