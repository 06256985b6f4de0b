package main

import (
	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/logger"
)

// loadDocument resolves a document path and parses it. The returned path is
// absolute so log lines and output messages always show the real location.
func loadDocument(path string) (*config.WidgetConfig, string, error) {
	absPath, err := validateAndNormalizePath(path)
	if err != nil {
		return nil, "", err
	}

	cfg, err := config.ParseFile(absPath)
	if err != nil {
		return nil, "", err
	}

	return cfg, absPath, nil
}

func newCommandLogger(verbose bool) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}

	return logger.New(logger.Options{Level: level, Pretty: true})
}
