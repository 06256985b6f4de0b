package engine

import (
	"fmt"
	"os"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/sanitize"
)

// FixWidget rewrites a widget's document with every sanitizer correction
// applied, preserving the original encoding. It returns the number of changed
// lines; zero means the file was already in sanitized form and was left
// untouched.
func FixWidget(w registry.Widget) (int, error) {
	cfg, err := config.ParseFile(w.Path)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", w.Path, err)
	}

	sanitized := sanitize.Sanitize(cfg, w.Tier)
	corrections := CountCorrections(cfg, sanitized)
	if corrections == 0 {
		return 0, nil
	}

	data, err := config.Marshal(sanitized, config.DetectFormat(w.Path))
	if err != nil {
		return 0, fmt.Errorf("encoding sanitized document: %w", err)
	}

	if err := os.WriteFile(w.Path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", w.Path, err)
	}

	return corrections, nil
}
