package engine

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/sanitize"
	"github.com/hullochat/hullo/pkg/diff"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

// CheckWidget inspects one registered widget's stored document: parse it,
// validate it as-is for the widget's tier, and compare it against its
// sanitized form. An unreadable or unparsable file is reported as broken,
// never as an error; checking is a status query, not a gate.
func CheckWidget(w registry.Widget) *registry.CheckResult {
	startTime := time.Now()

	cfg, err := config.ParseFile(w.Path)
	if err != nil {
		return &registry.CheckResult{
			WidgetID:    w.ID,
			Status:      registry.StatusBroken,
			Duration:    time.Since(startTime),
			CompletedAt: time.Now(),
			Error: &registry.ErrorDetail{
				Code:       "PARSE_FAILED",
				Message:    err.Error(),
				Context:    fmt.Sprintf("Config: %s", w.Path),
				Suggestion: "Check that the file exists and contains valid JSON or YAML",
			},
		}
	}

	result := &registry.CheckResult{WidgetID: w.ID}

	if err := config.Validate(cfg, w.Tier); err != nil {
		var vErr *hulloerrors.ValidationError
		if errors.As(err, &vErr) {
			for _, v := range vErr.Violations {
				result.Violations = append(result.Violations, fmt.Sprintf("%s: %s", v.FieldPath, v.Message))
			}
		} else {
			result.Violations = append(result.Violations, err.Error())
		}
	}

	sanitized := sanitize.Sanitize(cfg, w.Tier)
	result.Corrections = CountCorrections(cfg, sanitized)

	if len(result.Violations) == 0 && result.Corrections == 0 {
		result.Status = registry.StatusClean
	} else {
		result.Status = registry.StatusCorrectable
	}

	result.Duration = time.Since(startTime)
	result.CompletedAt = time.Now()
	return result
}

// CountCorrections measures how many marshaled lines sanitization rewrites.
func CountCorrections(original, sanitized *config.WidgetConfig) int {
	if reflect.DeepEqual(original, sanitized) {
		return 0
	}

	before, err := config.Marshal(original, config.FormatJSON)
	if err != nil {
		return 1
	}
	after, err := config.Marshal(sanitized, config.FormatJSON)
	if err != nil {
		return 1
	}

	changes := diff.CountChanges(before, after)
	if changes == 0 {
		// The documents differ but marshal identically (nil versus empty
		// containers). Still not clean.
		return 1
	}
	return changes
}
