// Package engine composes the four configuration stages into one pipeline:
// sanitize, validate, translate, build. Process is the path untrusted
// documents take on their way to a deployable variable set; Validate is the
// standalone gate for documents that must be checked without correction.
package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/logger"
	"github.com/hullochat/hullo/internal/sanitize"
	"github.com/hullochat/hullo/internal/theme"
	"github.com/hullochat/hullo/internal/tier"
	"github.com/hullochat/hullo/internal/translate"
	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

// Result carries the output of every pipeline stage. Sanitized is the
// corrected document (safe to persist), Runtime the nested configuration the
// widget consumes, Variables the flat cw-* set ready for CSS emission.
type Result struct {
	Sanitized *config.WidgetConfig
	Runtime   *translate.RuntimeConfig
	Variables *theme.Variables
	Duration  time.Duration
}

// Engine runs the configuration pipeline. The zero value is not usable;
// construct with New.
type Engine struct {
	log *logger.Logger
}

// New creates an Engine. A nil logger disables logging.
func New(log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{log: log}
}

// Process takes an untrusted document through the full pipeline. It never
// rejects input: sanitization corrects every malformed value, so the only
// error paths are internal invariant breaches.
func (e *Engine) Process(cfg *config.WidgetConfig, t tier.Tier) (*Result, error) {
	start := time.Now()

	sanitized := sanitize.Sanitize(cfg, t)
	e.log.WithStage("sanitize").Debug("document corrected")

	// The sanitizer output must always validate. A failure here is a bug in
	// the sanitizer, not in the document.
	if err := config.Validate(sanitized, t); err != nil {
		e.log.WithStage("validate").Error(err, "sanitized document failed validation")
		return nil, fmt.Errorf("sanitized document failed validation: %w", err)
	}
	e.log.WithStage("validate").Debug("document accepted")

	runtime := translate.Translate(sanitized)
	e.log.WithStage("translate").Debug("runtime configuration assembled")

	vars := theme.BuildVariables(runtime)
	e.log.WithStage("build").WithFields(map[string]any{"variables": vars.Len()}).Debug("variable set built")

	return &Result{
		Sanitized: sanitized,
		Runtime:   runtime,
		Variables: vars,
		Duration:  time.Since(start),
	}, nil
}

// Validate checks a document against structural rules and tier policy
// without correcting it. The returned error is a *ValidationError carrying
// the complete violation list.
func (e *Engine) Validate(cfg *config.WidgetConfig, t tier.Tier) error {
	err := config.Validate(cfg, t)
	if err == nil {
		e.log.WithStage("validate").Debug("document accepted")
		return nil
	}

	var vErr *hulloerrors.ValidationError
	if errors.As(err, &vErr) {
		e.log.WithStage("validate").WithFields(map[string]any{
			"violations": len(vErr.Violations),
		}).Debug("document rejected")
	}
	return err
}
