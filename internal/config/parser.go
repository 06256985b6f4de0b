package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	hulloerrors "github.com/hullochat/hullo/pkg/errors"
)

// Format identifies a document encoding.
type Format string

const (
	// FormatJSON is the canonical wire format used by the dashboard.
	FormatJSON Format = "json"
	// FormatYAML is accepted for hand-edited files.
	FormatYAML Format = "yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DetectFormat picks a codec from the file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFile loads a widget configuration document from disk. The codec is
// chosen by extension. Parsing does not validate; validation needs a tier
// and runs as its own stage.
func ParseFile(path string) (*WidgetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, hulloerrors.NewParseError(path, 0, err)
	}

	return ParseBytes(data, DetectFormat(path), path)
}

// ParseBytes decodes a document from raw bytes. The path is only used to
// label errors.
func ParseBytes(data []byte, format Format, path string) (*WidgetConfig, error) {
	var cfg WidgetConfig

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, hulloerrors.NewParseError(path, extractYAMLLine(err), err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, hulloerrors.NewParseError(path, jsonErrorLine(data, err), err)
		}
	}

	return &cfg, nil
}

// Marshal encodes a document. JSON output is indented with two spaces to
// match what the dashboard stores.
func Marshal(cfg *WidgetConfig, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("encode config: %w", err)
		}
		return buf.Bytes(), nil
	}
}

func extractYAMLLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

// jsonErrorLine converts a byte offset from the JSON decoder into a
// 1-based line number.
func jsonErrorLine(data []byte, err error) int {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return 0
	}

	if offset <= 0 || offset > int64(len(data)) {
		return 0
	}

	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}
