package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spf13/cobra"
)

const validDoc = `{
  "widgetId": "wgt_acme",
  "branding": {
    "companyName": "Acme",
    "welcomeText": "Hi there",
    "firstMessage": "How can we help?"
  }
}`

// violatingDoc has no branding section and a shorthand accent color, so the
// validator reports it without the sanitizer getting a say.
const violatingDoc = `{
  "accentColor": "#F00"
}`

func writeGateDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidateInternal_ValidDocument(t *testing.T) {
	path := writeGateDoc(t, "widget.json", validDoc)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "pro",
	})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, stdout.String(), "✓ Document is valid for tier 'pro'")
}

func TestRunValidateInternal_Violations(t *testing.T) {
	path := writeGateDoc(t, "widget.json", violatingDoc)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "pro",
	})
	require.NoError(t, err)
	require.Equal(t, 1, code)
	require.Contains(t, stdout.String(), "FIELD")
	require.Contains(t, stdout.String(), "branding")
	require.Contains(t, stdout.String(), "accentColor")
	require.Contains(t, stdout.String(), "violation(s) found.")
}

func TestRunValidateInternal_ParseError(t *testing.T) {
	path := writeGateDoc(t, "broken.json", `{"branding": [`)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "pro",
	})
	require.NoError(t, err)
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "Error parsing configuration")
}

func TestRunValidateInternal_MissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: filepath.Join(t.TempDir(), "nope.json"),
		tierName:   "pro",
	})
	require.NoError(t, err)
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "Error parsing configuration")
}

func TestRunValidateInternal_UnknownTier(t *testing.T) {
	path := writeGateDoc(t, "widget.json", validDoc)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "platinum",
	})
	require.NoError(t, err)
	require.Equal(t, 2, code)
	require.Contains(t, stderr.String(), "Error:")
}

func TestRunValidateInternal_JSONValid(t *testing.T) {
	path := writeGateDoc(t, "widget.json", validDoc)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "basic",
		jsonOutput: true,
	})
	require.NoError(t, err)
	require.Equal(t, 0, code)

	var payload struct {
		Version    string `json:"version"`
		Tier       string `json:"tier"`
		Valid      bool   `json:"valid"`
		Violations []struct {
			FieldPath string `json:"fieldPath"`
			Rule      string `json:"rule"`
			Message   string `json:"message"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, "basic", payload.Tier)
	require.True(t, payload.Valid)
	require.Empty(t, payload.Violations)
}

func TestRunValidateInternal_JSONViolations(t *testing.T) {
	path := writeGateDoc(t, "widget.json", violatingDoc)

	var stdout, stderr bytes.Buffer
	code, err := runValidateInternal(&stdout, &stderr, &validateOptions{
		configPath: path,
		tierName:   "pro",
		jsonOutput: true,
	})
	require.NoError(t, err)
	require.Equal(t, 1, code)

	var payload struct {
		Valid      bool `json:"valid"`
		Violations []struct {
			FieldPath string `json:"fieldPath"`
			Rule      string `json:"rule"`
			Message   string `json:"message"`
		} `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &payload))
	require.False(t, payload.Valid)
	require.NotEmpty(t, payload.Violations)
	for _, v := range payload.Violations {
		require.NotEmpty(t, v.FieldPath)
		require.NotEmpty(t, v.Rule)
		require.NotEmpty(t, v.Message)
	}
}

func TestValidateCommand_ValidDocument(t *testing.T) {
	path := writeGateDoc(t, "widget.json", validDoc)

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"validate", path, "--tier", "pro"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), "✓ Document is valid")
}

func TestValidateCommand_FlagParsing(t *testing.T) {
	originalRunner := validateCmdRunner
	t.Cleanup(func() {
		validateCmdRunner = originalRunner
	})

	var captured *validateOptions
	validateCmdRunner = func(cmd *cobra.Command, opts *validateOptions) error {
		captured = opts
		return nil
	}

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"validate", "widget.json", "--tier", "agency", "--json", "--verbose"})

	require.NoError(t, root.Execute())
	require.NotNil(t, captured)
	require.Equal(t, "widget.json", captured.configPath)
	require.Equal(t, "agency", captured.tierName)
	require.True(t, captured.jsonOutput)
	require.True(t, captured.verbose)
}
