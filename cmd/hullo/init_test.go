package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hullochat/hullo/internal/config"
	"github.com/hullochat/hullo/internal/tier"
)

func executeInitCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"init"}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestInitCommand_CreatesDocument(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "hullo.json")

	stdout, err := executeInitCommand("-o", outPath)
	require.NoError(t, err)
	require.Contains(t, stdout, "✓ Created")
	require.Contains(t, stdout, "Widget ID:")

	cfg, err := config.ParseFile(outPath)
	require.NoError(t, err)
	require.NotNil(t, cfg.WidgetID)
	_, err = uuid.Parse(*cfg.WidgetID)
	require.NoError(t, err)

	require.NotNil(t, cfg.Branding)
	require.NotNil(t, cfg.Branding.CompanyName)
	require.Equal(t, config.DefaultCompanyName, *cfg.Branding.CompanyName)

	// The starter document must pass validation on every tier.
	for _, tr := range tier.All() {
		require.NoError(t, config.Validate(cfg, tr))
	}
}

func TestInitCommand_CompanyFlag(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "hullo.json")

	_, err := executeInitCommand("-o", outPath, "--company", "Acme Rockets")
	require.NoError(t, err)

	cfg, err := config.ParseFile(outPath)
	require.NoError(t, err)
	require.NotNil(t, cfg.Branding.CompanyName)
	require.Equal(t, "Acme Rockets", *cfg.Branding.CompanyName)
}

func TestInitCommand_YAMLOutput(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "widget.yaml")

	_, err := executeInitCommand("-o", outPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.False(t, strings.HasPrefix(strings.TrimSpace(string(raw)), "{"))

	cfg, err := config.ParseFile(outPath)
	require.NoError(t, err)
	require.NotNil(t, cfg.WidgetID)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "hullo.json")
	require.NoError(t, os.WriteFile(outPath, []byte("{}"), 0o644))

	_, err := executeInitCommand("-o", outPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
