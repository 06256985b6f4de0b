package dashboard

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hullochat/hullo/internal/registry"
	"github.com/hullochat/hullo/internal/tier"
)

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Valid as stored for the pro tier: all required branding texts present.
const cleanDoc = `{
  "branding": {
    "companyName": "Acme",
    "welcomeText": "Hi there",
    "firstMessage": "How can we help?"
  }
}`

// The shorthand accent color gets expanded by the sanitizer.
const correctableDoc = `{
  "accentColor": "#F00",
  "branding": {
    "companyName": "Acme",
    "welcomeText": "Hi there",
    "firstMessage": "How can we help?"
  }
}`

func TestLoadInitialStatusCmd(t *testing.T) {
	tmpDir := t.TempDir()
	cache, err := registry.NewStatusCache(filepath.Join(tmpDir, "cache.json"))
	require.NoError(t, err)

	require.NoError(t, cache.Set("test-1", registry.CachedStatus{
		Status:      registry.StatusClean,
		LastChecked: time.Now(),
		Summary:     "document valid",
	}))

	widgets := []registry.Widget{
		{ID: "test-1", Name: "Test 1"},
		{ID: "test-2", Name: "Test 2"},
	}

	cmd := loadInitialStatusCmd(widgets, cache)
	assert.NotNil(t, cmd)

	// Execute command
	msg := cmd()
	assert.NotNil(t, msg)

	// Should return InitialStatusLoadedMsg with only cached widgets present
	loadedMsg, ok := msg.(InitialStatusLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loadedMsg.Statuses, 1)
	assert.Equal(t, registry.StatusClean, loadedMsg.Statuses["test-1"].Status)
	assert.NotContains(t, loadedMsg.Statuses, "test-2")
}

func TestCheckCmd(t *testing.T) {
	path := writeDoc(t, "acme.json", cleanDoc)

	widget := registry.Widget{
		ID:   "test-1",
		Name: "Test 1",
		Path: path,
		Tier: tier.Pro,
	}

	cmd := checkCmd(widget)
	assert.NotNil(t, cmd)

	// Execute command
	msg := cmd()
	assert.NotNil(t, msg)

	completeMsg, ok := msg.(CheckCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, "test-1", completeMsg.WidgetID)
	require.NotNil(t, completeMsg.Result)
	assert.Equal(t, registry.StatusClean, completeMsg.Result.Status)
}

func TestCheckCmd_MissingDocument(t *testing.T) {
	widget := registry.Widget{
		ID:   "test-1",
		Name: "Test 1",
		Path: filepath.Join(t.TempDir(), "missing.json"),
		Tier: tier.Pro,
	}

	cmd := checkCmd(widget)
	assert.NotNil(t, cmd)

	msg := cmd()
	assert.NotNil(t, msg)

	// Unreadable documents still come back as CheckCompleteMsg, with a
	// broken status instead of a separate error message.
	completeMsg, ok := msg.(CheckCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, "test-1", completeMsg.WidgetID)
	require.NotNil(t, completeMsg.Result)
	assert.Equal(t, registry.StatusBroken, completeMsg.Result.Status)
	assert.NotNil(t, completeMsg.Result.Error)
}

func TestFixCmd(t *testing.T) {
	path := writeDoc(t, "acme.json", correctableDoc)

	widget := registry.Widget{
		ID:   "test-1",
		Name: "Test 1",
		Path: path,
		Tier: tier.Pro,
	}

	cmd := fixCmd(widget)
	assert.NotNil(t, cmd)

	// Execute command
	msg := cmd()
	assert.NotNil(t, msg)

	completeMsg, ok := msg.(FixCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, "test-1", completeMsg.WidgetID)
	assert.Greater(t, completeMsg.Corrections, 0)

	// The rewritten document should check clean
	recheck := checkCmd(widget)()
	recheckMsg, ok := recheck.(CheckCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, registry.StatusClean, recheckMsg.Result.Status)
}

func TestFixCmd_MissingDocument(t *testing.T) {
	widget := registry.Widget{
		ID:   "test-1",
		Name: "Test 1",
		Path: filepath.Join(t.TempDir(), "missing.json"),
		Tier: tier.Pro,
	}

	cmd := fixCmd(widget)
	assert.NotNil(t, cmd)

	msg := cmd()
	assert.NotNil(t, msg)

	errMsg, ok := msg.(FixErrorMsg)
	require.True(t, ok)
	assert.Equal(t, "test-1", errMsg.WidgetID)
	assert.Error(t, errMsg.Error)
}

func TestRefreshSingleCmd(t *testing.T) {
	path := writeDoc(t, "acme.json", cleanDoc)

	widget := registry.Widget{
		ID:   "test-1",
		Name: "Test 1",
		Path: path,
		Tier: tier.Pro,
	}

	cmd := refreshSingleCmd(widget, 0, 1)
	assert.NotNil(t, cmd)

	// Execute command
	msg := cmd()
	assert.NotNil(t, msg)

	completeMsg, ok := msg.(RefreshWidgetCompleteMsg)
	require.True(t, ok)
	assert.Equal(t, "test-1", completeMsg.WidgetID)
	assert.Equal(t, 0, completeMsg.Index)
	assert.Equal(t, 1, completeMsg.Total)
	require.NotNil(t, completeMsg.Result)
	assert.Equal(t, registry.StatusClean, completeMsg.Result.Status)
}
