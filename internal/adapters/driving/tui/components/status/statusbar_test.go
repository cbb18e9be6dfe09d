package status

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/postador-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/postador-cli/internal/core/domain"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	_, ok := bar.Notification()
	assert.False(t, ok)
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilStyles(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
}

func TestBar_ShowAndClear(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.Show(domain.Notification{Message: "Video scheduled", Kind: domain.NotificationSuccess})

	n, ok := bar.Notification()
	require.True(t, ok)
	assert.Equal(t, "Video scheduled", n.Message)
	assert.Contains(t, bar.View(), "Video scheduled")

	bar.Clear()

	_, ok = bar.Notification()
	assert.False(t, ok)
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_ShowReplaces(t *testing.T) {
	bar := NewBar(nil, nil)

	bar.Show(domain.Notification{Message: "first", Kind: domain.NotificationSuccess})
	bar.Show(domain.Notification{Message: "second", Kind: domain.NotificationError})

	n, _ := bar.Notification()
	assert.Equal(t, "second", n.Message)
	assert.NotContains(t, bar.View(), "first")
}

func TestBar_View_ShowsHints(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(160)

	view := bar.View()

	assert.Contains(t, view, "ctrl+s: schedule")
	assert.Contains(t, view, "ctrl+c: quit")
}

func TestBar_SetBindings(t *testing.T) {
	km := keymap.DefaultKeyMap()
	bar := NewBar(nil, km)
	bar.SetWidth(160)

	bar.SetBindings(km.SettingsHelp())

	assert.NotContains(t, bar.View(), "\n")

	assert.Contains(t, bar.View(), "esc: back")
	assert.NotContains(t, bar.View(), "ctrl+s")
}

func TestBar_View_FitsWidth(t *testing.T) {
	for _, width := range []int{160, 120, 80, 40} {
		bar := NewBar(nil, nil)
		bar.SetWidth(width)
		bar.Show(domain.Notification{Message: "Video scheduled", Kind: domain.NotificationSuccess})

		view := bar.View()

		assert.NotContains(t, view, "\n", "width %d", width)
		assert.Equal(t, width, lipgloss.Width(view), "width %d", width)
		assert.Contains(t, view, "Video scheduled", "width %d", width)
	}
}

func TestBar_View_DropsHintsWhenNarrow(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(30)

	view := bar.View()

	assert.Contains(t, view, "Ready")
	assert.False(t, strings.Contains(view, "quit"))
}
