package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/golden"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/todoprog/internal/core/todo"
)

func TestRenderTasks(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	tests := []struct {
		name string
		list todo.List
	}{
		{name: "empty", list: todo.Empty()},
		{
			name: "mixed",
			list: todo.List{
				Items: []todo.Item{
					{ID: 1, Content: "buy milk", Completed: true},
					{ID: 3, Content: "call mom"},
					{ID: 12, Content: "file taxes"},
				},
				LastID: 12,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			golden.RequireEqual(t, []byte(RenderTasks("groceries", tt.list)))
		})
	}
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())

	_, ok := GetPalette(DefaultTheme)
	assert.True(t, ok)

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}
