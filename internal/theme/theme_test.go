package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/domain"
)

func TestGetTheme(t *testing.T) {
	for _, name := range ListThemes() {
		t.Run(name, func(t *testing.T) {
			th, err := GetTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.NotEmpty(t, th.Primary)
			assert.NotEmpty(t, th.PriorityHigh)
			assert.NotEmpty(t, th.Completed)
		})
	}

	_, err := GetTheme("solarized")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestListThemes(t *testing.T) {
	names := ListThemes()
	require.NotEmpty(t, names)
	assert.Equal(t, "default", names[0])
	assert.Contains(t, names, "dracula")
	assert.Len(t, names, 4)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "nord", Resolve("nord").Name)
	assert.Equal(t, "default", Resolve("").Name)
	assert.Equal(t, "default", Resolve("missing").Name)
	assert.True(t, ThemeExists("dark"))
	assert.False(t, ThemeExists("missing"))
}

func TestGetRowStyle(t *testing.T) {
	_, styles := ForTheme("default")

	completed := styles.GetRowStyle(domain.Task{Completed: true, Priority: domain.PriorityHigh})
	assert.True(t, completed.GetStrikethrough())

	high := styles.GetRowStyle(domain.Task{Priority: domain.PriorityHigh})
	assert.Equal(t, styles.HighRow.GetForeground(), high.GetForeground())
	assert.False(t, high.GetStrikethrough())
}
