package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/atlas/internal/domain/entity"
)

func TestNewCustomShortcut_Defaults(t *testing.T) {
	sc := entity.NewCustomShortcut("github", "https://github.com", "", "")

	assert.NotEmpty(t, sc.ID)
	assert.True(t, sc.IsCustom)
	assert.Equal(t, "G", sc.Icon)
	assert.Contains(t, entity.ShortcutGradients, sc.Gradient)
}

func TestNewCustomShortcut_KeepsGivenFields(t *testing.T) {
	sc := entity.NewCustomShortcut("Go", "https://go.dev", "🐹", "#00ADD8")

	assert.Equal(t, "🐹", sc.Icon)
	assert.Equal(t, "#00ADD8", sc.Gradient)
	assert.NotEqual(t, sc.ID, entity.NewCustomShortcut("Go", "https://go.dev", "", "").ID)
}

func TestNewCustomShortcut_EmptyTitleHasNoIcon(t *testing.T) {
	assert.Empty(t, entity.NewCustomShortcut("  ", "https://go.dev", "", "").Icon)
}
