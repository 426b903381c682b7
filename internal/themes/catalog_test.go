package themes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListReturnsAllThemesInOrder(t *testing.T) {
	all := List()
	require.Len(t, all, 3)
	require.Equal(t, "adat", all[0].ID)
	require.Equal(t, "floral", all[1].ID)
	require.Equal(t, "modern", all[2].ID)
}

func TestGet(t *testing.T) {
	theme, ok := Get("modern")
	require.True(t, ok)
	require.Equal(t, "Montserrat", theme.FontHeading)

	_, ok = Get("vintage")
	require.False(t, ok)
}

func TestGetOrDefaultFallsBackToFloral(t *testing.T) {
	theme := GetOrDefault("vintage")
	require.Equal(t, DefaultThemeID, theme.ID)

	theme = GetOrDefault("adat")
	require.Equal(t, "adat", theme.ID)
}

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown("floral"))
	require.False(t, IsKnown(""))
}
