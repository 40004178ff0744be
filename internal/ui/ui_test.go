package ui

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestInitColorsRespectsNoColorFlag(t *testing.T) {
	defer func() { color.NoColor = false }()
	InitColors(true)
	require.True(t, color.NoColor)
}

func TestCountTextZeroVsNonZero(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	require.Equal(t, "0", CountText(0))
	require.Equal(t, "3", CountText(3))
}

func TestLabelAndDimTextPlainWhenNoColor(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()
	require.Equal(t, "Title:", Label("Title:"))
	require.Equal(t, "value", DimText("value"))
}
