package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/atlas/internal/domain/entity"
)

func TestApplyZoom(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		dir     entity.ZoomDirection
		want    float64
	}{
		{"in", 1.0, entity.ZoomIn, 1.1},
		{"in repeated stays round", 1.1, entity.ZoomIn, 1.2},
		{"in capped", 2.95, entity.ZoomIn, 3.0},
		{"out", 1.0, entity.ZoomOut, 0.9},
		{"out floored", 0.3, entity.ZoomOut, 0.25},
		{"reset", 2.4, entity.ZoomReset, 1.0},
		{"unknown keeps value", 1.5, entity.ZoomDirection("sideways"), 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.ApplyZoom(tt.current, tt.dir))
		})
	}
}

func TestApplyZoom_StaysInRange(t *testing.T) {
	z := entity.ZoomDefault
	for range 50 {
		z = entity.ApplyZoom(z, entity.ZoomIn)
		assert.LessOrEqual(t, z, entity.ZoomMax)
	}
	for range 50 {
		z = entity.ApplyZoom(z, entity.ZoomOut)
		assert.GreaterOrEqual(t, z, entity.ZoomMin)
	}
	assert.Equal(t, entity.ZoomMin, z)
}

func TestParseZoomDirection(t *testing.T) {
	dir, ok := entity.ParseZoomDirection("out")
	assert.True(t, ok)
	assert.Equal(t, entity.ZoomOut, dir)

	_, ok = entity.ParseZoomDirection("bigger")
	assert.False(t, ok)
}
