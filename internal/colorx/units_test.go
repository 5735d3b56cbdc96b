package colorx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPx(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		rootSize float64
		want     float64
		ok       bool
	}{
		{"px literal", "12px", 16, 12, true},
		{"fractional px", "1.5px", 16, 1.5, true},
		{"rem scales by root size", "2rem", 16, 32, true},
		{"em scales by root size", "0.5em", 20, 10, true},
		{"rem with unresolved root defaults to 16", "1rem", 0, 16, true},
		{"bare number", "24", 16, 24, true},
		{"auto is unresolvable", "auto", 16, 0, false},
		{"percent is unresolvable", "50%", 16, 0, false},
		{"empty is unresolvable", "", 16, 0, false},
		{"garbage is unresolvable", "thinpx", 16, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToPx(tt.value, tt.rootSize)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}
