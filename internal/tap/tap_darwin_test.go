//go:build darwin

package tap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rdpscroll/internal/scroll"
)

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name string
		typ  uint32
		want scroll.Kind
	}{
		{"scroll wheel", 22, scroll.KindScrollWheel},
		{"disabled by timeout", 0xFFFFFFFE, scroll.KindTapDisabled},
		{"disabled by user input", 0xFFFFFFFF, scroll.KindTapDisabled},
		{"left mouse down", 1, scroll.KindOther},
		{"key down", 10, scroll.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyType(tt.typ))
		})
	}
}
