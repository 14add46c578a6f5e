//go:build !darwin

package tap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartUnsupported(t *testing.T) {
	tp := New(&stubHandler{}, nil)
	err := tp.Start(context.Background())
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.False(t, tp.Running())
}
