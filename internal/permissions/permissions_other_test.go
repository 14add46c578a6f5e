//go:build !darwin

package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckUnavailable(t *testing.T) {
	assert.Equal(t, StatusUnavailable, Check(true))
}
