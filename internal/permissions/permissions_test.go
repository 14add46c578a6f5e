package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusErr(t *testing.T) {
	assert.NoError(t, StatusTrusted.Err())
	assert.NoError(t, StatusUnavailable.Err())
	assert.ErrorIs(t, StatusNotTrusted.Err(), ErrNotTrusted)
}
