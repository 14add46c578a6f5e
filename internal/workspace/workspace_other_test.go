//go:build !darwin

package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontmostUnavailable(t *testing.T) {
	app, ok := New().Frontmost()
	assert.False(t, ok)
	assert.Empty(t, app.BundleID)
}
