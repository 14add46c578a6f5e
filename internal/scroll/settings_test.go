package scroll

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()
	assert.True(t, s.Active())
	assert.Equal(t, DefaultLevel, s.Level())
	assert.Equal(t, 5.0, Threshold(s.Level()))
}

func TestSettingsSetLevelRejectsInvalid(t *testing.T) {
	s := NewSettings()
	assert.True(t, s.SetLevel(2))
	assert.Equal(t, Level(2), s.Level())
	assert.False(t, s.SetLevel(9))
	assert.Equal(t, Level(2), s.Level())
}

func TestSettingsToggleActive(t *testing.T) {
	s := NewSettings()
	assert.False(t, s.ToggleActive())
	assert.False(t, s.Active())
	assert.True(t, s.ToggleActive())
	s.SetActive(false)
	assert.False(t, s.Active())
}

func TestSettingsConcurrentAccess(t *testing.T) {
	s := NewSettings()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.SetLevel(Level(j%5 + 1))
				s.ToggleActive()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, level := s.snapshot()
				assert.True(t, level.Valid())
			}
		}()
	}
	wg.Wait()
}
