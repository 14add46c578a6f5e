package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rdpscroll/internal/i18n"
)

type sent struct {
	title, message string
}

func newRecording(enabled bool) (*Notifier, *[]sent) {
	var got []sent
	n := New(enabled)
	n.send = func(title, message string) error {
		got = append(got, sent{title, message})
		return nil
	}
	return n, &got
}

func TestNotifierDisabled(t *testing.T) {
	n, got := newRecording(false)
	n.Active(true)
	n.Error("boom")
	assert.Empty(t, *got)
}

func TestNotifierMessages(t *testing.T) {
	i18n.SetLanguage(i18n.EN)
	n, got := newRecording(true)

	n.Active(false)
	n.Autostart(true)
	n.Error("boom")

	require.Len(t, *got, 3)
	assert.Equal(t, "RDP Scroll Fixer: "+i18n.T("notify_paused"), (*got)[0].title)
	assert.Equal(t, i18n.T("notify_autostart_on"), (*got)[1].message)
	assert.Equal(t, "boom", (*got)[2].message)
}
