package tap

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rdpscroll/internal/scroll"
)

type stubHandler struct {
	decision scroll.Decision
	seen     []scroll.Event
}

func (h *stubHandler) Handle(ev scroll.Event) scroll.Decision {
	h.seen = append(h.seen, ev)
	return h.decision
}

func TestDispatchPassThrough(t *testing.T) {
	h := &stubHandler{decision: scroll.Decision{Action: scroll.PassThrough}}
	tp := New(h, nil)

	posted := 0
	drop := tp.dispatch(scroll.Event{Kind: scroll.KindScrollWheel}, func(scroll.Synthesized) { posted++ })

	assert.False(t, drop)
	assert.Zero(t, posted)
	assert.Len(t, h.seen, 1)
}

func TestDispatchSuppress(t *testing.T) {
	h := &stubHandler{decision: scroll.Decision{Action: scroll.Suppress}}
	tp := New(h, nil)

	posted := 0
	drop := tp.dispatch(scroll.Event{Kind: scroll.KindScrollWheel, Continuous: true}, func(scroll.Synthesized) { posted++ })

	assert.True(t, drop)
	assert.Zero(t, posted)
}

func TestDispatchEmitPostsAndLogs(t *testing.T) {
	synth := scroll.Synthesized{
		Unit:     scroll.UnitLine,
		Wheels:   1,
		Steps:    -3,
		Location: scroll.Point{X: 10, Y: 20.5},
		Flags:    0x20000,
	}
	h := &stubHandler{decision: scroll.Decision{Action: scroll.Emit, Synthesized: synth}}
	var buf bytes.Buffer
	tp := New(h, log.New(&buf, "", 0))

	var got []scroll.Synthesized
	drop := tp.dispatch(scroll.Event{Kind: scroll.KindScrollWheel, Continuous: true}, func(s scroll.Synthesized) {
		got = append(got, s)
	})

	assert.True(t, drop)
	require.Len(t, got, 1)
	assert.Equal(t, synth, got[0])
	assert.Equal(t, "ACTION: Posted scroll steps=-3 at (10.0, 20.5)\n", buf.String())
}

func TestReenableWithoutRunningTap(t *testing.T) {
	tp := New(&stubHandler{}, nil)
	assert.NotPanics(t, tp.Reenable)
	assert.False(t, tp.Running())
}
