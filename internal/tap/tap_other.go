//go:build !darwin

package tap

import "context"

type sysTap struct{}

func (sysTap) enable() {}

func (t *Tap) run(ctx context.Context) error {
	return ErrUnsupported
}
