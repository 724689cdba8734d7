// README: Fan-out of issued quotes to every configured recorder.
package quote

import (
	"context"
	"errors"
)

// Recorders calls each recorder in order and joins their errors.
type Recorders []Recorder

func (rs Recorders) Record(ctx context.Context, q Quote) error {
	var errs []error
	for _, r := range rs {
		if r == nil {
			continue
		}
		if err := r.Record(ctx, q); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Combine drops nil recorders. It returns nil when none are left so callers can
// skip recording entirely, and the recorder itself when only one is left.
func Combine(rs ...Recorder) Recorder {
	var live Recorders
	for _, r := range rs {
		if r != nil {
			live = append(live, r)
		}
	}
	switch len(live) {
	case 0:
		return nil
	case 1:
		return live[0]
	}
	return live
}
