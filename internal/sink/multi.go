package sink

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Multi fans a submission out to several sinks concurrently. Every sink is
// attempted once; a validation error or the joined write failures are
// returned, in member order.
type Multi []ResultsSink

func (m Multi) Name() string {
	names := make([]string, 0, len(m))
	for _, s := range m {
		names = append(names, s.Name())
	}
	return strings.Join(names, " + ")
}

func (m Multi) Enabled() bool {
	for _, s := range m {
		if s.Enabled() {
			return true
		}
	}
	return false
}

func (m Multi) Save(ctx context.Context, sub Submission) error {
	if err := sub.validate(); err != nil {
		return err
	}
	if !m.Enabled() {
		return ErrNotConfigured
	}

	errs := make([]error, len(m))
	var g errgroup.Group
	for i, s := range m {
		if !s.Enabled() {
			continue
		}
		g.Go(func() error {
			errs[i] = s.Save(ctx, sub)
			return nil
		})
	}
	_ = g.Wait()

	if err := errors.Join(errs...); err != nil {
		return &PersistenceError{Sink: m.Name(), Err: err}
	}
	return nil
}

// Close closes every member sink that holds resources.
func (m Multi) Close() {
	for _, s := range m {
		Close(s)
	}
}
