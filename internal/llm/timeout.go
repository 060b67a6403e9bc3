package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds each call with a deadline. Sits inside the
// retry decorator so every attempt gets a fresh deadline.
type timeoutProvider struct {
	inner Provider
	d     time.Duration
}

// WithCallTimeout wraps a Provider so each Generate call is subject to
// the given timeout. A non-positive duration returns the provider as-is.
func WithCallTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, d: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
