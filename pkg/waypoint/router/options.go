package router

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"go.uber.org/atomic"
)

// Option adjusts a single Route, Close, CloseStack or Back call.
type Option func(*callOptions)

type callOptions struct {
	animated   bool
	completion func()
}

// Animated sets whether the transition is animated.
// Without it the framework default applies (true unless configured otherwise).
func Animated(animated bool) Option {
	return func(o *callOptions) {
		o.animated = animated
	}
}

// WithoutAnimation is shorthand for Animated(false).
func WithoutAnimation() Option {
	return Animated(false)
}

// WithCompletion registers fn to run once the transition has finished.
// fn runs at most once per call. It does not run when Route or Close turn
// out to be no-ops. CloseStack always runs it after its pop step, including
// when the pop is skipped because the bottom anchor left the stack.
func WithCompletion(fn func()) Option {
	return func(o *callOptions) {
		o.completion = fn
	}
}

func resolveOptions(opts []Option) callOptions {
	o := callOptions{animated: internal.GetSettings().Animated}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.completion = once(o.completion)
	return o
}

// complete runs the completion, if any.
func (o callOptions) complete() {
	if o.completion != nil {
		o.completion()
	}
}

func once(fn func()) func() {
	if fn == nil {
		return nil
	}
	var fired atomic.Bool
	return func() {
		if fired.CompareAndSwap(false, true) {
			fn()
		}
	}
}
