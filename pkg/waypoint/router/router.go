package router

import (
	"slices"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/locale"
)

// Router translates navigation requests into host transitions for one
// navigation stack.
//
// A Router tracks two anchors. The bottom anchor is the surface the stack
// collapses back to; it is captured at construction and replaced by Root
// requests (and by Push on an empty stack). The presentation anchor is the
// outermost structural ancestor of the stack, fixed at construction; new
// modals, popovers and alerts are presented on top of whatever is currently
// presented over it.
//
// Routers do not own the stack or the anchors. If the host releases them the
// affected operations become no-ops.
//
// All methods must be called from the host's UI thread.
type Router struct {
	host   Host
	stack  NavigationStack
	labels *locale.Localizer

	navigationStackFirst   Surface
	presentationStackFirst Surface
}

// New creates a Router driving stack through host.
func New(host Host, stack NavigationStack) *Router {
	r := &Router{
		host:   host,
		stack:  stack,
		labels: locale.For(internal.GetSettings().Locale),
	}

	if alive(stack) {
		if surfaces := stack.Surfaces(); len(surfaces) > 0 {
			r.navigationStackFirst = surfaces[len(surfaces)-1]
		}
		r.presentationStackFirst = rootParentOrSelf(host, stack)
	}

	internal.GetInternalLogger().Debug("router created",
		"bottom", surfaceName(r.navigationStackFirst),
		"anchor", surfaceName(r.presentationStackFirst))

	return r
}

// Child returns an independent Router over the same navigation stack. Its
// anchors are captured from the stack as it is now, not copied from r.
func (r *Router) Child() *Router {
	return New(r.host, r.stack)
}

// Route performs the transition described by p.
//
// Push and Root act on the navigation stack synchronously. Modal, Popover and
// Alert are presented over the topmost presented surface and complete when the
// host reports it. Alerts are always animated.
func (r *Router) Route(p Presentation, opts ...Option) {
	o := resolveOptions(opts)

	switch req := p.(type) {
	case Push:
		r.push(req, o)
	case Modal:
		r.presentModal(req, o)
	case Popover:
		r.presentPopover(req, o)
	case Root:
		r.replaceRoot(req, o)
	case Alert:
		r.presentAlert(req, o)
	case nil:
		r.violation("route", ErrNilPresentation)
	default:
		r.violation("route", ErrUnknownPresentation)
	}
}

func (r *Router) push(req Push, o callOptions) {
	if !alive(req.Surface) {
		r.violation("route", ErrNilSurface)
		return
	}
	nav := r.navigation()
	if nav == nil {
		r.logNoop(req.kind(), "stack released")
		return
	}

	if nav.IsEmpty() {
		r.navigationStackFirst = req.Surface
		nav.SetStack([]Surface{req.Surface}, o.animated)
		r.logRouted(req.kind(), req.Surface, o, "set")
	} else {
		nav.Push(req.Surface, o.animated)
		r.logRouted(req.kind(), req.Surface, o, "push")
	}
	o.complete()
}

func (r *Router) replaceRoot(req Root, o callOptions) {
	if !alive(req.Surface) {
		r.violation("route", ErrNilSurface)
		return
	}
	nav := r.navigation()
	if nav == nil {
		r.logNoop(req.kind(), "stack released")
		return
	}

	r.navigationStackFirst = req.Surface
	nav.SetStack([]Surface{req.Surface}, o.animated)
	r.logRouted(req.kind(), req.Surface, o, "set")
	o.complete()
}

func (r *Router) presentModal(req Modal, o callOptions) {
	if !alive(req.Surface) {
		r.violation("route", ErrNilSurface)
		return
	}
	over := r.presentingSurface()
	if over == nil {
		r.logNoop(req.kind(), "anchor released")
		return
	}

	target := req.Surface
	branch := "bare"
	if req.WithNavigationBar {
		target = r.host.WrapInStack(req.Surface)
		branch = "wrapped"
	}
	r.host.SetStyle(target, req.Transition, req.Presentation)
	r.host.Present(target, over, o.animated, o.completion)
	r.logRouted(req.kind(), target, o, branch,
		"transition", req.Transition.GetName(),
		"style", req.Presentation.GetName())
}

func (r *Router) presentPopover(req Popover, o callOptions) {
	if !alive(req.Surface) {
		r.violation("route", ErrNilSurface)
		return
	}
	over := r.presentingSurface()
	if over == nil {
		r.logNoop(req.kind(), "anchor released")
		return
	}

	r.host.SetStyle(req.Surface, constants.TransitionStyleDefault, constants.PresentationStylePopover)
	r.host.ConfigurePopover(req.Surface, PopoverConfig{
		Delegate:        req.Delegate,
		ArrowDirections: req.Anchor.ArrowDirections,
		SourceRect:      req.Anchor.SourceRect,
		SourceView:      req.Anchor.SourceView,
		BackgroundColor: internal.GetSettings().PopoverBackground,
	})
	r.host.Present(req.Surface, over, o.animated, o.completion)
	r.logRouted(req.kind(), req.Surface, o, "popover",
		"arrows", req.Anchor.ArrowDirections.GetName())
}

func (r *Router) presentAlert(req Alert, o callOptions) {
	dialog, err := BuildDialog(req.Kind, r.labels)
	if err != nil {
		r.violation("route", err)
		return
	}
	over := r.presentingSurface()
	if over == nil {
		r.logNoop(req.kind(), "anchor released")
		return
	}

	surface := r.host.BuildConfirmationDialog(dialog.Title, dialog.Message, dialog.Actions)
	r.host.Present(surface, over, true, o.completion)
	r.logRouted(req.kind(), surface, o, "dialog", "actions", len(dialog.Actions))
}

// Close closes s, which is usually the caller's own surface.
//
// If the outermost structural ancestor of s is presented over the anchor, it
// is dismissed by its presenter and the completion runs when the host reports
// the dismissal finished. Otherwise, if s sits above another surface in the
// navigation stack, the stack is popped back to that surface and the
// completion runs immediately. If neither applies Close does nothing and the
// completion is not run.
//
// A nil or released s is a contract violation.
func (r *Router) Close(s Surface, opts ...Option) {
	if !alive(s) {
		r.violation("close", ErrNilSurface)
		return
	}
	o := resolveOptions(opts)

	target := rootParentOrSelf(r.host, s)
	if slices.Contains(r.PresentationChain(), target) {
		presenter := r.host.PresentedBy(target)
		if !alive(presenter) {
			r.logNoop("close", "presenter released", "surface", s.SurfaceName())
			return
		}
		r.host.Dismiss(presenter, o.animated, o.completion)
		r.logRouted("close", target, o, "dismiss", "presenter", presenter.SurfaceName())
		return
	}

	nav := r.navigation()
	if nav == nil {
		r.logNoop("close", "stack released", "surface", s.SurfaceName())
		return
	}
	surfaces := nav.Surfaces()
	if i := slices.Index(surfaces, s); i > 0 {
		nav.PopTo(surfaces[i-1], o.animated)
		r.logRouted("close", s, o, "pop", "to", surfaces[i-1].SurfaceName())
		o.complete()
		return
	}

	r.logNoop("close", "not presented and no predecessor", "surface", s.SurfaceName())
}

// CloseStack collapses everything back to the bottom anchor.
//
// Anything presented over the anchor is dismissed first; once the host reports
// the dismissal finished the stack is popped back to the bottom anchor as it was
// when CloseStack was called, provided that surface is still in the stack. With
// nothing presented the pop happens immediately. The completion, if any, runs
// after the pop step, even when the pop was skipped.
func (r *Router) CloseStack(opts ...Option) {
	o := resolveOptions(opts)
	bottom := r.Bottom()

	popBack := func() {
		nav := r.navigation()
		if nav != nil && alive(bottom) && slices.Contains(nav.Surfaces(), bottom) {
			nav.PopTo(bottom, o.animated)
			r.logRouted("close_stack", bottom, o, "pop")
		} else {
			r.logNoop("close_stack", "bottom not in stack", "bottom", surfaceName(bottom))
		}
		o.complete()
	}

	anchor := r.Anchor()
	if r.host != nil && anchor != nil && alive(r.host.CurrentlyPresenting(anchor)) {
		r.logRouted("close_stack", anchor, o, "dismiss")
		r.host.Dismiss(anchor, o.animated, popBack)
		return
	}
	popBack()
}

// Back closes the surface the user is looking at: the topmost presented
// surface if there is one, otherwise the top of the navigation stack. A
// presented navigation stack holding more than one surface is popped by one
// instead of being dismissed. Back does nothing on a lone bottom surface.
func (r *Router) Back(opts ...Option) {
	if chain := r.PresentationChain(); len(chain) > 0 {
		top := chain[len(chain)-1]
		if nested, ok := top.(NavigationStack); ok {
			if surfaces := nested.Surfaces(); len(surfaces) > 1 {
				o := resolveOptions(opts)
				nested.PopTo(surfaces[len(surfaces)-2], o.animated)
				r.logRouted("back", top, o, "pop_nested")
				o.complete()
				return
			}
		}
		r.Close(top, opts...)
		return
	}

	nav := r.navigation()
	if nav == nil {
		return
	}
	surfaces := nav.Surfaces()
	if len(surfaces) < 2 {
		r.logNoop("back", "at bottom")
		return
	}
	r.Close(surfaces[len(surfaces)-1], opts...)
}

// Bottom returns the bottom anchor, or nil if it is unset or released.
func (r *Router) Bottom() Surface {
	if !alive(r.navigationStackFirst) {
		return nil
	}
	return r.navigationStackFirst
}

// Anchor returns the presentation anchor, or nil if it has been released.
func (r *Router) Anchor() Surface {
	if !alive(r.presentationStackFirst) {
		return nil
	}
	return r.presentationStackFirst
}

// PresentationChain returns the surfaces presented over the anchor, nearest first.
func (r *Router) PresentationChain() []Surface {
	return presentationStack(r.host, r.Anchor())
}

// Visible returns the surface the user is currently looking at.
func (r *Router) Visible() Surface {
	if chain := r.PresentationChain(); len(chain) > 0 {
		top := chain[len(chain)-1]
		if nested, ok := top.(NavigationStack); ok {
			if surfaces := nested.Surfaces(); len(surfaces) > 0 {
				return surfaces[len(surfaces)-1]
			}
		}
		return top
	}
	if nav := r.navigation(); nav != nil {
		if surfaces := nav.Surfaces(); len(surfaces) > 0 {
			return surfaces[len(surfaces)-1]
		}
	}
	return nil
}

// presentingSurface is the surface new presentations go on top of: the last
// surface of the presentation chain, or the anchor when nothing is presented.
func (r *Router) presentingSurface() Surface {
	if r.host == nil {
		return nil
	}
	if chain := r.PresentationChain(); len(chain) > 0 {
		return chain[len(chain)-1]
	}
	return r.Anchor()
}

func (r *Router) navigation() NavigationStack {
	if !alive(r.stack) {
		return nil
	}
	return r.stack
}

func (r *Router) violation(op string, err error) {
	contractErr := &ContractError{Op: op, Err: err}
	if constants.IsDevMode() {
		panic(contractErr)
	}
	internal.GetInternalLogger().Error("navigation contract violation", "op", op, "error", contractErr)
}

func (r *Router) logRouted(kind string, s Surface, o callOptions, branch string, attrs ...any) {
	args := append([]any{"kind", kind, "surface", surfaceName(s), "animated", o.animated, "branch", branch}, attrs...)
	internal.GetInternalLogger().Debug("routed", args...)
}

func (r *Router) logNoop(kind, reason string, attrs ...any) {
	args := append([]any{"kind", kind, "reason", reason}, attrs...)
	internal.GetInternalLogger().Debug("no-op", args...)
}

func surfaceName(s Surface) string {
	if !alive(s) {
		return ""
	}
	return s.SurfaceName()
}
