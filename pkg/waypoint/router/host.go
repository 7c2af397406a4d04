package router

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Surface is an opaque presentable unit owned by the host toolkit.
//
// Routers compare surfaces with ==, so implementations must be comparable
// (pointer types in practice). A Surface may additionally implement
// Released() bool; a released surface is treated as absent.
type Surface interface {
	SurfaceName() string
}

// NavigationStack is the host object holding a linear back-stack of surfaces.
// It is itself a Surface so it can be presented, embedded, or used as an anchor.
type NavigationStack interface {
	Surface

	IsEmpty() bool
	Push(s Surface, animated bool)
	SetStack(surfaces []Surface, animated bool)
	// PopTo pops every surface above s. Surfaces not in the stack are ignored.
	PopTo(s Surface, animated bool)
	// Surfaces returns the stack bottom first.
	Surfaces() []Surface
}

// Host is the capability a Router needs from the UI toolkit.
//
// Present and Dismiss are asynchronous: the host invokes onComplete (which may
// be nil) once the transition has finished. Relation queries return nil when
// the relation does not exist.
type Host interface {
	Present(s, over Surface, animated bool, onComplete func())
	// Dismiss removes whatever presenter currently presents, along with
	// everything presented on top of it.
	Dismiss(presenter Surface, animated bool, onComplete func())

	StructuralParent(s Surface) Surface
	PresentedBy(s Surface) Surface
	CurrentlyPresenting(s Surface) Surface

	SetStyle(s Surface, transition constants.TransitionStyle, presentation constants.PresentationStyle)
	// WrapInStack returns a fresh NavigationStack container holding s.
	WrapInStack(s Surface) Surface
	ConfigurePopover(s Surface, cfg PopoverConfig)
	BuildConfirmationDialog(title, message string, actions []DialogAction) Surface
}

// PopoverDelegate receives popover lifecycle callbacks from the host.
type PopoverDelegate interface {
	PopoverDismissed(s Surface)
}

// PopoverConfig is what the host needs to anchor and draw a popover.
type PopoverConfig struct {
	Delegate        PopoverDelegate
	ArrowDirections constants.ArrowDirection
	SourceRect      sdl.Rect
	SourceView      Surface
	BackgroundColor sdl.Color
}

// ActionStyle is the visual emphasis of a dialog action.
type ActionStyle int

const (
	ActionStyleDefault ActionStyle = iota
	ActionStyleCancel
	ActionStyleDestructive
)

// DialogAction is one button of a confirmation dialog.
type DialogAction struct {
	Label   string
	Style   ActionStyle
	Handler func() // may be nil
}

type releasable interface {
	Released() bool
}

// alive reports whether s refers to a surface that still exists.
func alive(s Surface) bool {
	if s == nil {
		return false
	}
	if r, ok := s.(releasable); ok && r.Released() {
		return false
	}
	return true
}
