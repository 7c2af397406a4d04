package router

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Presentation is a navigation request handed to Router.Route.
// The set of variants is closed: Push, Modal, Popover, Root and Alert.
type Presentation interface {
	isPresentation()
	kind() string
}

// Push pushes Surface onto the navigation stack. If the stack is empty the
// surface becomes its new bottom.
type Push struct {
	Surface Surface
}

// Modal presents Surface over the topmost presented surface.
// With WithNavigationBar set, Surface is first wrapped in a fresh navigation
// stack so it can push further surfaces of its own.
type Modal struct {
	WithNavigationBar bool
	Surface           Surface
	Transition        constants.TransitionStyle
	Presentation      constants.PresentationStyle
}

// PopoverAnchor describes where a popover points.
type PopoverAnchor struct {
	SourceRect      sdl.Rect
	SourceView      Surface
	ArrowDirections constants.ArrowDirection
}

// Popover presents Surface as a popover anchored to Anchor.
type Popover struct {
	Surface  Surface
	Delegate PopoverDelegate
	Anchor   PopoverAnchor
}

// Root replaces the whole navigation stack with Surface.
type Root struct {
	Surface Surface
}

// Alert shows a confirmation dialog. It does not touch the navigation stack.
type Alert struct {
	Kind AlertKind
}

func (Push) isPresentation()    {}
func (Modal) isPresentation()   {}
func (Popover) isPresentation() {}
func (Root) isPresentation()    {}
func (Alert) isPresentation()   {}

func (Push) kind() string    { return "push" }
func (Modal) kind() string   { return "modal" }
func (Popover) kind() string { return "popover" }
func (Root) kind() string    { return "root" }
func (Alert) kind() string   { return "alert" }
