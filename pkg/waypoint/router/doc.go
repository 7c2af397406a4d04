// Package router provides declarative navigation over a host's surface graph.
//
// Application code describes the transition it wants with a Presentation
// value and hands it to a Router. The router works out where the transition
// belongs, given the navigation (push) stack it was created for and whatever is
// currently presented on top of it, and issues a single call to the Host.
//
// # Basic Usage
//
//	r := router.New(host, stack)
//
//	// Push onto the stack (or become its bottom if it is empty)
//	r.Route(router.Push{Surface: detail})
//
//	// Present modally inside a fresh navigation stack
//	r.Route(router.Modal{
//	    WithNavigationBar: true,
//	    Surface:           editor,
//	    Transition:        constants.TransitionStyleCoverVertical,
//	    Presentation:      constants.PresentationStyleFormSheet,
//	})
//
//	// Ask before doing something
//	r.Route(router.Alert{Kind: router.TwoButtons{
//	    Title:        "Delete save?",
//	    SecondTitle:  "Delete",
//	    SecondAction: deleteSave,
//	}})
//
//	// From inside the editor: close whichever way it was shown
//	r.Close(editor, router.WithCompletion(reload))
//
//	// Back to where the stack started
//	r.CloseStack()
//
// # Two Stacks
//
// A Router keeps two anchors. The bottom anchor is the surface that was on top
// of the stack when the router was created (or the surface most recently set
// with Root); CloseStack rewinds to it. The presentation anchor is the
// outermost structural ancestor of the stack. Modals, popovers and alerts are
// always presented over the deepest surface in the presentation chain that
// starts at this anchor, never over an unrelated surface.
//
// Close decides between dismissing and popping by looking at the live graph:
// a surface whose outermost ancestor is in the presentation chain is
// dismissed by its presenter, anything else is popped off the stack.
//
// # Errors
//
// Router methods do not return errors. Calling them with a nil surface or
// request is a contract violation: in development mode (ENVIRONMENT=DEV) it
// panics with a *ContractError, otherwise it is logged and ignored. A released
// stack or anchor turns the affected operations into no-ops.
package router
