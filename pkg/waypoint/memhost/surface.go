// Package memhost is an in-memory implementation of router.Host.
//
// It keeps the whole surface graph (structural parents, presentation links,
// navigation stacks) in maps and never renders anything. Present and Dismiss
// update the graph immediately but hold their completions until Settle is
// called, which lets tests and headless applications observe the window in
// which a transition is still "animating".
package memhost

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"go.uber.org/atomic"
)

// Surface is a plain in-memory surface.
type Surface struct {
	name     string
	released atomic.Bool
}

// NewSurface creates a surface identified by name in logs and transitions.
func NewSurface(name string) *Surface {
	return &Surface{name: name}
}

func (s *Surface) SurfaceName() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Release marks the surface as destroyed. Routers treat released surfaces as absent.
func (s *Surface) Release() {
	s.released.Store(true)
}

func (s *Surface) Released() bool {
	return s == nil || s.released.Load()
}

func (s *Surface) String() string {
	return s.SurfaceName()
}

var _ router.Surface = (*Surface)(nil)
