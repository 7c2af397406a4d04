package memhost

import (
	"slices"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"go.uber.org/atomic"
)

// Stack is an in-memory navigation stack. It is a surface itself and is the
// structural parent of every surface it holds.
type Stack struct {
	name     string
	host     *Host
	entries  []router.Surface
	released atomic.Bool
}

// NewStack creates a navigation stack holding surfaces, bottom first.
func (h *Host) NewStack(name string, surfaces ...router.Surface) *Stack {
	s := &Stack{
		name:    name,
		host:    h,
		entries: make([]router.Surface, 0, len(surfaces)),
	}
	s.replace(surfaces)
	return s
}

func (s *Stack) SurfaceName() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Release marks the stack as destroyed. Routers holding it become inert.
func (s *Stack) Release() {
	s.released.Store(true)
}

func (s *Stack) Released() bool {
	return s == nil || s.released.Load()
}

// IsEmpty returns true if the stack has no surfaces.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of surfaces in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Top returns the topmost surface without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Top() router.Surface {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Push adds s on top of the stack.
func (s *Stack) Push(surface router.Surface, animated bool) {
	s.entries = append(s.entries, surface)
	s.host.parents[surface] = s
	s.host.record("push", surface, s, animated)
}

// SetStack replaces the whole stack.
func (s *Stack) SetStack(surfaces []router.Surface, animated bool) {
	s.replace(surfaces)
	var top router.Surface
	if len(surfaces) > 0 {
		top = surfaces[len(surfaces)-1]
	}
	s.host.record("set_stack", top, s, animated)
}

// PopTo removes every surface above target. A target that is not in the
// stack is ignored.
func (s *Stack) PopTo(target router.Surface, animated bool) {
	i := slices.Index(s.entries, target)
	if i < 0 {
		return
	}
	for _, popped := range s.entries[i+1:] {
		s.host.detach(popped, s)
	}
	s.entries = s.entries[:i+1]
	s.host.record("pop_to", target, s, animated)
}

// Surfaces returns a copy of the stack, bottom first.
func (s *Stack) Surfaces() []router.Surface {
	return slices.Clone(s.entries)
}

func (s *Stack) replace(surfaces []router.Surface) {
	for _, old := range s.entries {
		s.host.detach(old, s)
	}
	s.entries = s.entries[:0]
	for _, surface := range surfaces {
		s.entries = append(s.entries, surface)
		s.host.parents[surface] = s
	}
}

func (s *Stack) String() string {
	return s.SurfaceName()
}

var _ router.NavigationStack = (*Stack)(nil)
