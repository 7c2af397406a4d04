package router

import (
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

type node struct {
	name     string
	released bool
}

func (n *node) SurfaceName() string { return n.name }
func (n *node) Released() bool      { return n.released }

// graphHost answers only relation queries; it lets tests build graphs the
// real hosts refuse to produce, such as cycles.
type graphHost struct {
	parents    map[Surface]Surface
	presenting map[Surface]Surface
}

func newGraphHost() *graphHost {
	return &graphHost{
		parents:    make(map[Surface]Surface),
		presenting: make(map[Surface]Surface),
	}
}

func (g *graphHost) StructuralParent(s Surface) Surface    { return g.parents[s] }
func (g *graphHost) CurrentlyPresenting(s Surface) Surface { return g.presenting[s] }
func (g *graphHost) PresentedBy(s Surface) Surface {
	for presenter, presented := range g.presenting {
		if presented == s {
			return presenter
		}
	}
	return nil
}

func (g *graphHost) Present(s, over Surface, animated bool, onComplete func())      {}
func (g *graphHost) Dismiss(presenter Surface, animated bool, onComplete func())    {}
func (g *graphHost) WrapInStack(s Surface) Surface                                  { return s }
func (g *graphHost) ConfigurePopover(s Surface, cfg PopoverConfig)                  {}
func (g *graphHost) BuildConfirmationDialog(string, string, []DialogAction) Surface { return nil }
func (g *graphHost) SetStyle(Surface, constants.TransitionStyle, constants.PresentationStyle) {
}

func TestRootParent(t *testing.T) {
	g := newGraphHost()
	leaf, mid, top := &node{name: "leaf"}, &node{name: "mid"}, &node{name: "top"}
	g.parents[leaf] = mid
	g.parents[mid] = top

	if got := rootParent(g, leaf); got != top {
		t.Fatalf("rootParent(leaf) = %v, want top", got)
	}
	if got := rootParent(g, top); got != nil {
		t.Fatalf("rootParent(top) = %v, want nil", got)
	}
	if got := rootParentOrSelf(g, top); got != top {
		t.Fatalf("rootParentOrSelf(top) = %v, want top", got)
	}
}

func TestRootParent_StopsAtReleasedAncestor(t *testing.T) {
	g := newGraphHost()
	leaf, mid, top := &node{name: "leaf"}, &node{name: "mid"}, &node{name: "top", released: true}
	g.parents[leaf] = mid
	g.parents[mid] = top

	if got := rootParent(g, leaf); got != mid {
		t.Fatalf("rootParent(leaf) = %v, want mid", got)
	}
}

func TestRootParent_Cycle(t *testing.T) {
	g := newGraphHost()
	a, b, c := &node{name: "a"}, &node{name: "b"}, &node{name: "c"}
	g.parents[a] = b
	g.parents[b] = c
	g.parents[c] = b

	if got := rootParent(g, a); got != c {
		t.Fatalf("rootParent(a) = %v, want c", got)
	}
}

func TestPresentationStack(t *testing.T) {
	g := newGraphHost()
	anchor, p1, p2 := &node{name: "anchor"}, &node{name: "p1"}, &node{name: "p2"}
	g.presenting[anchor] = p1
	g.presenting[p1] = p2

	got := presentationStack(g, anchor)
	if len(got) != 2 || got[0] != p1 || got[1] != p2 {
		t.Fatalf("presentationStack = %v, want [p1 p2]", got)
	}
	if got := presentationStack(g, p2); len(got) != 0 {
		t.Fatalf("expected empty chain above p2, got %v", got)
	}
	if got := presentationStack(nil, anchor); got != nil {
		t.Fatalf("expected nil chain without a host, got %v", got)
	}
}

func TestPresentationStack_Cycle(t *testing.T) {
	g := newGraphHost()
	anchor, p1, p2 := &node{name: "anchor"}, &node{name: "p1"}, &node{name: "p2"}
	g.presenting[anchor] = p1
	g.presenting[p1] = p2
	g.presenting[p2] = anchor

	got := presentationStack(g, anchor)
	if len(got) != 2 {
		t.Fatalf("expected walk to stop at the cycle, got %v", got)
	}
}
