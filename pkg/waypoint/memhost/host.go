package memhost

import (
	"fmt"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"go.uber.org/atomic"
)

// Style is the transition and presentation style applied to a surface.
type Style struct {
	Transition   constants.TransitionStyle
	Presentation constants.PresentationStyle
}

// Transition is one entry of the host's transition log.
type Transition struct {
	Seq      int64
	Op       string // push, set_stack, pop_to, present, dismiss
	Surface  string // surface pushed, presented, popped to, or dismissed
	Target   string // stack or presenter the operation was applied to
	Animated bool
}

func (t Transition) String() string {
	return fmt.Sprintf("%s %s -> %s", t.Op, t.Surface, t.Target)
}

// Host is an in-memory router.Host. The zero value is not usable; use New.
type Host struct {
	parents    map[router.Surface]router.Surface // child -> structural parent
	presenting map[router.Surface]router.Surface // presenter -> presented
	presenters map[router.Surface]router.Surface // presented -> presenter
	styles     map[router.Surface]Style
	popovers   map[router.Surface]router.PopoverConfig
	dialogs    map[router.Surface]router.Dialog

	pending     []func()
	seq         atomic.Int64
	transitions []Transition
}

// New creates an empty host.
func New() *Host {
	return &Host{
		parents:    make(map[router.Surface]router.Surface),
		presenting: make(map[router.Surface]router.Surface),
		presenters: make(map[router.Surface]router.Surface),
		styles:     make(map[router.Surface]Style),
		popovers:   make(map[router.Surface]router.PopoverConfig),
		dialogs:    make(map[router.Surface]router.Dialog),
	}
}

// Embed makes parent the structural parent of child, the way a tab or split
// container owns its children.
func (h *Host) Embed(parent, child router.Surface) {
	h.parents[child] = parent
}

// NewContainer creates a surface that structurally owns children.
func (h *Host) NewContainer(name string, children ...router.Surface) *Surface {
	container := NewSurface(name)
	for _, child := range children {
		h.Embed(container, child)
	}
	return container
}

// Present shows s over over. The host refuses (and never completes) a
// presentation over a surface that already presents something, or of a
// surface that is already presented.
func (h *Host) Present(s, over router.Surface, animated bool, onComplete func()) {
	if _, busy := h.presenting[over]; busy {
		internal.GetInternalLogger().Warn("memhost: surface already presenting",
			"over", over.SurfaceName(), "surface", s.SurfaceName())
		return
	}
	if _, shown := h.presenters[s]; shown {
		internal.GetInternalLogger().Warn("memhost: surface already presented", "surface", s.SurfaceName())
		return
	}

	h.presenting[over] = s
	h.presenters[s] = over
	h.record("present", s, over, animated)
	h.enqueue(onComplete)
}

// Dismiss removes the surface presenter presents and everything above it. If
// presenter presents nothing, presenter itself is dismissed by its own
// presenter. Popover delegates are notified as their popovers go away.
func (h *Host) Dismiss(presenter router.Surface, animated bool, onComplete func()) {
	if _, ok := h.presenting[presenter]; !ok {
		if p, presented := h.presenters[presenter]; presented {
			presenter = p
		}
	}

	var dismissed []router.Surface
	for cur := h.presenting[presenter]; cur != nil; {
		next := h.presenting[cur]
		delete(h.presenting, h.presenters[cur])
		delete(h.presenters, cur)
		dismissed = append(dismissed, cur)
		cur = next
	}

	for i := len(dismissed) - 1; i >= 0; i-- {
		h.record("dismiss", dismissed[i], presenter, animated)
		if cfg, ok := h.popovers[dismissed[i]]; ok && cfg.Delegate != nil {
			cfg.Delegate.PopoverDismissed(dismissed[i])
		}
	}
	h.enqueue(onComplete)
}

func (h *Host) StructuralParent(s router.Surface) router.Surface {
	return h.parents[s]
}

func (h *Host) PresentedBy(s router.Surface) router.Surface {
	return h.presenters[s]
}

func (h *Host) CurrentlyPresenting(s router.Surface) router.Surface {
	return h.presenting[s]
}

func (h *Host) SetStyle(s router.Surface, transition constants.TransitionStyle, presentation constants.PresentationStyle) {
	h.styles[s] = Style{Transition: transition, Presentation: presentation}
}

// WrapInStack returns a new Stack named "nav(<name>)" holding s.
func (h *Host) WrapInStack(s router.Surface) router.Surface {
	return h.NewStack("nav("+s.SurfaceName()+")", s)
}

func (h *Host) ConfigurePopover(s router.Surface, cfg router.PopoverConfig) {
	h.popovers[s] = cfg
}

// BuildConfirmationDialog returns a new surface carrying the dialog. Use
// Activate to simulate a tap on one of its actions.
func (h *Host) BuildConfirmationDialog(title, message string, actions []router.DialogAction) router.Surface {
	s := NewSurface("dialog(" + title + ")")
	h.dialogs[s] = router.Dialog{Title: title, Message: message, Actions: actions}
	return s
}

// Activate simulates the user tapping action index of dialog: the dialog is
// dismissed and, once that completes, the action's handler runs.
func (h *Host) Activate(dialog router.Surface, index int) error {
	d, ok := h.dialogs[dialog]
	if !ok {
		return fmt.Errorf("memhost: %s is not a dialog", dialog.SurfaceName())
	}
	if index < 0 || index >= len(d.Actions) {
		return fmt.Errorf("memhost: dialog %s has no action %d", dialog.SurfaceName(), index)
	}
	handler := d.Actions[index].Handler

	if presenter, shown := h.presenters[dialog]; shown {
		h.Dismiss(presenter, true, handler)
	} else if handler != nil {
		handler()
	}
	return nil
}

// Settle runs every pending completion, including completions queued while
// settling, and returns how many ran.
func (h *Host) Settle() int {
	ran := 0
	for len(h.pending) > 0 {
		next := h.pending[0]
		h.pending = h.pending[1:]
		next()
		ran++
	}
	return ran
}

// Pending returns the number of completions waiting for Settle.
func (h *Host) Pending() int {
	return len(h.pending)
}

// Style returns the style last applied to s.
func (h *Host) Style(s router.Surface) (Style, bool) {
	style, ok := h.styles[s]
	return style, ok
}

// Popover returns the popover configuration applied to s.
func (h *Host) Popover(s router.Surface) (router.PopoverConfig, bool) {
	cfg, ok := h.popovers[s]
	return cfg, ok
}

// Dialog returns the dialog carried by s.
func (h *Host) Dialog(s router.Surface) (router.Dialog, bool) {
	d, ok := h.dialogs[s]
	return d, ok
}

// Transitions returns the transition log, oldest first.
func (h *Host) Transitions() []Transition {
	return append([]Transition(nil), h.transitions...)
}

func (h *Host) enqueue(fn func()) {
	if fn != nil {
		h.pending = append(h.pending, fn)
	}
}

func (h *Host) detach(child, parent router.Surface) {
	if h.parents[child] == parent {
		delete(h.parents, child)
	}
}

func (h *Host) record(op string, s, target router.Surface, animated bool) {
	t := Transition{
		Seq:      h.seq.Inc(),
		Op:       op,
		Animated: animated,
	}
	if s != nil {
		t.Surface = s.SurfaceName()
	}
	if target != nil {
		t.Target = target.SurfaceName()
	}
	h.transitions = append(h.transitions, t)
}

var _ router.Host = (*Host)(nil)
