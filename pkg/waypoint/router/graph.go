package router

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"

// rootParent follows structural parents from s to the outermost ancestor.
// It returns nil when s has no structural parent.
func rootParent(h Host, s Surface) Surface {
	if h == nil || !alive(s) {
		return nil
	}

	var root Surface
	visited := map[Surface]struct{}{s: {}}
	for cur := h.StructuralParent(s); alive(cur); cur = h.StructuralParent(cur) {
		if _, seen := visited[cur]; seen {
			internal.GetInternalLogger().Warn("structural parent cycle", "surface", cur.SurfaceName())
			break
		}
		visited[cur] = struct{}{}
		root = cur
	}
	return root
}

// rootParentOrSelf is rootParent(s) ?? s.
func rootParentOrSelf(h Host, s Surface) Surface {
	if root := rootParent(h, s); root != nil {
		return root
	}
	return s
}

// presentationStack lists the surfaces reachable from anchor by repeatedly
// following the currently presented surface, nearest first. anchor itself is
// not included.
func presentationStack(h Host, anchor Surface) []Surface {
	if h == nil || !alive(anchor) {
		return nil
	}

	var chain []Surface
	visited := map[Surface]struct{}{anchor: {}}
	for cur := h.CurrentlyPresenting(anchor); alive(cur); cur = h.CurrentlyPresenting(cur) {
		if _, seen := visited[cur]; seen {
			internal.GetInternalLogger().Warn("presentation cycle", "surface", cur.SurfaceName())
			break
		}
		visited[cur] = struct{}{}
		chain = append(chain, cur)
	}
	return chain
}
