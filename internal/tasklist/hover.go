package tasklist

// HoverState records, per task ID, whether the pointer rests over that
// row's name cell. Values are never mutated in place once published.
type HoverState map[string]bool

// Hovered reports whether id is hovered. Unknown IDs are not.
func (h HoverState) Hovered(id string) bool {
	return h[id]
}

// HoverUpdate derives the next hover state from the previous one.
type HoverUpdate func(prev HoverState) HoverState

// MarkHovered sets id to hovered, keeping every other entry.
func MarkHovered(id string) HoverUpdate {
	return setHover(id, true)
}

// MarkUnhovered sets id to not hovered, keeping every other entry.
func MarkUnhovered(id string) HoverUpdate {
	return setHover(id, false)
}

func setHover(id string, hovered bool) HoverUpdate {
	return func(prev HoverState) HoverState {
		next := make(HoverState, len(prev)+1)
		for k, v := range prev {
			next[k] = v
		}
		next[id] = hovered
		return next
	}
}

// HoverTracker holds the hover state of one table and keeps it bounded
// to the IDs currently rendered.
type HoverTracker struct {
	state HoverState
	known map[string]struct{}
}

// NewHoverTracker creates an empty tracker that accepts any ID until
// Reconcile is called.
func NewHoverTracker() *HoverTracker {
	return &HoverTracker{state: HoverState{}}
}

// State returns the current hover state. Callers must not modify it.
func (h *HoverTracker) State() HoverState {
	return h.state
}

// Apply runs updates in order, each on the result of the previous one,
// then drops entries for IDs that are no longer rendered.
func (h *HoverTracker) Apply(updates ...HoverUpdate) {
	state := h.state
	for _, u := range updates {
		if u != nil {
			state = u(state)
		}
	}
	h.state = h.prune(state)
}

// Reconcile sets the rendered ID set and drops stale entries.
func (h *HoverTracker) Reconcile(ids []string) {
	known := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		known[id] = struct{}{}
	}
	h.known = known
	h.state = h.prune(h.state)
}

func (h *HoverTracker) prune(state HoverState) HoverState {
	if h.known == nil {
		return state
	}
	stale := false
	for id := range state {
		if _, ok := h.known[id]; !ok {
			stale = true
			break
		}
	}
	if !stale {
		return state
	}
	next := make(HoverState, len(state))
	for id, v := range state {
		if _, ok := h.known[id]; ok {
			next[id] = v
		}
	}
	return next
}
