package modal

// Args carries the parameters passed to a modal at show time.
type Args map[string]any

// ModalState is the store entry for one modal id.
type ModalState struct {
	ID           string
	Args         Args
	Visible      bool
	DelayVisible bool // show was requested before the dialog first mounted
	KeepMounted  bool // suppress removal from the store after hiding
}

// State maps modal ids to their entries. A State is never mutated once
// published; every transition produces a new map.
type State map[string]ModalState

// Lookup returns the entry for id.
func (s State) Lookup(id string) (ModalState, bool) {
	entry, ok := s[id]
	return entry, ok
}

// ActionKind identifies a store transition.
type ActionKind int

const (
	ActionShow ActionKind = iota + 1
	ActionHide
	ActionRemove
	ActionSetFlags
)

func (k ActionKind) String() string {
	switch k {
	case ActionShow:
		return "show"
	case ActionHide:
		return "hide"
	case ActionRemove:
		return "remove"
	case ActionSetFlags:
		return "set-flags"
	default:
		return "unknown"
	}
}

// Action is a request to transition the store.
type Action struct {
	Kind ActionKind
	ID   string
	Args Args

	// Mounted reports whether the dialog for ID had completed its first
	// mount when the show was dispatched. Only read by ActionShow.
	Mounted bool

	// Flags is merged into the entry by ActionSetFlags.
	Flags Flags
}

// Flags is a partial ModalState. Nil fields are left untouched on merge.
type Flags struct {
	Visible      *bool
	DelayVisible *bool
	KeepMounted  *bool
}

// Bool returns a pointer to v, for building Flags.
func Bool(v bool) *bool {
	return &v
}

// ShowAction builds an ActionShow.
func ShowAction(id string, args Args, mounted bool) Action {
	return Action{Kind: ActionShow, ID: id, Args: args, Mounted: mounted}
}

// HideAction builds an ActionHide.
func HideAction(id string) Action {
	return Action{Kind: ActionHide, ID: id}
}

// RemoveAction builds an ActionRemove.
func RemoveAction(id string) Action {
	return Action{Kind: ActionRemove, ID: id}
}

// SetFlagsAction builds an ActionSetFlags.
func SetFlagsAction(id string, flags Flags) Action {
	return Action{Kind: ActionSetFlags, ID: id, Flags: flags}
}

// Reduce applies action to state and returns the resulting state. It has
// no side effects. No-op transitions return state itself.
func Reduce(state State, action Action) State {
	switch action.Kind {
	case ActionShow:
		entry := state[action.ID]
		entry.ID = action.ID
		entry.Args = action.Args
		entry.Visible = action.Mounted
		entry.DelayVisible = !action.Mounted
		return with(state, entry)

	case ActionHide:
		entry, ok := state[action.ID]
		if !ok {
			return state
		}
		entry.Visible = false
		return with(state, entry)

	case ActionRemove:
		if _, ok := state[action.ID]; !ok {
			return state
		}
		next := make(State, len(state))
		for id, entry := range state {
			if id != action.ID {
				next[id] = entry
			}
		}
		return next

	case ActionSetFlags:
		entry := state[action.ID]
		entry.ID = action.ID
		if f := action.Flags.Visible; f != nil {
			entry.Visible = *f
		}
		if f := action.Flags.DelayVisible; f != nil {
			entry.DelayVisible = *f
		}
		if f := action.Flags.KeepMounted; f != nil {
			entry.KeepMounted = *f
		}
		return with(state, entry)
	}

	return state
}

// with copies state and upserts entry under entry.ID.
func with(state State, entry ModalState) State {
	next := make(State, len(state)+1)
	for id, e := range state {
		next[id] = e
	}
	next[entry.ID] = entry
	return next
}
