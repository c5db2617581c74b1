package modal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Dialog is the Bubble Tea model that renders one modal.
type Dialog interface {
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string
}

// Initializer is implemented by dialogs that need a command when built.
type Initializer interface {
	Init() tea.Cmd
}

// Sizer is implemented by dialogs that lay themselves out against the
// terminal size.
type Sizer interface {
	SetSize(width, height int)
}

// ArgsSetter is implemented by dialogs that react to a later Show replacing
// their arguments while they are still mounted.
type ArgsSetter interface {
	SetArgs(args Args)
}

// BuildFunc creates the dialog for a modal. ctx carries the modal id (see
// IDFromContext) so the dialog can call UseModal without naming itself.
type BuildFunc func(ctx context.Context, h *Handler, args Args) Dialog

// Component is a renderable modal definition. Components are compared by
// pointer: two NewComponent calls yield two distinct modals.
type Component struct {
	name  string
	build BuildFunc
}

// NewComponent returns a component that builds dialogs with build. name is
// only used in logs.
func NewComponent(name string, build BuildFunc) *Component {
	return &Component{name: name, build: build}
}

// Name returns the component's display name.
func (c *Component) Name() string {
	return c.name
}

func (c *Component) modalID(m *Manager) string {
	return m.componentID(c)
}

// Ref names a modal either by id or by component.
type Ref interface {
	modalID(m *Manager) string
}

// ID refers to a modal by its string id.
type ID string

func (id ID) modalID(*Manager) string {
	return string(id)
}

type ctxKey struct{}

// WithID returns a copy of ctx carrying id as the ambient modal id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IDFromContext returns the ambient modal id set by a Mounted adapter.
func IDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
