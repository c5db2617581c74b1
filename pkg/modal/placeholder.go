package modal

import (
	"context"
	"errors"
	"maps"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// Placeholder renders every registered modal that has a store entry, so a
// modal can be shown by id without its owner placing it in the view tree.
type Placeholder struct {
	mgr     *Manager
	ctx     context.Context
	mounted map[string]*Mounted
	order   []string
	warned  map[string]struct{}
	width   int
	height  int
}

// NewPlaceholder returns a placeholder for mgr. Providers create one; hosts
// that compose their own root can use it directly.
func NewPlaceholder(ctx context.Context, mgr *Manager) *Placeholder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Placeholder{
		mgr:     mgr,
		ctx:     ctx,
		mounted: make(map[string]*Mounted),
		warned:  make(map[string]struct{}),
	}
}

// Sync mounts adapters for new store entries with a registry definition
// and unmounts those whose entry or definition is gone. Entries with
// neither a definition nor a mounted dialog are logged once and skipped.
func (p *Placeholder) Sync() (tea.Cmd, error) {
	state := p.mgr.State()

	var (
		cmds []tea.Cmd
		errs []error
	)

	kept := p.order[:0]
	for _, id := range p.order {
		w := p.mounted[id]
		_, present := state[id]
		reg, registered := p.mgr.Registration(id)
		if !present || !registered {
			w.Unmount()
			delete(p.mounted, id)
			continue
		}
		w.SetDefaults(reg.Defaults)
		kept = append(kept, id)
	}
	p.order = kept

	for id := range p.warned {
		if _, present := state[id]; !present {
			delete(p.warned, id)
		}
	}

	for _, id := range slices.Sorted(maps.Keys(state)) {
		if _, ok := p.mounted[id]; ok {
			continue
		}
		reg, ok := p.mgr.Registration(id)
		if !ok {
			if !p.mgr.IsMounted(id) {
				p.warnUnknown(id)
			}
			continue
		}

		w := p.mgr.Mount(p.ctx, reg.Component, MountConfig{ID: id, Args: reg.Defaults})
		if p.width > 0 {
			w.SetSize(p.width, p.height)
		}
		p.mounted[id] = w
		p.order = append(p.order, id)

		cmd, err := w.Init()
		cmds = append(cmds, cmd)
		errs = append(errs, err)
	}

	for _, id := range p.order {
		cmd, err := p.mounted[id].Sync()
		cmds = append(cmds, cmd)
		errs = append(errs, err)
	}

	return tea.Batch(cmds...), errors.Join(errs...)
}

func (p *Placeholder) warnUnknown(id string) {
	if _, ok := p.warned[id]; ok {
		return
	}
	p.warned[id] = struct{}{}
	p.mgr.log.Warn().
		Str("modal_id", id).
		Msg("no modal found for id; register it or mount it before showing")
}

// SetSize passes the terminal size to every mounted dialog.
func (p *Placeholder) SetSize(width, height int) {
	p.width, p.height = width, height
	for _, w := range p.mounted {
		w.SetSize(width, height)
	}
}

// Top returns the most recently mounted visible adapter.
func (p *Placeholder) Top() *Mounted {
	for i := len(p.order) - 1; i >= 0; i-- {
		if w := p.mounted[p.order[i]]; w.Visible() {
			return w
		}
	}
	return nil
}

// Mounted returns the adapter for id.
func (p *Placeholder) Mounted(id string) (*Mounted, bool) {
	w, ok := p.mounted[id]
	return w, ok
}

// Update forwards msg to every mounted adapter in stacking order.
func (p *Placeholder) Update(msg tea.Msg) (tea.Cmd, error) {
	var (
		cmds []tea.Cmd
		errs []error
	)
	for _, id := range slices.Clone(p.order) {
		w, ok := p.mounted[id]
		if !ok {
			continue
		}
		cmd, err := w.Update(msg)
		cmds = append(cmds, cmd)
		errs = append(errs, err)
	}
	return tea.Batch(cmds...), errors.Join(errs...)
}

// Views returns the rendered dialogs, bottom first.
func (p *Placeholder) Views() []string {
	views := make([]string, 0, len(p.order))
	for _, id := range p.order {
		if v := p.mounted[id].View(); v != "" {
			views = append(views, v)
		}
	}
	return views
}
