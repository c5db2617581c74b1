package modal

import (
	"maps"
	"slices"
)

// Registration is a registry entry: the component rendered for an id and
// the default args merged under the args of each Show.
type Registration struct {
	Component *Component
	Defaults  Args
}

// Register binds id to c. Registering an id again only replaces its
// defaults; the first component stays bound.
func (m *Manager) Register(id string, c *Component, defaults Args) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if reg, ok := m.registry[id]; ok {
		reg.Defaults = defaults
		m.registry[id] = reg
		return
	}
	m.registry[id] = Registration{Component: c, Defaults: defaults}
}

// Unregister removes id from the registry. Unknown ids are ignored.
func (m *Manager) Unregister(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.registry, id)
}

// Component returns the component registered for id.
func (m *Manager) Component(id string) (*Component, bool) {
	reg, ok := m.Registration(id)
	return reg.Component, ok
}

// Registration returns the registry entry for id.
func (m *Manager) Registration(id string) (Registration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	reg, ok := m.registry[id]
	return reg, ok
}

// Registered returns the registered ids in sorted order.
func (m *Manager) Registered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.registry))
}

// mergeArgs returns defaults overlaid with live. Either may be nil.
func mergeArgs(defaults, live Args) Args {
	if len(defaults) == 0 {
		return live
	}
	merged := make(Args, len(defaults)+len(live))
	maps.Copy(merged, defaults)
	maps.Copy(merged, live)
	return merged
}
