package catlog

import (
	"sort"
	"sync"
)

// registry tracks every live category and the active rule list. It holds
// only borrowed references, keyed by identity; categories own themselves and
// drop out on Close. As a package-level singleton it is never torn down, so
// a category closing at any point of process shutdown always finds it alive.
type registry struct {
	mu         sync.Mutex
	categories map[*Category]struct{}
	rules      []Rule
}

var logRegistry = &registry{categories: make(map[*Category]struct{})}

func (r *registry) register(c *Category) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[c]; ok {
		return
	}
	r.categories[c] = struct{}{}
	r.applyLocked(c)
}

func (r *registry) unregister(c *Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, c)
}

func (r *registry) setRules(rules []Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = rules
	for c := range r.categories {
		r.applyLocked(c)
	}
}

// applyLocked resets the category to its default level and replays every
// matching rule in input order, so the last matching rule wins. Callers hold
// r.mu.
func (r *registry) applyLocked(c *Category) {
	c.ResetLevel()
	for _, rule := range r.rules {
		if rule.Pattern == "*" || rule.Pattern == c.name {
			c.SetLevel(rule.Level)
		}
	}
}

func (r *registry) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.categories))
	for c := range r.categories {
		names = append(names, c.name)
	}
	sort.Strings(names)
	return names
}

// SetRules replaces the active rule list wholesale and re-applies it to
// every registered category. Rules are not additive across calls; an empty
// list restores every category to its default level.
func SetRules(rules []Rule) {
	logRegistry.setRules(rules)
}

// Categories returns the names of all registered categories, sorted.
func Categories() []string {
	return logRegistry.names()
}
