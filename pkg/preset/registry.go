package preset

import (
	"sort"
	"strings"
	"sync"
)

// HintKey is the field hint that names a preset explicitly.
const HintKey = "inputmask"

// Field describes an input for preset resolution.
type Field struct {
	Name   string
	Type   string // JSON schema type: string, number, integer
	Format string
	Hints  map[string]string
}

// Matcher decides whether a preset should handle the supplied field.
type Matcher func(field Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects presets for fields based on explicit hints or registered
// matchers. Higher priority wins; ties fall back to registration order. An
// empty registry only honours explicit hints.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher resolving to the preset called name.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the preset name for a field. The HintKey hint is honoured
// before matcher evaluation.
func (r *Registry) Resolve(field Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Hints[HintKey]); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(BuiltinDateTime, 90, func(field Field) bool {
		return field.Type == "string" && normalizedFormat(field) == "date-time"
	})

	r.Register(BuiltinDate, 85, func(field Field) bool {
		return field.Type == "string" && normalizedFormat(field) == "date"
	})

	r.Register(BuiltinTime, 80, func(field Field) bool {
		return field.Type == "string" && normalizedFormat(field) == "time"
	})

	r.Register(BuiltinMoney, 70, func(field Field) bool {
		if field.Type != "number" && field.Type != "integer" {
			return false
		}
		switch normalizedFormat(field) {
		case "money", "currency":
			return true
		}
		name := strings.ToLower(field.Name)
		for _, hint := range []string{"price", "amount", "cost", "total"} {
			if strings.Contains(name, hint) {
				return true
			}
		}
		return false
	})

	r.Register(BuiltinDecimal, 60, func(field Field) bool {
		return field.Type == "number"
	})

	r.Register(BuiltinInteger, 50, func(field Field) bool {
		return field.Type == "integer"
	})
}

func normalizedFormat(field Field) string {
	return strings.ToLower(strings.TrimSpace(field.Format))
}
