package registry

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/specialistvlad/datapkg/internal/datapkg"
)

// Taxonomy holds the declared is-a relation between representation types.
// Types that were never declared are only related to themselves.
type Taxonomy struct {
	mu      sync.RWMutex
	parents map[datapkg.Type][]datapkg.Type
}

// NewTaxonomy creates an empty taxonomy.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{parents: make(map[datapkg.Type][]datapkg.Type)}
}

// Declare records that child is-a each of parents. Relations that would make
// a type its own ancestor are rejected.
func (t *Taxonomy) Declare(child datapkg.Type, parents ...datapkg.Type) error {
	if child == datapkg.Any {
		return fmt.Errorf("cannot declare relations for an empty type")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, parent := range parents {
		if parent == datapkg.Any {
			return fmt.Errorf("type %s: parent type must not be empty", child)
		}
		if parent == child || t.isA(parent, child) {
			return fmt.Errorf("type %s: declaring it a %s would create a cycle", child, parent)
		}
	}
	for _, parent := range parents {
		if !slices.Contains(t.parents[child], parent) {
			t.parents[child] = append(t.parents[child], parent)
		}
	}
	slog.Debug("Declared representation type relation.", "type", child, "parents", parents)
	return nil
}

// IsA reports whether sub equals super or is declared, directly or
// transitively, to be a super. A nil Taxonomy compares nominally.
func (t *Taxonomy) IsA(sub, super datapkg.Type) bool {
	if sub == super {
		return true
	}
	if t == nil {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isA(sub, super)
}

func (t *Taxonomy) isA(sub, super datapkg.Type) bool {
	seen := map[datapkg.Type]struct{}{}
	stack := []datapkg.Type{sub}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == super {
			return true
		}
		if _, ok := seen[cur]; ok {
			continue
		}
		seen[cur] = struct{}{}
		stack = append(stack, t.parents[cur]...)
	}
	return false
}

// Parents returns the direct parents declared for a type.
func (t *Taxonomy) Parents(child datapkg.Type) []datapkg.Type {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.parents[child])
}

// Types returns every type that has declared parents, sorted.
func (t *Taxonomy) Types() []datapkg.Type {
	if t == nil {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	types := make([]datapkg.Type, 0, len(t.parents))
	for child := range t.parents {
		types = append(types, child)
	}
	slices.Sort(types)
	return types
}
