package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lumenhl/rosettes/internal/log"
)

// Registry resolves canonical names and aliases to lazily constructed,
// memoized instances of T. Construction happens at most once per name: a
// registered New func is only ever invoked the first time that language or
// formatter is actually requested, and the result is cached for the life
// of the process (spec's "no unbounded per-call allocation" requirement).
//
// The cache is backed by patrickmn/go-cache with NoExpiration: registered
// languages and formatters are a small, closed set fixed at startup, so
// there's nothing to evict and no TTL to reason about, just thread-safe
// memoization.
type Registry[T any] struct {
	mu      sync.Mutex
	cache   *gocache.Cache
	aliases map[string]string
	names   []string
	factory map[string]func() T
}

// NewRegistry builds an empty registry. Register entries with Register
// before calling Resolve.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		cache:   gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		aliases: make(map[string]string),
		factory: make(map[string]func() T),
	}
}

// Register adds a canonical name with its aliases and construction
// function. Names and aliases are matched case-insensitively. Registering
// the same canonical name twice replaces the earlier entry.
func (r *Registry[T]) Register(name string, aliases []string, new func() T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(name)
	if _, exists := r.factory[key]; !exists {
		r.names = append(r.names, key)
	}
	r.factory[key] = new
	r.aliases[key] = key
	for _, a := range aliases {
		r.aliases[strings.ToLower(a)] = key
	}
}

// Resolve returns the memoized instance for name or any of its aliases,
// constructing it on first use. Safe for concurrent use by many
// goroutines resolving the same or different names at once: the whole
// check-then-construct sequence runs under r.mu so two goroutines racing
// on a cold entry can never both invoke its constructor.
func (r *Registry[T]) Resolve(name string) (T, bool) {
	var zero T
	key := strings.ToLower(strings.TrimSpace(name))

	r.mu.Lock()
	defer r.mu.Unlock()

	canonical, ok := r.aliases[key]
	if !ok {
		return zero, false
	}

	if cached, found := r.cache.Get(canonical); found {
		v, ok := cached.(T)
		if !ok {
			log.Error(log.CatRegistry, "wrong type in registry cache", "name", canonical)
			return zero, false
		}
		return v, true
	}

	instance := r.factory[canonical]()
	r.cache.Set(canonical, instance, gocache.NoExpiration)
	log.Debug(log.CatRegistry, "constructed and cached", "name", canonical)
	return instance, true
}

// Names returns every registered canonical name, sorted, for a "list
// supported languages/formatters" surface.
func (r *Registry[T]) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	sort.Strings(out)
	return out
}

// String implements fmt.Stringer so a registry prints its contents nicely
// in debug logs and error messages instead of a bare pointer.
func (r *Registry[T]) String() string {
	return fmt.Sprintf("Registry(%d entries)", len(r.Names()))
}
