package dashboard

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"go-records-dashboard/internal/pipeline"
)

// Session is one browser's dashboard, document and theme
type Session struct {
	ID        string
	Dashboard *Dashboard
	Document  *Document
	Theme     *Theme
	CreatedAt time.Time

	initOnce sync.Once
}

// EnsureInit runs the dashboard's initial load exactly once
func (s *Session) EnsureInit(ctx context.Context) {
	s.initOnce.Do(func() {
		s.Dashboard.Init(ctx)
	})
}

// View is the dashboard view with the session's theme
func (s *Session) View() View {
	v := s.Dashboard.View()
	v.Theme = s.Theme.Name()
	return v
}

// StoreFunc returns the preference store of a session
type StoreFunc func(sessionID string) KVStore

// FetchHook receives every records request a session issues
type FetchHook func(sessionID string, outcome LoadOutcome)

// DefaultSessionLimit bounds the live sessions of a registry
const DefaultSessionLimit = 1000

// Registry keeps the most recently used sessions. The least recently used
// session is evicted, and its panel unmounted, once the limit is reached.
type Registry struct {
	mu       sync.Mutex
	src      pipeline.Source
	sessions *lru.Cache[string, *Session]
	stores   StoreFunc
	onFetch  FetchHook
}

// RegistryOption configures a Registry
type RegistryOption func(*registryConfig)

type registryConfig struct {
	limit int
}

// WithSessionLimit overrides DefaultSessionLimit
func WithSessionLimit(n int) RegistryOption {
	return func(c *registryConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

// NewRegistry creates a registry whose dashboards load from src. A nil stores
// gives every session a MemoryStore.
func NewRegistry(src pipeline.Source, stores StoreFunc, onFetch FetchHook, opts ...RegistryOption) *Registry {
	if stores == nil {
		stores = func(string) KVStore { return NewMemoryStore() }
	}
	cfg := registryConfig{limit: DefaultSessionLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	cache, err := lru.NewWithEvict(cfg.limit, func(id string, s *Session) {
		s.Dashboard.Close()
		log.Printf("🗑️ Session %s evicted", id)
	})
	if err != nil {
		// only reachable with a non-positive size, which WithSessionLimit rejects
		panic(err)
	}

	return &Registry{
		src:      src,
		sessions: cache,
		stores:   stores,
		onFetch:  onFetch,
	}
}

// Get returns the session for id. An unknown id that is a canonical UUID, as
// left by a restart or an eviction, is restored under the same id so its
// stored preferences load again; an empty or malformed id gets a fresh one.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id != "" {
		if s, ok := r.sessions.Get(id); ok {
			return s, false
		}
	}
	if parsed, err := uuid.Parse(id); err != nil || parsed.String() != id {
		id = uuid.New().String()
	}
	return r.create(id), true
}

// Len reports the number of live sessions
func (r *Registry) Len() int {
	return r.sessions.Len()
}

// Close unmounts every session's panel
func (r *Registry) Close() {
	r.sessions.Purge()
}

func (r *Registry) create(id string) *Session {
	doc := NewDocument()

	var opts []Option
	if r.onFetch != nil {
		hook := r.onFetch
		opts = append(opts, WithFetchHook(func(o LoadOutcome) { hook(id, o) }))
	}

	s := &Session{
		ID:        id,
		Dashboard: New(r.src, doc, opts...),
		Document:  doc,
		Theme:     LoadTheme(r.stores(id)),
		CreatedAt: time.Now().UTC(),
	}

	r.sessions.Add(id, s)

	log.Printf("🆕 Session %s created (theme %s)", id, s.Theme.Name())
	return s
}
