package dashboard

import (
	"log"
	"sync"
)

// Theme preference key and values
const (
	ThemeKey   = "theme"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// KVStore is the persistence behind the theme toggle
type KVStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// MemoryStore is an in-process KVStore
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get returns the value for key, "" if unset
func (m *MemoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

// Set stores value under key
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Theme is the light/dark preference of one session
type Theme struct {
	mu    sync.Mutex
	store KVStore
	dark  bool
}

// LoadTheme reads the stored preference. Anything but "dark", including a
// storage failure, starts in light mode.
func LoadTheme(store KVStore) *Theme {
	t := &Theme{store: store}
	if store == nil {
		return t
	}
	value, err := store.Get(ThemeKey)
	if err != nil {
		log.Printf("⚠️ Theme: preference unavailable, using light: %v", err)
		return t
	}
	t.dark = value == ThemeDark
	return t
}

// Dark reports whether dark mode is on
func (t *Theme) Dark() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dark
}

// Name returns "dark" or "light"
func (t *Theme) Name() string {
	if t.Dark() {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle flips the theme and persists it. A failed write is logged; the
// in-memory theme still flips.
func (t *Theme) Toggle() string {
	t.mu.Lock()
	t.dark = !t.dark
	name := ThemeLight
	if t.dark {
		name = ThemeDark
	}
	store := t.store
	t.mu.Unlock()

	if store != nil {
		if err := store.Set(ThemeKey, name); err != nil {
			log.Printf("⚠️ Theme: failed to persist %q: %v", name, err)
		}
	}
	return name
}
