package i18n

import "sync"

// PreferenceStore persists the visitor's explicitly chosen language across
// visits. It is read once at startup and written only on a successful switch.
type PreferenceStore interface {
	// Preferred returns the stored language choice and whether one exists.
	Preferred() (string, bool)

	// SetPreferred stores the language choice.
	SetPreferred(lang string) error
}

// MemoryPreferences is an in-memory PreferenceStore, used as the default and
// in tests.
type MemoryPreferences struct {
	mu   sync.Mutex
	lang string
	set  bool
}

// NewMemoryPreferences creates an empty MemoryPreferences.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{}
}

// Preferred implements the PreferenceStore interface.
func (p *MemoryPreferences) Preferred() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lang, p.set
}

// SetPreferred implements the PreferenceStore interface.
func (p *MemoryPreferences) SetPreferred(lang string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lang = lang
	p.set = true
	return nil
}
