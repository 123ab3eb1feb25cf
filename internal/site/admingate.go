package site

import "sync"

// AdminGate unlocks the admin panel with a pin. The pin matches when it equals
// the master override or the stored admin pin; while no pin was ever stored the
// configured default takes its place. Failed attempts are not counted.
//
// The gate keeps no unlocked state: a successful unlock is represented by the
// admin token issued to the caller.
type AdminGate struct {
	master   string
	fallback string

	mu     sync.RWMutex
	stored string
}

// NewAdminGate returns a gate for the given master, default and stored pins.
func NewAdminGate(master, fallback, stored string) *AdminGate {
	return &AdminGate{master: master, fallback: fallback, stored: stored}
}

// SetStored replaces the stored admin pin.
func (g *AdminGate) SetStored(pin string) {
	g.mu.Lock()
	g.stored = pin
	g.mu.Unlock()
}

// Unlock reports whether pin opens the gate.
func (g *AdminGate) Unlock(pin string) bool {
	if pin == "" {
		return false
	}

	if g.master != "" && pin == g.master {
		return true
	}

	g.mu.RLock()
	expected := g.stored
	g.mu.RUnlock()

	if expected == "" {
		expected = g.fallback
	}

	return expected != "" && pin == expected
}
