package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("booking session not found")

// sessionTTL bounds how long an abandoned wizard lingers. Purging happens
// lazily on access; there is no background sweeper to manage.
const sessionTTL = 2 * time.Hour

// WizardStore keeps in-progress booking sessions in memory, keyed by an
// opaque id handed to the client. The store lock guards only the map;
// each session carries its own lock, so one customer's slow backend call
// never stalls another customer's session.
type WizardStore struct {
	mu       sync.Mutex
	sessions map[string]*BookingWizard
	now      func() time.Time
}

func NewWizardStore() *WizardStore {
	return &WizardStore{
		sessions: make(map[string]*BookingWizard),
		now:      time.Now,
	}
}

func (ws *WizardStore) Create(prefill WizardPrefill) *BookingWizard {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.purgeLocked()

	wizard := NewBookingWizard(uuid.New().String(), prefill, ws.now())
	ws.sessions[wizard.ID] = wizard
	return wizard
}

// With runs fn with the session locked. The wizard must not escape fn.
// fn may perform repository I/O; only this session is held for its
// duration, never the store.
func (ws *WizardStore) With(id string, fn func(*BookingWizard) error) error {
	ws.mu.Lock()
	ws.purgeLocked()
	wizard, ok := ws.sessions[id]
	ws.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	wizard.mu.Lock()
	defer wizard.mu.Unlock()
	return fn(wizard)
}

func (ws *WizardStore) Delete(id string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	delete(ws.sessions, id)
}

func (ws *WizardStore) purgeLocked() {
	cutoff := ws.now().Add(-sessionTTL)
	for id, wizard := range ws.sessions {
		if wizard.CreatedAt.Before(cutoff) {
			delete(ws.sessions, id)
		}
	}
}
