package memory

import (
	"context"
	"sync"
	"time"

	"pet-adoption-board/internal/ports/session"

	"github.com/google/uuid"
)

const defaultTTL = 24 * time.Hour

type entry struct {
	username  string
	expiresAt time.Time
}

// Manager guarda sesiones server-side: el cliente solo ve un token uuid
// opaco; username y expiración viven en esta tabla.
type Manager struct {
	mu      sync.RWMutex
	byToken map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{
		byToken: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Manager) Issue(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Aprovecha cada login para purgar sesiones vencidas y acotar la tabla.
	now := m.now()
	for t, e := range m.byToken {
		if now.After(e.expiresAt) {
			delete(m.byToken, t)
		}
	}

	m.byToken[token] = entry{
		username:  username,
		expiresAt: now.Add(m.ttl),
	}
	return token, nil
}

func (m *Manager) Resolve(ctx context.Context, token string) (session.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.byToken[token]
	if !ok {
		return session.Session{}, false
	}
	if m.now().After(e.expiresAt) {
		// Vencida cuenta como "no logueado", nunca como error.
		return session.Session{}, false
	}
	return session.Session{Username: e.username}, true
}

func (m *Manager) Destroy(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byToken, token)
	return nil
}
