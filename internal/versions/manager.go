package versions

import (
	"sync"

	"github.com/tracklab/tracklab-api/internal/services"
)

// Manager hands out one Store per project, creating stores lazily on
// first use. All stores share one credits ledger.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	opts    Options
	credits *services.CreditsService
}

func NewManager(credits *services.CreditsService, opts Options) *Manager {
	return &Manager{
		stores:  map[string]*Store{},
		opts:    opts,
		credits: credits,
	}
}

// Store returns the project's version store, creating it if needed.
func (m *Manager) Store(projectID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[projectID]
	if !ok {
		s = NewStore(projectID, m.credits, m.opts)
		m.stores[projectID] = s
	}
	return s
}

// Credits exposes the shared usage ledger.
func (m *Manager) Credits() *services.CreditsService {
	return m.credits
}
