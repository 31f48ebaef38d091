package terminal

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/driver"
)

// ServiceName identifies the terminal service in a lifecycle hub
const ServiceName = "terminal"

// TerminalService owns a Terminal for the lifetime of a hub.
// Init builds the driver, Start enters the alternate screen, Stop restores.
type TerminalService struct {
	caps    *capability.Service
	backend Backend
	term    *Terminal
	mu      sync.Mutex
	running bool
}

// NewService creates a terminal service fed by a capability service
func NewService(caps *capability.Service, backend Backend) *TerminalService {
	return &TerminalService{
		caps:    caps,
		backend: backend,
	}
}

// Name implements Service
func (s *TerminalService) Name() string {
	return ServiceName
}

// Dependencies implements Service
func (s *TerminalService) Dependencies() []string {
	return []string{capability.ServiceName}
}

// Init implements Service; args are ignored
func (s *TerminalService) Init(args ...any) error {
	drv, err := driver.NewWithDatabase(s.caps.Database())
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.term = New(drv, s.backend)
	return nil
}

// Start implements Service - enters the alternate screen
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.term == nil {
		return fmt.Errorf("terminal start: not initialized")
	}
	if err := s.term.Init(); err != nil {
		return fmt.Errorf("terminal start: %w", err)
	}
	s.running = true
	return nil
}

// Stop implements Service - restores the terminal; idempotent
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	s.term.Fini()
	return nil
}

// Terminal returns the wrapped terminal instance, nil before Init
func (s *TerminalService) Terminal() *Terminal {
	return s.term
}
