package capability

import "fmt"

// ServiceName identifies the capability service in a lifecycle hub
const ServiceName = "capabilities"

// Service validates a database during Init so dependent services start
// only on a terminal that satisfies Required
type Service struct {
	source func() *Database
	db     *Database
}

// NewService validates the process-wide database
func NewService() *Service {
	return &Service{source: Acquire}
}

// NewServiceWithDatabase validates an explicit database
func NewServiceWithDatabase(db *Database) *Service {
	return &Service{source: func() *Database { return db }}
}

func (s *Service) Name() string {
	return ServiceName
}

func (s *Service) Dependencies() []string {
	return nil
}

// Init runs validation; args are ignored
func (s *Service) Init(args ...any) error {
	db := s.source()
	if db == nil {
		db = Empty()
	}
	valid, err := Validate(db, Required())
	if err != nil {
		return fmt.Errorf("capabilities: %w", err)
	}
	s.db = valid
	return nil
}

func (s *Service) Start() error {
	return nil
}

func (s *Service) Stop() error {
	return nil
}

// Database returns the validated database, nil before a successful Init
func (s *Service) Database() *Database {
	return s.db
}
