package data

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spencer-p/suncalc/pkg/log"
)

// ErrNotFound is returned for a place name that is not stored.
var ErrNotFound = errors.New("place not found")

// Place is a named observer location.
type Place struct {
	gorm.Model `json:"-"`
	Name       string  `gorm:"uniqueIndex" json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Height     float64 `json:"height"`
}

// Places stores named locations.
type Places interface {
	Get(ctx context.Context, name string) (Place, error)
	List(ctx context.Context) ([]Place, error)
	Save(ctx context.Context, p *Place) error
}

// PostgresConfig locates the database.
type PostgresConfig struct {
	Host, Port, Password string
}

// Postgres connects to the places database and migrates its schema.
func Postgres(cfg PostgresConfig) (Places, error) {
	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=suncalc port=%s sslmode=disable TimeZone=UTC",
		cfg.Host,
		cfg.Password,
		cfg.Port)

	dbLogger := logger.New(
		zap.NewStdLog(log.Logger()),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&Place{}); err != nil {
		return nil, fmt.Errorf("failed to migrate places: %w", err)
	}
	return &gormPlaces{db: db}, nil
}

type gormPlaces struct {
	db *gorm.DB
}

func (s *gormPlaces) Get(ctx context.Context, name string) (Place, error) {
	var p Place
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Place{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, err
}

func (s *gormPlaces) List(ctx context.Context) ([]Place, error) {
	var places []Place
	err := s.db.WithContext(ctx).Order("name").Find(&places).Error
	return places, err
}

// Save creates p, or updates the stored place of the same name.
func (s *gormPlaces) Save(ctx context.Context, p *Place) error {
	db := s.db.WithContext(ctx)
	var existing Place
	err := db.Where("name = ?", p.Name).First(&existing).Error
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}
	return db.Save(p).Error
}

// Memory keeps places in a map. It is used when no database is configured.
type Memory struct {
	mu     sync.RWMutex
	places map[string]Place
}

// NewMemory returns a store holding the given places.
func NewMemory(places ...Place) *Memory {
	m := &Memory{places: make(map[string]Place)}
	for _, p := range places {
		m.places[p.Name] = p
	}
	return m
}

func (m *Memory) Get(_ context.Context, name string) (Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.places[name]
	if !ok {
		return Place{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return p, nil
}

func (m *Memory) List(_ context.Context) ([]Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]Place, 0, len(m.places))
	for _, p := range m.places {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *Memory) Save(_ context.Context, p *Place) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.places[p.Name] = *p
	return nil
}
