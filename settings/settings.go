package settings

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	appName     = "heaven-and-hell"
	settingsKey = "settings"
)

// Settings are the display preferences kept between runs.
type Settings struct {
	Fullscreen bool `json:"fullscreen"`
	ShowDebug  bool `json:"showDebug"`
}

// Storage is the item store settings are kept in. *gdata.Manager satisfies it.
type Storage interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store loads and saves Settings. A Store without storage is a no-op, so the
// game still runs where persistence is unavailable.
type Store struct {
	storage Storage
	logger  *log.Logger
}

// Open returns a Store backed by the per-user gdata directory. When that
// cannot be opened the returned Store keeps nothing.
func Open(logger *log.Logger) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("could not initialize persistence", "error", err)
		return &Store{logger: logger}
	}
	return &Store{storage: m, logger: logger}
}

func NewStore(storage Storage, logger *log.Logger) *Store {
	return &Store{storage: storage, logger: logger}
}

// Load returns the saved settings, or the zero Settings when nothing has been
// saved yet.
func (s *Store) Load() (Settings, error) {
	if s.storage == nil {
		return Settings{}, nil
	}

	data, err := s.storage.LoadItem(settingsKey)
	if err != nil {
		s.logger.Warn("could not load settings", "error", err)
		return Settings{}, nil
	}
	if len(data) == 0 {
		return Settings{}, nil
	}

	var saved Settings
	if err := json.Unmarshal(data, &saved); err != nil {
		return Settings{}, fmt.Errorf("parse saved settings: %w", err)
	}
	return saved, nil
}

func (s *Store) Save(v Settings) error {
	if s.storage == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.storage.SaveItem(settingsKey, data); err != nil {
		s.logger.Warn("could not save settings", "error", err)
		return err
	}
	return nil
}
