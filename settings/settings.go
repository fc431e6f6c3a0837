// Package settings persists the player's display preferences between runs.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const settingsKey = "settings"

// Settings is the data stored on disk.
type Settings struct {
	Fullscreen  bool    `json:"fullscreen"`
	WindowScale float64 `json:"windowScale"`
	ShowDebug   bool    `json:"showDebug"`
}

func Default() Settings {
	return Settings{WindowScale: 1}
}

// itemStore is the part of gdata.Manager the store uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

type Store struct {
	items itemStore
	log   logrus.FieldLogger
}

// Open sets up the gdata backend for appName.
func Open(appName string, log logrus.FieldLogger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings storage: %w", err)
	}
	return newStore(m, log), nil
}

func newStore(items itemStore, log logrus.FieldLogger) *Store {
	return &Store{items: items, log: log.WithField("component", "settings")}
}

// Load returns the saved settings, or the defaults when nothing usable has
// been saved yet.
func (s *Store) Load() Settings {
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		s.log.WithError(err).Warn("could not load settings")
		return Default()
	}
	if len(data) == 0 {
		return Default()
	}

	loaded := Default()
	if err := json.Unmarshal(data, &loaded); err != nil {
		s.log.WithError(err).Warn("could not parse saved settings")
		return Default()
	}
	if loaded.WindowScale <= 0 {
		loaded.WindowScale = 1
	}
	return loaded
}

func (s *Store) Save(settings Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.WithField("settings", settings).Debug("settings saved")
	return nil
}
