package settings

import (
	"errors"
	"testing"

	"github.com/automoto/hollowvale/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func TestLoadWithoutSave(t *testing.T) {
	s := newStore(&memStore{}, logger.Discard())
	assert.Equal(t, Default(), s.Load())
}

func TestSaveThenLoad(t *testing.T) {
	s := newStore(&memStore{}, logger.Discard())
	want := Settings{Fullscreen: true, WindowScale: 2, ShowDebug: true}
	require.NoError(t, s.Save(want))
	assert.Equal(t, want, s.Load())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	tests := map[string]*memStore{
		"backend error": {loadErr: errors.New("disk on fire")},
		"corrupt json":  {items: map[string][]byte{settingsKey: []byte("{")}},
	}
	for name, store := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, Default(), newStore(store, logger.Discard()).Load())
		})
	}
}

func TestLoadFixesBadScale(t *testing.T) {
	store := &memStore{items: map[string][]byte{settingsKey: []byte(`{"windowScale":0,"showDebug":true}`)}}
	got := newStore(store, logger.Discard()).Load()
	assert.Equal(t, 1.0, got.WindowScale)
	assert.True(t, got.ShowDebug)
}
