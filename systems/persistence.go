package systems

import (
	"fmt"
	"log"

	cfg "github.com/automoto/tracer/config"
	"github.com/quasilyte/gdata"
)

// Store is the key/value storage saved tuning lives in. *gdata.Manager
// satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

const tuningKey = "tuning"

var store Store

// InitPersistence opens the gdata storage for saved tuning
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tracer",
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	store = m
	return nil
}

// SetStore replaces the storage backend; nil disables persistence.
func SetStore(s Store) {
	store = s
}

// LoadSavedTuning returns the saved tuning, or nil when nothing was saved or
// persistence is unavailable.
func LoadSavedTuning() (*cfg.Tuning, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved tuning yet, use defaults
		return nil, nil
	}

	t, err := cfg.LoadTuning(data)
	if err != nil {
		return nil, fmt.Errorf("parse saved tuning: %w", err)
	}
	return &t, nil
}

// ApplySavedTuning installs the saved tuning, if there is one. The save goes
// through the same validation as a tuning file, so a save whose effects do not
// compile is rejected and the current configuration stays in place.
func ApplySavedTuning() error {
	saved, err := LoadSavedTuning()
	if err != nil || saved == nil {
		return err
	}
	return ApplyTuning(nil, *saved)
}

// SaveTuning writes t to storage
func SaveTuning(t cfg.Tuning) error {
	if store == nil {
		return nil
	}

	data, err := cfg.MarshalTuning(t)
	if err != nil {
		return fmt.Errorf("serialize tuning: %w", err)
	}

	if err := store.SaveItem(tuningKey, data); err != nil {
		return fmt.Errorf("save tuning: %w", err)
	}
	return nil
}
