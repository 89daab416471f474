package creature

import (
	"sync"

	"bestiary/assets"
	"bestiary/internal/config"
)

var defaults struct {
	once    sync.Once
	store   *Store
	careers *Careers
	err     error
}

func initDefaults() {
	sc, err := config.ParseSpecies(assets.Species())
	if err != nil {
		defaults.err = err
		return
	}
	cc, err := config.ParseCareers(assets.Careers())
	if err != nil {
		defaults.err = err
		return
	}
	store, err := NewStore(sc)
	if err != nil {
		defaults.err = err
		return
	}
	careers, err := NewCareers(cc)
	if err != nil {
		defaults.err = err
		return
	}
	defaults.store = store
	defaults.careers = careers
}

// DefaultStore returns the roster built from the embedded data asset.
// Construction happens once; the result is shared and immutable.
func DefaultStore() (*Store, error) {
	defaults.once.Do(initDefaults)
	return defaults.store, defaults.err
}

// DefaultCareers returns the career tables built from the embedded asset.
func DefaultCareers() (*Careers, error) {
	defaults.once.Do(initDefaults)
	return defaults.careers, defaults.err
}
