package cache

import (
	"fmt"

	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var S *ristretto_store.RistrettoStore

func NewStore() error {
	backend, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e6,
		MaxCost:     1 << 26,
		BufferItems: 64,
	})
	if err != nil {
		return fmt.Errorf("unable to initialize in-memory cache: %v", err)
	}

	S = ristretto_store.NewRistretto(backend)
	return nil
}
