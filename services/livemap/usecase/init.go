package usecase

import (
	"github.com/victoreduardo21/drb-operacao/services/store"
)

// MapUC implements the map view use case interface
type MapUC struct {
	store store.DataStore
}

// NewMapUC creates a new map view use case
func NewMapUC(dataStore store.DataStore) *MapUC {
	return &MapUC{
		store: dataStore,
	}
}
