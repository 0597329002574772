package catalogRepo

import (
	"context"
	"errors"
	"sync"

	"itinera/models"

	"github.com/google/uuid"
)

// MemoryCatalogRepo is an in-memory CatalogRepository for tests and local
// development seeding.
type MemoryCatalogRepo struct {
	mu     sync.RWMutex
	prices map[string]models.ServicePriceDefinition
	hotels map[string]models.HotelDefinition
}

// NewMemoryCatalogRepo returns an empty in-memory catalog.
func NewMemoryCatalogRepo() *MemoryCatalogRepo {
	return &MemoryCatalogRepo{
		prices: make(map[string]models.ServicePriceDefinition),
		hotels: make(map[string]models.HotelDefinition),
	}
}

func (r *MemoryCatalogRepo) ServicePrices(ctx context.Context) ([]models.ServicePriceDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]models.ServicePriceDefinition, 0, len(r.prices))
	for _, def := range r.prices {
		defs = append(defs, def)
	}
	return defs, nil
}

func (r *MemoryCatalogRepo) ServicePriceByID(ctx context.Context, id string) (*models.ServicePriceDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.prices[id]
	if !ok {
		return nil, errors.New("service price definition not found")
	}
	return &def, nil
}

func (r *MemoryCatalogRepo) HotelDefinitions(ctx context.Context) ([]models.HotelDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]models.HotelDefinition, 0, len(r.hotels))
	for _, def := range r.hotels {
		defs = append(defs, def)
	}
	return defs, nil
}

func (r *MemoryCatalogRepo) HotelDefinitionByID(ctx context.Context, id string) (*models.HotelDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.hotels[id]
	if !ok {
		return nil, errors.New("hotel definition not found")
	}
	return &def, nil
}

func (r *MemoryCatalogRepo) UpsertServicePrice(ctx context.Context, def models.ServicePriceDefinition) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	r.prices[def.ID] = def
	return def.ID, nil
}

func (r *MemoryCatalogRepo) UpsertHotelDefinition(ctx context.Context, def models.HotelDefinition) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	r.hotels[def.ID] = def
	return def.ID, nil
}

var _ CatalogRepository = (*MemoryCatalogRepo)(nil)
