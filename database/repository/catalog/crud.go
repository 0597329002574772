package catalogRepo

import (
	"context"

	"itinera/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServicePrices returns every service price definition in the catalog.
func (r *mongoCatalogRepo) ServicePrices(ctx context.Context) ([]models.ServicePriceDefinition, error) {
	cursor, err := r.prices.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []models.ServicePriceDefinition
	if err := cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// ServicePriceByID returns one service price definition by its ID.
func (r *mongoCatalogRepo) ServicePriceByID(ctx context.Context, id string) (*models.ServicePriceDefinition, error) {
	var def models.ServicePriceDefinition
	if err := r.prices.FindOne(ctx, bson.M{"id": id}).Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// HotelDefinitions returns every hotel definition in the catalog.
func (r *mongoCatalogRepo) HotelDefinitions(ctx context.Context) ([]models.HotelDefinition, error) {
	cursor, err := r.hotels.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []models.HotelDefinition
	if err := cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// HotelDefinitionByID returns one hotel definition by its ID.
func (r *mongoCatalogRepo) HotelDefinitionByID(ctx context.Context, id string) (*models.HotelDefinition, error) {
	var def models.HotelDefinition
	if err := r.hotels.FindOne(ctx, bson.M{"id": id}).Decode(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// UpsertServicePrice inserts or replaces a service price definition and
// returns its ID.
func (r *mongoCatalogRepo) UpsertServicePrice(ctx context.Context, def models.ServicePriceDefinition) (string, error) {
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.prices.ReplaceOne(ctx, bson.M{"id": def.ID}, def, opts); err != nil {
		return "", err
	}
	return def.ID, nil
}

// UpsertHotelDefinition inserts or replaces a hotel definition and returns
// its ID.
func (r *mongoCatalogRepo) UpsertHotelDefinition(ctx context.Context, def models.HotelDefinition) (string, error) {
	if def.ID == "" {
		def.ID = uuid.New().String()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.hotels.ReplaceOne(ctx, bson.M{"id": def.ID}, def, opts); err != nil {
		return "", err
	}
	return def.ID, nil
}
