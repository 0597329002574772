package catalogRepo

import (
	"context"

	"itinera/database"
	"itinera/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository serves the reference catalogs the cost engine consumes:
// reusable service price definitions and hotel definitions. The engine never
// touches this layer; it receives catalogs as explicit parameters.
type CatalogRepository interface {
	ServicePrices(ctx context.Context) ([]models.ServicePriceDefinition, error)
	ServicePriceByID(ctx context.Context, id string) (*models.ServicePriceDefinition, error)
	HotelDefinitions(ctx context.Context) ([]models.HotelDefinition, error)
	HotelDefinitionByID(ctx context.Context, id string) (*models.HotelDefinition, error)
	UpsertServicePrice(ctx context.Context, def models.ServicePriceDefinition) (string, error)
	UpsertHotelDefinition(ctx context.Context, def models.HotelDefinition) (string, error)
}

type mongoCatalogRepo struct {
	prices *mongo.Collection
	hotels *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("itinera")
	return &mongoCatalogRepo{
		prices: db.Collection("service_prices"),
		hotels: db.Collection("hotel_definitions"),
	}
}
