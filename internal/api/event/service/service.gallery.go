package services

import (
	"context"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/event/models"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GalleryService manages the galleries collection.
type GalleryService struct {
	*baseservice.BaseServiceMongoImpl[models.GalleryItem]
}

func NewGalleryService() *GalleryService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Galleries)
	return &GalleryService{BaseServiceMongoImpl: baseservice.NewBaseService[models.GalleryItem](collection)}
}

// ListPublic returns publicly visible gallery items, newest first.
func (s *GalleryService) ListPublic(ctx context.Context) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.Find(ctx, bson.M{"isPublic": true}, opts)
}
