// Package services - Content domain.
package services

import (
	"context"
	"time"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/content/models"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

// PostService manages the posts collection.
type PostService struct {
	*baseservice.BaseServiceMongoImpl[models.Post]
}

func NewPostService() *PostService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Posts)
	return &PostService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Post](collection)}
}

// CreatePost stamps publishedAt when the post goes out published.
func (s *PostService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if post.PublishedAt == 0 {
		post.PublishedAt = time.Now().UnixMilli()
	}
	return s.InsertOne(ctx, post)
}

// ListPublic returns published posts, pinned first, then newest.
func (s *PostService) ListPublic(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	return s.Find(ctx, bson.M{"isPublished": true}, opts)
}

// IncrementViewCount bumps the read counter of one post.
func (s *PostService) IncrementViewCount(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.Collection().UpdateByID(ctx, id, bson.M{"$inc": bson.M{"viewCount": 1}})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// DocumentService manages the documents collection.
type DocumentService struct {
	*baseservice.BaseServiceMongoImpl[models.Document]
}

func NewDocumentService() *DocumentService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Documents)
	return &DocumentService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Document](collection)}
}

// ListPublic returns public documents, newest first.
func (s *DocumentService) ListPublic(ctx context.Context) ([]models.Document, error) {
	return s.Find(ctx, bson.M{"isPublic": true}, newestFirst())
}

// RegisterDownload bumps the download counter and returns the document
// with the fresh count, so the caller can hand out the file URL.
func (s *DocumentService) RegisterDownload(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var document models.Document
	err := s.Collection().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"downloadCount": 1}},
		opts,
	).Decode(&document)
	if err != nil {
		return models.Document{}, common.ConvertMongoError(err)
	}
	return document, nil
}

// TeamMemberService manages the teammembers collection.
type TeamMemberService struct {
	*baseservice.BaseServiceMongoImpl[models.TeamMember]
}

func NewTeamMemberService() *TeamMemberService {
	collection := global.RegistryCollections.MustGet(global.ColNames.TeamMembers)
	return &TeamMemberService{BaseServiceMongoImpl: baseservice.NewBaseService[models.TeamMember](collection)}
}

// ListPublic returns active members in display order.
func (s *TeamMemberService) ListPublic(ctx context.Context) ([]models.TeamMember, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "displayOrder", Value: 1},
		{Key: "createdAt", Value: 1},
	})
	return s.Find(ctx, bson.M{"isActive": true}, opts)
}
