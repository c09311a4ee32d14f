// Package baseservice implements the generic MongoDB persistence layer
// every entity service builds on.
package baseservice

import (
	"context"
	"time"

	basemodels "ngo_portal/internal/api/base/models"
	"ngo_portal/internal/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BaseServiceMongo is the persistence contract of every entity service.
// All methods translate driver errors through the common taxonomy.
type BaseServiceMongo[T any] interface {
	InsertOne(ctx context.Context, data T) (T, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error)
	FindOne(ctx context.Context, filter interface{}) (T, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (T, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error)
	UpdateOne(ctx context.Context, filter interface{}, update *UpdateData) (T, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DeleteOne(ctx context.Context, filter interface{}) error
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	Upsert(ctx context.Context, filter interface{}, data T) (T, error)
	Collection() *mongo.Collection
}

// BaseServiceMongoImpl implements BaseServiceMongo over one collection.
// The delete policy is looked up once at construction.
type BaseServiceMongoImpl[T any] struct {
	collection   *mongo.Collection
	deletePolicy DeletePolicy
}

// NewBaseService wires a service to its collection.
func NewBaseService[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection:   collection,
		deletePolicy: PolicyFor(collection.Name()),
	}
}

// Collection exposes the underlying collection for services that need
// operations beyond the generic surface.
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// InsertOne converts the model to a document, applies declared defaults,
// stamps createdAt/updatedAt and returns the stored document re-read
// from the collection so the caller sees exactly what was persisted.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := toInsertDocument(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}

	applyInsertDefaults(doc, data)
	now := nowMillis()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return s.FindOne(ctx, bson.M{"_id": result.InsertedID})
}

// toInsertDocument flattens a model into a map and strips fields that
// must never be written directly.
func toInsertDocument[T any](data T) (map[string]interface{}, error) {
	doc, err := toMap(data)
	if err != nil {
		return nil, err
	}
	delete(doc, "_id")
	delete(doc, "createdAt")
	delete(doc, "updatedAt")

	// Empty strings would collide on sparse unique indexes; drop them so
	// the field is simply absent.
	for key, value := range doc {
		if str, ok := value.(string); ok && str == "" {
			delete(doc, key)
		}
	}
	return doc, nil
}

func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}) (T, error) {
	var result T
	err := s.collection.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		return result, common.ConvertMongoError(err)
	}
	return result, nil
}

func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.M{}
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}

	if opts == nil {
		opts = options.Find()
	}
	opts.SetSkip((page - 1) * limit).SetLimit(limit)

	items, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	totalPage := total / limit
	if total%limit != 0 {
		totalPage++
	}

	return &basemodels.PaginateResult[T]{
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
		Items:     items,
	}, nil
}

// UpdateById applies a partial update and returns the updated document.
// Returns ErrNotFound when no document has the id.
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, update *UpdateData) (T, error) {
	return s.UpdateOne(ctx, bson.M{"_id": id}, update)
}

func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update *UpdateData) (T, error) {
	var zero T
	if update == nil || update.IsEmpty() {
		return zero, common.NewError(common.ErrCodeValidationInput,
			"update contains no changes", common.StatusBadRequest, nil)
	}

	if update.Set == nil {
		update.Set = map[string]interface{}{}
	}
	update.Set["updatedAt"] = nowMillis()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var result T
	err := s.collection.FindOneAndUpdate(ctx, filter, update.document(), opts).Decode(&result)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// DeleteById honors the collection's delete policy: soft policies flip
// the configured flag to false, hard policies remove the document.
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if s.deletePolicy.Soft {
		update := NewUpdateData()
		update.Set[s.deletePolicy.FlagField] = false
		_, err := s.UpdateById(ctx, id, update)
		return err
	}
	return s.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *BaseServiceMongoImpl[T]) DeleteOne(ctx context.Context, filter interface{}) error {
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}

// Upsert updates the document matching filter or inserts it when
// missing. Declared defaults and createdAt ride on $setOnInsert so they
// only apply to the insert path. Returns the post-upsert document.
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter interface{}, data T) (T, error) {
	var zero T

	doc, err := toInsertDocument(data)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, err.Error(), common.StatusBadRequest, nil)
	}
	doc["updatedAt"] = nowMillis()

	setOnInsert := map[string]interface{}{"createdAt": nowMillis()}
	for key, value := range insertDefaultsForType(typeOf[T]()) {
		if _, alreadySet := doc[key]; !alreadySet {
			setOnInsert[key] = value
		}
	}

	updateDoc := bson.M{
		"$set":         doc,
		"$setOnInsert": setOnInsert,
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var result T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateDoc, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}
