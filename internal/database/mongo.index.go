package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"ngo_portal/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureCollections creates every named collection that does not exist
// yet, so index creation and the registry never race collection
// auto-creation.
func EnsureCollections(client *mongo.Client, dbName string, names []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)
	existing, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		existingSet[name] = true
	}

	for _, name := range names {
		if existingSet[name] {
			continue
		}
		logger.WithCollection(name).Info("Creating collection")
		if err := db.CreateCollection(ctx, name); err != nil {
			return fmt.Errorf("create collection %s: %w", name, err)
		}
	}
	return nil
}

// Index declarations live on model structs as `index` tags:
//
//	index:"single:1"          ascending single-field index
//	index:"single:-1"         descending single-field index
//	index:"unique"            unique index
//	index:"unique,sparse"     unique index skipping missing fields
//	index:"text"              text index
//	index:"compound:<name>"   member of the named compound index
//
// Multiple declarations on one field are separated by ';'.

func parseIndexTag(tag string) []map[string]string {
	var result []map[string]string
	for _, part := range strings.Split(tag, ";") {
		entry := map[string]string{}
		for _, sub := range strings.Split(part, ",") {
			kv := strings.SplitN(sub, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}
	return result
}

func parseOrder(value string) int {
	if value == "-1" {
		return -1
	}
	return 1
}

func bsonFieldName(field reflect.StructField) string {
	bsonTag := field.Tag.Get("bson")
	if bsonTag == "" || bsonTag == "-" {
		return ""
	}
	return strings.Split(bsonTag, ",")[0]
}

// ensureIndex creates the index when it is missing and replaces it when
// the existing definition differs.
func ensureIndex(
	ctx context.Context,
	collection *mongo.Collection,
	existingIndexes map[string]bson.M,
	indexName string,
	keys bson.D,
	opts *options.IndexOptions,
) error {
	if existing, ok := existingIndexes[indexName]; ok {
		if indexMatches(existing, keys, opts) {
			return nil
		}
		if _, err := collection.Indexes().DropOne(ctx, indexName); err != nil {
			return fmt.Errorf("drop index %s: %w", indexName, err)
		}
		logger.WithCollection(collection.Name()).Infof("Replacing index %s", indexName)
	}

	if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys, Options: opts}); err != nil {
		return fmt.Errorf("create index %s: %w", indexName, err)
	}
	logger.WithCollection(collection.Name()).Infof("Created index %s", indexName)
	return nil
}

func indexMatches(existing bson.M, keys bson.D, opts *options.IndexOptions) bool {
	existingKeys, ok := existing["key"].(bson.M)
	if !ok {
		return false
	}

	for _, key := range keys {
		existingValue, exists := existingKeys[key.Key]
		if !exists {
			return false
		}
		if wanted, isInt := key.Value.(int); isInt {
			switch ev := existingValue.(type) {
			case int32:
				if int(ev) != wanted {
					return false
				}
			case int64:
				if int(ev) != wanted {
					return false
				}
			case float64:
				if int(ev) != wanted {
					return false
				}
			default:
				return false
			}
		} else if existingValue != key.Value {
			return false
		}
	}

	existingUnique, _ := existing["unique"].(bool)
	wantUnique := opts.Unique != nil && *opts.Unique
	return existingUnique == wantUnique
}

// CreateIndexes reads the `index` tags of the model struct and brings
// the collection's indexes in line with them.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model interface{}) error {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("list indexes: %w", err)
	}
	defer cursor.Close(ctx)

	existingIndexes := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("decode index info: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existingIndexes[name] = info
		}
	}

	compoundKeys := map[string]bson.D{}

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := bsonFieldName(field)
		if bsonField == "" {
			continue
		}

		for _, cfg := range parseIndexTag(tag) {
			if _, ok := cfg["text"]; ok {
				indexName := bsonField + "_text"
				keys := bson.D{{Key: bsonField, Value: "text"}}
				if err := ensureIndex(ctx, collection, existingIndexes, indexName, keys, options.Index().SetName(indexName)); err != nil {
					return err
				}
			}

			if order, ok := cfg["single"]; ok {
				indexName := bsonField + "_single"
				keys := bson.D{{Key: bsonField, Value: parseOrder(order)}}
				if err := ensureIndex(ctx, collection, existingIndexes, indexName, keys, options.Index().SetName(indexName)); err != nil {
					return err
				}
			}

			if _, ok := cfg["unique"]; ok {
				indexName := bsonField + "_unique"
				keys := bson.D{{Key: bsonField, Value: 1}}
				opts := options.Index().SetName(indexName).SetUnique(true)
				if _, sparse := cfg["sparse"]; sparse {
					opts = opts.SetSparse(true)
				}
				if err := ensureIndex(ctx, collection, existingIndexes, indexName, keys, opts); err != nil {
					return err
				}
			}

			if groupName, ok := cfg["compound"]; ok && groupName != "" {
				compoundKeys[groupName] = append(compoundKeys[groupName], bson.E{Key: bsonField, Value: 1})
			}
		}
	}

	for groupName, keys := range compoundKeys {
		if err := ensureIndex(ctx, collection, existingIndexes, groupName, keys, options.Index().SetName(groupName)); err != nil {
			return err
		}
	}

	return nil
}
