package baseservice

import (
	"reflect"
	"strconv"
	"strings"
)

// Models declare insert defaults with `default:"..."` struct tags:
//
//	Category string `bson:"category" default:"general"`
//	IsActive bool   `bson:"isActive" default:"true"`
//
// InsertOne fills them for fields the caller left at their zero value;
// Upsert sends them as $setOnInsert.

func typeOf[T any]() reflect.Type {
	var v T
	return reflect.TypeOf(v)
}

// insertDefaultsForType collects the declared defaults of a model type,
// keyed by bson field name.
func insertDefaultsForType(modelType reflect.Type) map[string]interface{} {
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}
	if modelType.Kind() != reflect.Struct {
		return nil
	}

	defaults := map[string]interface{}{}
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		raw, ok := field.Tag.Lookup("default")
		if !ok {
			continue
		}
		bsonTag := field.Tag.Get("bson")
		if bsonTag == "" || bsonTag == "-" {
			continue
		}
		bsonField := strings.Split(bsonTag, ",")[0]

		if value, ok := parseDefault(raw, field.Type); ok {
			defaults[bsonField] = value
		}
	}
	return defaults
}

func parseDefault(raw string, t reflect.Type) (interface{}, bool) {
	switch t.Kind() {
	case reflect.String:
		return raw, true
	case reflect.Bool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, false
		}
		return v, true
	case reflect.Int, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

// applyInsertDefaults writes declared defaults into the insert document
// for fields the document does not carry. Models marshal with omitempty,
// so an omitted or empty optional field is simply absent here; fields
// sent explicitly (including false booleans via pointer DTO fields) are
// left alone.
func applyInsertDefaults(doc map[string]interface{}, model interface{}) {
	defaults := insertDefaultsForType(reflect.TypeOf(model))
	for key, value := range defaults {
		if current, exists := doc[key]; !exists || current == nil {
			doc[key] = value
		}
	}
}
