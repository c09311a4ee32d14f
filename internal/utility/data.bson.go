// Package utility holds small data conversion helpers shared by the
// service layer.
package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ToMap converts a struct into a map keyed by bson field names, by
// round-tripping through bson marshalling. Zero-value fields with
// omitempty are dropped, which is exactly what partial updates need.
func ToMap(input interface{}) (map[string]interface{}, error) {
	if input == nil {
		return nil, fmt.Errorf("utility: cannot convert nil to map")
	}

	raw, err := bson.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("utility: marshal: %w", err)
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("utility: unmarshal: %w", err)
	}
	return result, nil
}

// String2ObjectID parses a hex string into an ObjectID.
func String2ObjectID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("utility: invalid object id %q: %w", id, err)
	}
	return objID, nil
}
