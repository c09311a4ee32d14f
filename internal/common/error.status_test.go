package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_Nil(t *testing.T) {
	if ConvertMongoError(nil) != nil {
		t.Error("nil must stay nil")
	}
}

func TestConvertMongoError_NoDocuments(t *testing.T) {
	err := ConvertMongoError(mongo.ErrNoDocuments)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoDocuments must map to ErrNotFound, got %v", err)
	}
	if StatusCodeOf(err) != StatusNotFound {
		t.Errorf("status = %d, want 404", StatusCodeOf(err))
	}
}

func TestConvertMongoError_PassThrough(t *testing.T) {
	// Services pre-translate some errors; a second conversion must not
	// re-wrap them.
	err := ConvertMongoError(ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("taxonomy errors must pass through, got %v", err)
	}

	wrapped := fmt.Errorf("find donation: %w", ErrConnection)
	err = ConvertMongoError(wrapped)
	if !errors.Is(err, ErrConnection) {
		t.Errorf("wrapped taxonomy errors must pass through, got %v", err)
	}
}

func TestConvertMongoError_Duplicate(t *testing.T) {
	dupErr := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	err := ConvertMongoError(dupErr)
	if !errors.Is(err, ErrMongoDuplicate) {
		t.Errorf("duplicate key must map to ErrMongoDuplicate, got %v", err)
	}
	if StatusCodeOf(err) != StatusConflict {
		t.Errorf("status = %d, want 409", StatusCodeOf(err))
	}
}

func TestConvertMongoError_Unknown(t *testing.T) {
	err := ConvertMongoError(errors.New("boom"))
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatalf("unknown errors must become *Error, got %T", err)
	}
	if appErr.StatusCode != StatusInternalServerError {
		t.Errorf("status = %d, want 500", appErr.StatusCode)
	}
}

func TestStatusCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrNotFound, StatusNotFound},
		{ErrInvalidInput, StatusBadRequest},
		{ErrInvalidID, StatusBadRequest},
		{ErrConnection, StatusServiceUnavailable},
		{ErrDuplicate, StatusConflict},
		{ErrTokenMissing, StatusUnauthorized},
		{errors.New("plain"), StatusInternalServerError},
	}
	for _, c := range cases {
		if got := StatusCodeOf(c.err); got != c.want {
			t.Errorf("StatusCodeOf(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestErrorIs_SentinelComparison(t *testing.T) {
	err := fmt.Errorf("context: %w", ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped sentinel must match with errors.Is")
	}
	if errors.Is(err, ErrDuplicate) {
		t.Error("different sentinels must not match")
	}
}

func TestNewError_CarriesDetails(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "bad input", StatusBadRequest, []string{"Name failed on required"})
	var appErr *Error
	if !errors.As(err, &appErr) {
		t.Fatal("NewError must return *Error")
	}
	if appErr.Code.Code != "VAL_001" {
		t.Errorf("code = %s, want VAL_001", appErr.Code.Code)
	}
	details, ok := appErr.Details.([]string)
	if !ok || len(details) != 1 {
		t.Errorf("details = %v", appErr.Details)
	}
}
