// Package basehandler provides the generic HTTP layer entity handlers
// build on: request parsing, validation, id handling and default REST
// operations over a BaseServiceMongo.
package basehandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	baseservice "ngo_portal/internal/api/base/service"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"
	"ngo_portal/internal/utility"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseHandler carries the shared plumbing of one entity's HTTP surface.
// T is the stored model, CreateInput and UpdateInput its DTOs.
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Service baseservice.BaseServiceMongo[T]
}

// NewBaseHandler wires the handler to the entity's service.
func NewBaseHandler[T any, C any, U any](service baseservice.BaseServiceMongo[T]) BaseHandler[T, C, U] {
	return BaseHandler[T, C, U]{Service: service}
}

// ParseRequestBody decodes the JSON body into input. UseNumber keeps
// numeric precision intact for settings values and donation amounts.
func (h *BaseHandler[T, C, U]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return common.NewError(common.ErrCodeValidationFormat,
			"Request body is empty", common.StatusBadRequest, nil)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat,
			"Request body is not valid JSON", common.StatusBadRequest, err.Error())
	}
	return nil
}

// ValidateInput runs the struct validations of a DTO and reports every
// failing field in the error details.
func (h *BaseHandler[T, C, U]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		var details []string
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				details = append(details, fmt.Sprintf("%s failed on %s", fieldErr.Field(), fieldErr.Tag()))
			}
		}
		return common.NewError(common.ErrCodeValidationInput,
			common.MsgValidationError, common.StatusBadRequest, details)
	}
	return nil
}

// ParseAndValidate combines body decoding and validation.
func (h *BaseHandler[T, C, U]) ParseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := h.ParseRequestBody(c, input); err != nil {
		return err
	}
	return h.ValidateInput(input)
}

// ParamObjectID reads a path parameter as an ObjectID, returning a 400
// taxonomy error for malformed values.
func (h *BaseHandler[T, C, U]) ParamObjectID(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	raw := c.Params(name)
	if !primitive.IsValidObjectID(raw) {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return primitive.ObjectIDFromHex(raw)
}

// ParsePagination reads page/limit query parameters with sane bounds.
func (h *BaseHandler[T, C, U]) ParsePagination(c fiber.Ctx) (page, limit int64) {
	page, _ = strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ = strconv.ParseInt(c.Query("limit", "20"), 10, 64)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// ConvertInput maps a DTO onto the model through bson marshalling, so
// the shared bson tags define the field mapping in one place.
func (h *BaseHandler[T, C, U]) ConvertInput(input interface{}) (T, error) {
	var model T
	raw, err := bson.Marshal(input)
	if err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat,
			"Request data could not be converted", common.StatusBadRequest, err.Error())
	}
	if err := bson.Unmarshal(raw, &model); err != nil {
		return model, common.NewError(common.ErrCodeValidationFormat,
			"Request data could not be converted", common.StatusBadRequest, err.Error())
	}
	return model, nil
}

// BuildUpdate turns an update DTO into the partial update document.
func (h *BaseHandler[T, C, U]) BuildUpdate(input interface{}) (*baseservice.UpdateData, error) {
	update, err := baseservice.ToUpdateData(input)
	if err != nil {
		return nil, common.NewError(common.ErrCodeValidationFormat,
			"Request data could not be converted", common.StatusBadRequest, err.Error())
	}
	return update, nil
}

// ToObjectID converts a hex string to an ObjectID with a taxonomy error.
func (h *BaseHandler[T, C, U]) ToObjectID(raw string) (primitive.ObjectID, error) {
	objID, err := utility.String2ObjectID(raw)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidID
	}
	return objID, nil
}
