package basehandler

import (
	"errors"

	"ngo_portal/internal/common"
	"ngo_portal/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// JSONResponse writes a JSON body with an explicit charset, which some
// admin-panel HTTP clients require to decode non-ASCII content.
func JSONResponse(c fiber.Ctx, statusCode int, payload interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(payload)
}

// HandleError maps a service error onto the wire format
// {success:false, code, message, details?} with the HTTP status carried
// by the taxonomy.
func HandleError(c fiber.Ctx, err error) error {
	statusCode := common.StatusCodeOf(err)

	body := fiber.Map{
		"success": false,
		"message": err.Error(),
	}

	var appErr *common.Error
	if errors.As(err, &appErr) {
		body["code"] = appErr.Code.Code
		if appErr.Details != nil {
			body["details"] = appErr.Details
		}
	} else {
		body["code"] = common.ErrCodeInternalServer.Code
		body["message"] = common.MsgInternalError
	}

	// Server faults go to the dedicated error file on top of the
	// request-scoped app log, so operators can tail one file.
	if statusCode >= common.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Error("Request failed")
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": statusCode,
		}).WithError(err).Error("Request failed")
	}

	return JSONResponse(c, statusCode, body)
}

// SafeHandler runs a handler function and converts both returned errors
// and panics into taxonomy responses. Every route handler wraps its body
// with this.
func SafeHandler(c fiber.Ctx, fn func() error) error {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("panic", r).Error("Panic recovered in handler")
			_ = HandleError(c, common.NewError(common.ErrCodeInternalServer,
				common.MsgInternalError, common.StatusInternalServerError, nil))
		}
	}()

	if err := fn(); err != nil {
		return HandleError(c, err)
	}
	return nil
}
