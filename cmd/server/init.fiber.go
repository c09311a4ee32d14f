package main

import (
	"strings"
	"time"

	authrouter "ngo_portal/internal/api/auth/router"
	contentrouter "ngo_portal/internal/api/content/router"
	donationrouter "ngo_portal/internal/api/donation/router"
	eventrouter "ngo_portal/internal/api/event/router"
	"ngo_portal/internal/api/middleware"
	apirouter "ngo_portal/internal/api/router"
	seedrouter "ngo_portal/internal/api/seed/router"
	settingsrouter "ngo_portal/internal/api/settings/router"
	volunteerrouter "ngo_portal/internal/api/volunteer/router"
	"ngo_portal/internal/common"
	"ngo_portal/internal/global"
	"ngo_portal/internal/logger"
	"ngo_portal/internal/notify"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

const healthPath = "/api/health"

// InitFiberApp builds the Fiber application: middleware stack, health
// endpoint and every domain route.
func InitFiberApp() *fiber.App {
	cfg := global.ServerConfig
	log := logger.GetAppLogger()

	app := fiber.New(fiber.Config{
		AppName:       "NGO Portal API",
		ServerHeader:  "NGO Portal API",
		StrictRouting: false,
		CaseSensitive: true,
		BodyLimit:     10 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  30 * time.Second,
		IdleTimeout:   120 * time.Second,

		// Errors raised by Fiber itself (bad routes, oversized bodies)
		// come through here; handler errors are already shaped by
		// SafeHandler.
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := common.MsgInternalError
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			if code >= fiber.StatusInternalServerError {
				logger.WithRequest(c).WithFields(map[string]interface{}{
					"status":    code,
					"errorCode": errorCode,
				}).Error("Request error")
			}

			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"code":    errorCode,
				"message": message,
			})
		},
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	corsOrigins := cfg.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success": false,
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": common.MsgTooManyRequests,
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == healthPath || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == healthPath
		},
	}))

	app.Get(healthPath, func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().UnixMilli(),
		})
	})

	mailer := notify.NewMailer(cfg)
	if mailer == nil {
		log.Info("SMTP not configured, notification mail disabled")
	}

	err := apirouter.SetupRoutes(app, middleware.AuthMiddleware(),
		authrouter.Register,
		donationrouter.Register(mailer),
		eventrouter.Register,
		contentrouter.Register,
		volunteerrouter.Register(mailer),
		settingsrouter.Register,
		seedrouter.Register,
	)
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	return app
}
