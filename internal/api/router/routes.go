// Package apirouter wires entity handlers onto the /api route tree.
//
// Middleware registration note (Fiber v3): passing middleware directly
// as extra handler arguments to router.Get/Post/... does not invoke it.
// Routes needing middleware MUST be registered through a group with
// .Use(), which is what RegisterRouteWithMiddleware does.
package apirouter

import (
	"github.com/gofiber/fiber/v3"
)

// CRUDHandler is the HTTP surface an entity handler exposes to the
// router. BaseHandler provides defaults for all of it; entity handlers
// override the operations with entity-specific behavior.
type CRUDHandler interface {
	List(c fiber.Ctx) error
	GetById(c fiber.Ctx) error
	Create(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	Count(c fiber.Ctx) error
	Paginate(c fiber.Ctx) error
}

// CRUDConfig declares which REST operations an entity exposes and which
// of them require an authenticated admin. Submission endpoints used by
// the public site simply leave the auth flag off.
type CRUDConfig struct {
	List     bool
	GetById  bool
	Create   bool
	Update   bool
	Delete   bool
	Count    bool
	Paginate bool

	ListAuth   bool
	CreateAuth bool
	UpdateAuth bool
	DeleteAuth bool
}

var (
	// PublicContentConfig: the public site reads, the admin writes.
	// Used by events, gallery, posts, documents and team members.
	PublicContentConfig = CRUDConfig{
		List: true, GetById: true,
		Create: true, CreateAuth: true,
		Update: true, UpdateAuth: true,
		Delete: true, DeleteAuth: true,
		Count: true,
	}

	// PublicSubmitConfig: the public site submits, only the admin
	// reads or manages. Used by donations and volunteers.
	PublicSubmitConfig = CRUDConfig{
		List: true, ListAuth: true,
		Create: true,
		Update: true, UpdateAuth: true,
		Delete: true, DeleteAuth: true,
		Count: true, Paginate: true,
	}
)

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string // /api
}

func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// Router registers domain routes. The auth middleware is injected at
// construction so domain routers do not import the middleware package.
type Router struct {
	app    *fiber.App
	authMW fiber.Handler
}

func NewRouter(app *fiber.App, authMW fiber.Handler) *Router {
	return &Router{app: app, authMW: authMW}
}

// AuthMiddleware exposes the injected middleware for extra routes a
// domain registers outside RegisterCRUDRoutes.
func (r *Router) AuthMiddleware() fiber.Handler {
	return r.authMW
}

// RegisterRouteWithMiddleware registers one route behind middleware via
// a dedicated group, the only registration form whose middleware
// reliably fires under Fiber v3.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case fiber.MethodGet:
		routeGroup.Get(path, handler)
	case fiber.MethodPost:
		routeGroup.Post(path, handler)
	case fiber.MethodPut:
		routeGroup.Put(path, handler)
	case fiber.MethodDelete:
		routeGroup.Delete(path, handler)
	}
}

// register adds one route, wrapping it in the auth group when required.
func (r *Router) register(api fiber.Router, prefix, method, path string, requireAuth bool, handler fiber.Handler) {
	if requireAuth {
		RegisterRouteWithMiddleware(api, prefix, method, path, []fiber.Handler{r.authMW}, handler)
		return
	}
	RegisterRouteWithMiddleware(api, prefix, method, path, nil, handler)
}

// RegisterCRUDRoutes registers the REST routes of one entity under
// prefix (e.g. "/events") according to its CRUDConfig.
func (r *Router) RegisterCRUDRoutes(api fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	if config.List {
		r.register(api, prefix, fiber.MethodGet, "", config.ListAuth, h.List)
	}
	if config.Paginate {
		r.register(api, prefix, fiber.MethodGet, "/paginate", true, h.Paginate)
	}
	if config.Count {
		r.register(api, prefix, fiber.MethodGet, "/count", true, h.Count)
	}
	if config.GetById {
		r.register(api, prefix, fiber.MethodGet, "/:id", false, h.GetById)
	}
	if config.Create {
		r.register(api, prefix, fiber.MethodPost, "", config.CreateAuth, h.Create)
	}
	if config.Update {
		r.register(api, prefix, fiber.MethodPut, "/:id", config.UpdateAuth, h.UpdateById)
	}
	if config.Delete {
		r.register(api, prefix, fiber.MethodDelete, "/:id", config.DeleteAuth, h.DeleteById)
	}
}

// RegisterFunc is the route registration hook each domain exports.
// Domains receive the /api group; passing them in from cmd/server keeps
// the router package free of domain imports.
type RegisterFunc func(api fiber.Router, r *Router) error

// SetupRoutes mounts every domain under /api.
func SetupRoutes(app *fiber.App, authMW fiber.Handler, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app, authMW)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
