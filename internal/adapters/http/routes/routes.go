package routes

import (
	"net/http"
	"time"

	"sms-admin/internal/adapters/http/handlers"
	"sms-admin/internal/adapters/http/middleware"
	"sms-admin/internal/config"
	"sms-admin/internal/pkg/guard"
	"sms-admin/web"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the routes are built from
type Deps struct {
	Config   *config.Config
	Gateway  *handlers.Gateway
	Monitor  handlers.HealthReporter
	Registry *prometheus.Registry
	Storage  fiber.Storage
}

// Setup configures all routes for the application
func Setup(app *fiber.App, deps Deps) {
	cfg := deps.Config
	cookie := deps.Gateway.CookieOptions()

	// Static assets are served before the session middlewares run
	app.Use("/static", middleware.StaticCache(24*time.Hour), filesystem.New(filesystem.Config{
		Root: http.FS(web.Static()),
	}))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Monitor, cfg.AppMode)
	authHandler := handlers.NewAuthHandler(deps.Gateway)
	dashboardHandler := handlers.NewDashboardHandler(deps.Gateway)
	studentHandler := handlers.NewStudentHandler(deps.Gateway)
	courseHandler := handlers.NewCourseHandler(deps.Gateway)
	enrollmentHandler := handlers.NewEnrollmentHandler(deps.Gateway)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Gateway)
	marksHandler := handlers.NewMarksHandler(deps.Gateway)
	libraryHandler := handlers.NewLibraryHandler(deps.Gateway)

	// Operational endpoints
	app.Get("/health", healthHandler.HealthCheck)
	if deps.Registry != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}
	if cfg.IsDev() {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Session handling for every page below
	var guardMetrics *middleware.GuardMetrics
	if deps.Registry != nil {
		guardMetrics = middleware.NewGuardMetrics(deps.Registry)
	}
	app.Use(middleware.RouteGuard(guard.Default(), cookie, guardMetrics))
	app.Use(middleware.SessionExpiry(guard.LoginPath))
	app.Use(middleware.NoCacheHeaders())

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)
	apiV1.Get("/session", authHandler.Session)

	// Auth routes
	app.Get("/", authHandler.Root)
	app.Get(guard.LoginPath, authHandler.ShowLogin)
	app.Post(guard.LoginPath, middleware.AuthRateLimiter(cfg.RateLimit.LoginPerMinute, deps.Storage), authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	app.Get(guard.HomePath, dashboardHandler.Show)

	setupStudentRoutes(app.Group("/students"), studentHandler)
	setupCourseRoutes(app.Group("/courses"), courseHandler)
	setupEnrollmentRoutes(app.Group("/enrollments"), enrollmentHandler)
	setupAttendanceRoutes(app.Group("/attendance"), attendanceHandler)
	setupMarksRoutes(app.Group("/marks"), marksHandler)
	setupLibraryRoutes(app.Group("/library"), libraryHandler)
}

// setupStudentRoutes configures student routes. /new is registered before /:id.
func setupStudentRoutes(router fiber.Router, handler *handlers.StudentHandler) {
	router.Get("/", handler.List)
	router.Get("/new", handler.New)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.Show)
	router.Get("/:id/edit", handler.Edit)
	router.Post("/:id", handler.Update)
	router.Post("/:id/delete", handler.Delete)
}

func setupCourseRoutes(router fiber.Router, handler *handlers.CourseHandler) {
	router.Get("/", handler.List)
	router.Get("/new", handler.New)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.Show)
	router.Get("/:id/edit", handler.Edit)
	router.Post("/:id", handler.Update)
	router.Post("/:id/delete", handler.Delete)
}

func setupEnrollmentRoutes(router fiber.Router, handler *handlers.EnrollmentHandler) {
	router.Get("/", handler.List)
	router.Get("/new", handler.New)
	router.Post("/", handler.Create)
	router.Post("/:id/delete", handler.Delete)
}

func setupAttendanceRoutes(router fiber.Router, handler *handlers.AttendanceHandler) {
	router.Get("/", handler.List)
	router.Get("/new", handler.New)
	router.Post("/", handler.Create)
}

func setupMarksRoutes(router fiber.Router, handler *handlers.MarksHandler) {
	router.Get("/", handler.List)
	router.Get("/new", handler.New)
	router.Post("/", handler.Create)
}

// setupLibraryRoutes configures the issue record and book routes
func setupLibraryRoutes(router fiber.Router, handler *handlers.LibraryHandler) {
	// Issue records
	router.Get("/", handler.Records)
	router.Get("/add", handler.NewAssign)
	router.Get("/assign", handler.NewAssign)
	router.Post("/add", handler.Assign)
	router.Get("/view/:id", handler.ViewRecord)
	router.Get("/edit/:id", handler.EditRecord)
	router.Post("/edit/:id", handler.UpdateRecord)
	router.Post("/records/:id/delete", handler.DeleteRecord)

	// Books
	router.Get("/books", handler.Books)
	router.Get("/books/add", handler.NewBook)
	router.Post("/books/add", handler.CreateBook)
	router.Get("/books/:id", handler.ShowBook)
	router.Post("/books/:id/delete", handler.DeleteBook)
}
