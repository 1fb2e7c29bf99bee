package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/meinhoongagan/clinic-scheduler/controllers"
	"github.com/meinhoongagan/clinic-scheduler/middleware"
)

// Store is everything the HTTP surface needs from persistence.
type Store interface {
	controllers.UserStore
	controllers.DoctorStore
	controllers.AppointmentStore
	controllers.Pinger
}

type Options struct {
	Logger         *slog.Logger
	CORSOrigins    string
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// New builds the Fiber app with every route wired to st.
func New(st Store, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:               "clinic-scheduler",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
	}))

	app.Get("/health", controllers.NewHealthController(st).Health)
	SetupAuthRoutes(app, controllers.NewAuthController(st), middleware.CredentialRateLimit(opts.AuthRateLimit, opts.AuthRateWindow))
	SetupDoctorRoutes(app, controllers.NewDoctorController(st))
	SetupAppointmentRoutes(app, controllers.NewAppointmentController(st))

	return app
}
