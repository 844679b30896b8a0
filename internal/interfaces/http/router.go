package http

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/trictux/trictux-api/internal/application/analytics"
	"github.com/trictux/trictux-api/internal/application/auth"
	"github.com/trictux/trictux-api/internal/application/dto"
	"github.com/trictux/trictux-api/internal/application/report"
	"github.com/trictux/trictux-api/internal/application/usecase"
	"github.com/trictux/trictux-api/internal/domain/entity"
	"github.com/trictux/trictux-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Verifier    *auth.SessionVerifier
	Resolver    *auth.RoleResolver
	UserUC      *usecase.UserUseCase
	CompanyUC   *usecase.CompanyUseCase
	ClientUC    *usecase.ClientUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ProjectUC   *usecase.ProjectUseCase
	TaskUC      *usecase.TaskUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.ProjectReportUseCase
	Cookie      CookieSettings
	LoginLimit  LoginLimit
	Log         *logger.Logger
}

// NewApp instancia Fiber con JSON vía sonic, recover y errores en formato {error, code}.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: fe.Message})
			}
			return respondError(c, log, err)
		},
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.Verifier, deps.Resolver, deps.Cookie.Name, log)

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie, deps.LoginLimit, log)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authMW, authHandler.Me)

	// Rutas protegidas (cookie de sesión o Bearer Token). El middleware va por
	// recurso para que una ruta inexistente bajo /api sea 404 y no 401.
	users := api.Group("/users", authMW)
	userHandler := NewUserHandler(deps.UserUC, log)
	users.Get("/", RequireRole(entity.RoleOwner), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/", RequireRole(entity.RoleOwner), userHandler.Update)
	users.Patch("/", RequireRole(entity.RoleOwner), userHandler.Update)

	companies := api.Group("/companies", authMW)
	companyHandler := NewCompanyHandler(deps.CompanyUC, log)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Post("/", companyHandler.Create)
	companies.Put("/", companyHandler.Update)
	companies.Patch("/", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Deactivate)

	clients := api.Group("/clients", authMW)
	clientHandler := NewClientHandler(deps.ClientUC, log)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", clientHandler.Create)
	clients.Put("/", clientHandler.Update)
	clients.Patch("/", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Deactivate)

	employees := api.Group("/employees", authMW)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, log)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Post("/", employeeHandler.Create)
	employees.Put("/", employeeHandler.Update)
	employees.Patch("/", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Deactivate)

	projects := api.Group("/projects", authMW)
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.ReportUC, log)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id/report", projectHandler.Report)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Post("/", projectHandler.Create)
	projects.Put("/", projectHandler.Update)
	projects.Patch("/", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Purge)

	tasks := api.Group("/tasks", authMW)
	taskHandler := NewTaskHandler(deps.TaskUC, log)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Post("/", taskHandler.Create)
	tasks.Put("/", taskHandler.Update)
	tasks.Patch("/", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Purge)

	dashboard := api.Group("/dashboard", authMW)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
}
