package router

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/rafaelnuansa/faculty-backend/internal/auth"
	"github.com/rafaelnuansa/faculty-backend/internal/config"
	apperrors "github.com/rafaelnuansa/faculty-backend/internal/errors"
	"github.com/rafaelnuansa/faculty-backend/internal/handler"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
	Faculty   *handler.FacultyHandler
	Category  *handler.CategoryHandler
	Post      *handler.PostHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, h Handlers, authService service.AuthService) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Validator = validation.New()

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logger.Info()
			if v.Status >= http.StatusInternalServerError {
				event = logger.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.Static("/images", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", h.Auth.Login)
	api.POST("/refresh", h.Auth.Refresh)

	// Secured routes (require a live bearer token)
	guard := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:    []byte(cfg.JWTSecret),
			SigningMethod: "HS256",
			ContextKey:    handler.ContextKeyToken,
			NewClaimsFunc: func(c echo.Context) jwt.Claims { return new(auth.Claims) },
			ErrorHandler: func(c echo.Context, err error) error {
				return apperrors.ErrUnauthenticated
			},
		}),
		handler.RejectRevoked(authService),
	}

	api.POST("/logout", h.Auth.Logout, guard...)

	admin := api.Group("/admin", guard...)
	admin.GET("/dashboard", h.Dashboard.Summary)

	admin.GET("/users", h.User.List)
	admin.POST("/users", h.User.Create)
	admin.GET("/users/:id", h.User.Get)
	admin.PUT("/users/:id", h.User.Update)
	admin.DELETE("/users/:id", h.User.Delete)

	admin.GET("/faculties/all", h.Faculty.All)
	admin.GET("/faculties", h.Faculty.List)
	admin.POST("/faculties", h.Faculty.Create)
	admin.GET("/faculties/:id", h.Faculty.Get)
	admin.PUT("/faculties/:id", h.Faculty.Update)
	admin.DELETE("/faculties/:id", h.Faculty.Delete)

	admin.GET("/categories", h.Category.List)
	admin.POST("/categories", h.Category.Create)
	admin.GET("/categories/:id", h.Category.Get)
	admin.PUT("/categories/:id", h.Category.Update)
	admin.DELETE("/categories/:id", h.Category.Delete)

	admin.GET("/posts", h.Post.List)
	admin.POST("/posts", h.Post.Create)
	admin.GET("/posts/:id", h.Post.Get)
	admin.PUT("/posts/:id", h.Post.Update)
	admin.DELETE("/posts/:id", h.Post.Delete)
}
