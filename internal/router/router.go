package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"roster/internal/auth"
	"roster/internal/config"
	"roster/internal/handler"
	"roster/internal/model"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Notification  *handler.NotificationHandler
	Subscription  *handler.SubscriptionHandler
	Health        *handler.HealthHandler
	Headquarters  *handler.ResourceHandler[model.Headquarters]
	Zone          *handler.ResourceHandler[model.Zone]
	Dependency    *handler.ResourceHandler[model.Dependency]
	Shift         *handler.ResourceHandler[model.Shift]
	WorkRegime    *handler.ResourceHandler[model.WorkRegime]
	Guard         *handler.ResourceHandler[model.Guard]
	Leave         *handler.ResourceHandler[model.Leave]
	UniformItem   *handler.ResourceHandler[model.UniformItem]
	Duty          *handler.ResourceHandler[model.Duty]
	Vehicle       *handler.ResourceHandler[model.Vehicle]
	VehicleRepair *handler.ResourceHandler[model.VehicleService]
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log logrus.FieldLogger,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Use(RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", h.Health.Healthz)
	e.GET("/readyz", h.Health.Readyz)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/login", h.Auth.Login)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/forgot-password", h.Auth.ForgotPassword)
	api.POST("/auth/reset-password", h.Auth.ResetPassword)
	api.POST("/setup", h.User.Setup)
	api.GET("/push/public-key", h.Subscription.PublicKey)

	// Secured routes (require a live access token)
	secured := api.Group("", Authenticate(jwtService, tokenStore)...)
	admin := RequireAdmin()

	secured.POST("/auth/logout", h.Auth.Logout)

	// User routes
	secured.GET("/users", h.User.ListUsers)
	secured.GET("/users/:id", h.User.GetUser)
	secured.GET("/users/:id/leaves", h.User.Leaves)
	secured.PUT("/users/:id/password", h.User.ChangePassword)
	secured.POST("/users", h.User.CreateUser, admin)
	secured.PUT("/users/:id", h.User.UpdateUser, admin)
	secured.DELETE("/users/:id", h.User.DeleteUser, admin)

	// Notification routes
	secured.GET("/notifications", h.Notification.ListNotifications)
	secured.POST("/notifications", h.Notification.CreateNotification, admin)
	secured.DELETE("/notifications/:id", h.Notification.DeleteNotification, admin)

	// Push subscription routes
	secured.GET("/subscriptions", h.Subscription.ListSubscriptions)
	secured.POST("/subscriptions", h.Subscription.Subscribe)
	secured.DELETE("/subscriptions/:id", h.Subscription.DeleteSubscription)

	// Catalog routes: everyone reads, administrators write
	h.Headquarters.Register(secured, "/headquarters", admin)
	h.Zone.Register(secured, "/zones", admin)
	h.Dependency.Register(secured, "/dependencies", admin)
	h.Shift.Register(secured, "/shifts", admin)
	h.WorkRegime.Register(secured, "/work-regimes", admin)
	h.Guard.Register(secured, "/guards", admin)
	h.Leave.Register(secured, "/leaves", admin)
	h.UniformItem.Register(secured, "/uniform-items", admin)
	h.Duty.Register(secured, "/duties", admin)
	h.Vehicle.Register(secured, "/vehicles", admin)
	h.VehicleRepair.Register(secured, "/vehicle-services", admin)
}

// Authenticate returns the middleware chain for routes that need a live
// access token.
func Authenticate(jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			SigningKey:    jwtService.Secret(),
			SigningMethod: jwt.SigningMethodHS256.Alg(),
			TokenLookup:   "header:" + echo.HeaderAuthorization + ":Bearer ",
			NewClaimsFunc: func(echo.Context) jwt.Claims { return new(auth.Claims) },
			ErrorHandler:  unauthorized,
		}),
		RequireAccessToken(tokenStore),
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator used for request bodies.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Struct exposes the underlying validator to the service layer.
func (cv *CustomValidator) Struct(i interface{}) error {
	return cv.validator.Struct(i)
}
