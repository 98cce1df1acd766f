// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"stralshund/dog-api/db"
	"stralshund/dog-api/internal/model"
	"stralshund/dog-api/internal/service"
	"stralshund/dog-api/middleware"
	"stralshund/dog-api/pkg/security"
	"stralshund/dog-api/validators"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

type API struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Argon   *security.ArgonHash
	Tokens  *security.TokenIssuer
	Auth    *service.AuthService
	Cleanup *cron.Cron
}

func NewRouter() (*API, error) {
	a := &API{}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = database

	makeLogger()
	validators.RegisterBindings()

	a.Argon = security.NewArgon()
	a.Tokens = security.NewTokenIssuer(security.TokenConfig{
		AccessSecret:  viper.GetString("jwt.access_secret"),
		RefreshSecret: viper.GetString("jwt.refresh_secret"),
		AccessExpiry:  viper.GetDuration("jwt.access_expiry"),
		RefreshExpiry: viper.GetDuration("jwt.refresh_expiry"),
	})

	a.Auth, err = service.NewAuthService(a.DB, a.Argon, a.Tokens, service.NewMailer(), viper.GetDuration("reset.token_expiry"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service, %w", err)
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RequestsPerSecond: 20,
			Burst:             40,
		}),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true

	auth := middleware.NewAuthMiddleware(a.DB, a.Tokens)
	optionalAuth := middleware.NewOptionalAuthMiddleware(a.DB, a.Tokens)
	premium := middleware.NewRequirePremiumMiddleware(a.DB)

	// GET /health		-> Used to check if the server is alive
	router.GET("/health", a.Heartbeat)

	main := router.Group("/api/v1")

	authGroup := main.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/v1/auth/register		-> Creates an account and logs it in
		authGroup.POST("/register", a.AuthRegister)

		// POST /api/v1/auth/login		-> Logs in a user, rotates the refresh token
		authGroup.POST("/login", a.AuthLogin)

		// POST /api/v1/auth/refresh-token	-> Trades a refresh token for a new access token
		authGroup.POST("/refresh-token", a.AuthRefresh)

		// POST /api/v1/auth/logout		-> Clears the stored refresh token
		authGroup.POST("/logout", auth, a.AuthLogout)

		// POST /api/v1/auth/forgot-password	-> Starts the password reset flow
		authGroup.POST("/forgot-password", a.AuthForgotPassword)

		// POST /api/v1/auth/reset-password/:token -> Redeems a reset token
		authGroup.POST("/reset-password/:token", a.AuthResetPassword)

		// GET /api/v1/auth/verify		-> Confirms an email address
		authGroup.GET("/verify", a.AuthVerify)

		// GET /api/v1/auth/me			-> Returns the logged in user
		authGroup.GET("/me", auth, a.AuthMe)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/v1/users/me			-> Returns the logged in user's profile
		users.GET("/me", auth, a.UserFetch)

		// PUT /api/v1/users/me			-> Updates profile fields
		users.PUT("/me", auth, a.UserUpdate)
	}

	routes := main.Group("/routes")
	{
		// GET /api/v1/routes			-> Lists walking routes
		routes.GET("", optionalAuth, a.RouteList)

		// POST /api/v1/routes			-> Creates a walking route
		routes.POST("", auth, a.RouteCreate)

		// GET /api/v1/routes/recommended	-> Premium only route picks
		routes.GET("/recommended", auth, premium, a.RouteRecommended)
	}

	meetups := main.Group("/meetups")
	{
		// GET /api/v1/meetups			-> Lists upcoming meetups
		meetups.GET("", optionalAuth, a.MeetupList)

		// POST /api/v1/meetups			-> Creates a meetup
		meetups.POST("", auth, a.MeetupCreate)

		// POST /api/v1/meetups/:id/join	-> Joins a meetup if there is room
		meetups.POST("/:id/join", auth, a.MeetupJoin)
	}

	spots := main.Group("/dog-spots")
	{
		// GET /api/v1/dog-spots		-> Lists rentable dog spots
		spots.GET("", optionalAuth, a.SpotList)

		// POST /api/v1/dog-spots		-> Lists a new spot, hosts only
		spots.POST("", auth, middleware.Authorize(model.AccountHost, model.AccountPremiumPlus), a.SpotCreate)
	}

	a.Cleanup = service.StartCleanup(a.DB, viper.GetDuration("cleanup.verification_grace"))

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
