package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"payhub/cmd/fx/account_fx"
	"payhub/cmd/fx/db_fx"
	"payhub/cmd/fx/gateways_fx"
	"payhub/cmd/fx/payment_fx"
	"payhub/cmd/fx/payout_fx"
	"payhub/internal/api/controllers"
	"payhub/internal/models/db_models"
	"payhub/pkg/middleware"
	"payhub/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		gateways_fx.Module,
		account_fx.Module,
		payment_fx.Module,
		payout_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	payoutController *controllers.PayoutController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.GeneralRateLimiter().Middleware())

	RegisterRoutes(r, accountController, paymentController, payoutController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	paymentController *controllers.PaymentController,
	payoutController *controllers.PayoutController) {

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		utils.RespondSuccess(c, gin.H{"version": "1.0.0"}, "Payment Aggregator API is running")
	})

	authLimiter := middleware.AuthRateLimiter().Middleware()
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authLimiter, accountController.Register)
	authGroup.POST("/login", authLimiter, accountController.Login)
	authGroup.GET("/profile", middleware.JWTAuthMiddleware(), accountController.GetProfile)

	paymentsGroup := api.Group("/payments")
	paymentsGroup.POST("",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(db_models.RoleMerchant, db_models.RoleVendor, db_models.RoleAdmin),
		middleware.PaymentRateLimiter().Middleware(),
		paymentController.CreatePayment)
	paymentsGroup.GET("/transactions",
		middleware.JWTAuthMiddleware(),
		middleware.RoleMiddleware(db_models.RoleAdmin),
		paymentController.ListTransactions)
	paymentsGroup.GET("/transactions/:transactionId",
		middleware.JWTAuthMiddleware(),
		paymentController.GetTransaction)

	// Gateways authenticate webhooks out of band; no bearer token here.
	paymentsGroup.POST("/webhooks/:gateway", paymentController.HandleWebhook)

	payoutsGroup := api.Group("/payouts")
	payoutsGroup.POST("", middleware.JWTAuthMiddleware(), payoutController.InitiatePayout)
	payoutsGroup.POST("/submit-upi", payoutController.SubmitUpi)
	payoutsGroup.GET("/:token", payoutController.GetPayout)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
