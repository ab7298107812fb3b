package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	adminrepo "github.com/samedayramps/samedayramps-application/admin/repository"
	adminsvc "github.com/samedayramps/samedayramps-application/admin/service"
	authsvc "github.com/samedayramps/samedayramps-application/auth/service"
	customerrepo "github.com/samedayramps/samedayramps-application/customer/repository"
	customersvc "github.com/samedayramps/samedayramps-application/customer/service"
	"github.com/samedayramps/samedayramps-application/esign"
	"github.com/samedayramps/samedayramps-application/geo"
	api "github.com/samedayramps/samedayramps-application/handler"
	"github.com/samedayramps/samedayramps-application/middleware"
	"github.com/samedayramps/samedayramps-application/notify"
	"github.com/samedayramps/samedayramps-application/pricing"
	quoterepo "github.com/samedayramps/samedayramps-application/quote/repository"
	quotesvc "github.com/samedayramps/samedayramps-application/quote/service"
	rentalrepo "github.com/samedayramps/samedayramps-application/rental/repository"
	rentalsvc "github.com/samedayramps/samedayramps-application/rental/service"
	settingsrepo "github.com/samedayramps/samedayramps-application/settings/repository"
	settingssvc "github.com/samedayramps/samedayramps-application/settings/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}

	db := setupDatabase()

	mapsService, err := geo.NewGoogleMapsService(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to init google maps client")
	}

	esignService := esign.NewClient(
		os.Getenv("ESIGNATURES_API_TOKEN"),
		os.Getenv("ESIGNATURES_TEMPLATE_ID"),
		os.Getenv("ESIGNATURES_TEST_MODE") == "true",
	)

	notifier := notify.NewSendGridNotifier(notify.Config{
		APIKey:     os.Getenv("SENDGRID_API_KEY"),
		FromEmail:  envOr("EMAIL_FROM", "info@samedayramps.com"),
		AdminEmail: envOr("ADMIN_EMAIL", "info@samedayramps.com"),
		AppURL:     envOr("APP_URL", "http://localhost:8080"),
	})

	adminRepo := adminrepo.NewGormAdminRepo(db)
	adminService := adminsvc.NewAdminService(adminRepo)
	authService := authsvc.NewAuthService(adminRepo, envOr("JWT_SECRET", "dev-insecure-secret-change-me"), 24*time.Hour)

	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)

	settingsRepo := settingsrepo.NewGormSettingsRepo(db)
	settingsService := settingssvc.NewSettingsService(settingsRepo, mapsService)

	pricingService := pricing.NewPricingService(settingsService, mapsService)

	quoteRepo := quoterepo.NewGormQuoteRepo(db)
	quoteService := quotesvc.NewQuoteService(quoteRepo, customerRepo, notifier, quotesvc.Config{
		AllowPaidRevert: os.Getenv("ALLOW_PAID_REVERT") == "true",
	})

	rentalRepo := rentalrepo.NewGormRentalRepo(db)
	rentalService := rentalsvc.NewRentalService(rentalRepo, esignService, notifier)

	authHandler := api.NewAuthHandler(authService, adminService)
	customerHandler := api.NewCustomerHandler(customerService)
	quoteHandler := api.NewQuoteHandler(quoteService)
	rentalHandler := api.NewRentalHandler(rentalService)
	settingsHandler := api.NewSettingsHandler(settingsService)
	pricingHandler := api.NewPricingHandler(pricingService)
	webhookHandler := api.NewWebhookHandler(rentalService)

	r := gin.Default()
	r.Use(gin.Recovery(), gin.Logger())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	v1 := r.Group("/api/v1")
	{
		// Open endpoints: the public quote form, login and provider callbacks.
		v1.POST("/auth/login", authHandler.Login())
		v1.POST("/quotes", quoteHandler.CreateQuote())
		v1.POST("/webhooks/esignatures", webhookHandler.ESignatures())

		admin := v1.Group("/", middleware.RequireAuth())
		{
			admin.POST("/auth/register", authHandler.RegisterAdmin())

			admin.GET("/customers", customerHandler.SearchCustomers())
			admin.POST("/customers", customerHandler.CreateCustomer())
			admin.GET("/customers/:id", customerHandler.GetCustomer())
			admin.PUT("/customers/:id", customerHandler.UpdateCustomer())
			admin.GET("/customers/:id/communications", customerHandler.ListCommunications())
			admin.POST("/customers/:id/communications", customerHandler.LogCommunication())
			admin.GET("/customers/:id/tasks", customerHandler.ListTasks())
			admin.POST("/customers/:id/tasks", customerHandler.CreateTask())

			admin.GET("/quotes", quoteHandler.ListQuotes())
			admin.GET("/quotes/:id", quoteHandler.GetQuote())
			admin.PUT("/quotes/:id", quoteHandler.UpdateQuote())
			admin.PATCH("/quotes/:id", quoteHandler.ApplyAction())

			admin.GET("/rentals", rentalHandler.ListRentals())
			admin.GET("/rentals/:id", rentalHandler.GetRental())
			admin.PATCH("/rentals/:id", rentalHandler.ApplyAction())

			admin.GET("/settings", settingsHandler.GetSettings())
			admin.PUT("/settings", settingsHandler.UpdateSettings())

			admin.POST("/pricing/calculate", pricingHandler.Calculate())
		}
	}

	r.Run() // listen and serve on 0.0.0.0:8080
}
