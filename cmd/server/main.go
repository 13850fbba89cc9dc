package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/config"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/controllers"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/database"
	"github.com/Raunaaaakkkkkk/E-Challan-Pro/internal/services"
)

// positionMaxAge is how long an officer's last reported position stays
// usable for stamping challans.
const positionMaxAge = 5 * time.Minute

func main() {
	// Load configs
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Open the in-memory database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	// Instantiate services
	userSvc := services.NewUserService(db)
	offenseSvc := services.NewOffenseService(db)
	challanSvc := services.NewChallanService(db, offenseSvc)
	customFieldSvc := services.NewCustomFieldService(db)
	authSvc := services.NewAuthService(db)
	locationSvc := services.NewLocationService(positionMaxAge)
	prefSvc := services.NewPreferenceService(cfg.PrefsFile)

	assistSvc, err := services.NewAssistService(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("failed to create assist service: %v", err)
	}

	// Create controllers
	authCtrl := controllers.NewAuthController(authSvc, locationSvc)
	userCtrl := controllers.NewUserController(userSvc)
	offenseCtrl := controllers.NewOffenseController(offenseSvc)
	customFieldCtrl := controllers.NewCustomFieldController(customFieldSvc)
	challanCtrl := controllers.NewChallanController(challanSvc, offenseSvc, assistSvc, locationSvc)
	vehicleCtrl := controllers.NewVehicleController(assistSvc)
	ruleCtrl := controllers.NewRuleController(assistSvc)
	locationCtrl := controllers.NewLocationController(locationSvc)
	prefCtrl := controllers.NewPreferenceController(prefSvc)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Register routes
	auth := controllers.NewAuthMiddleware(authSvc)

	api := e.Group("/api/v1")
	authCtrl.Register(api)
	prefCtrl.Register(api)

	protected := api.Group("", auth.RequireUser)
	authCtrl.RegisterProtected(protected)
	offenseCtrl.Register(protected)
	customFieldCtrl.Register(protected)
	challanCtrl.Register(protected)
	vehicleCtrl.Register(protected)
	ruleCtrl.Register(protected)
	locationCtrl.Register(protected)

	admin := protected.Group("/admin", auth.RequireAdmin)
	userCtrl.Register(admin)
	offenseCtrl.RegisterAdmin(admin)
	customFieldCtrl.RegisterAdmin(admin)

	// Run server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
