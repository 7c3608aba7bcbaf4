package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ppetrack/internal/config"
	"ppetrack/internal/database"
	"ppetrack/internal/middleware"
	"ppetrack/internal/modules/audit"
	"ppetrack/internal/modules/inspection"
	"ppetrack/internal/modules/notification"
	"ppetrack/internal/modules/registry"
	"ppetrack/internal/modules/report"
	"ppetrack/internal/modules/upload"
	"ppetrack/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment as-is")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	personRepo := repository.NewPersonRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	signoffRepo := repository.NewSignoffRepository(db)

	notifService := notification.NewService(notification.NewRepository(db))
	notifHandler := notification.NewHandler(notifService)

	registryService := registry.NewService(personRepo, equipmentRepo, cfg.SiteFilter, cfg.ExcludedConditions)
	registryHandler := registry.NewHandler(registryService)

	inspectionService := inspection.NewService(inspectionRepo, personRepo, equipmentRepo, notifService)
	inspectionHandler := inspection.NewHandler(inspectionService)

	reportService := report.NewService(personRepo, inspectionRepo)
	reportHandler := report.NewHandler(reportService)

	auditService := audit.NewService(signoffRepo, reportService)
	auditHandler := audit.NewHandler(auditService)

	uploadService := upload.NewService(upload.NewRepository(db), cfg.UploadsDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		registryHandler.RegisterRoutes(v1)
		inspectionHandler.RegisterRoutes(v1)
		reportHandler.RegisterRoutes(v1)
		auditHandler.RegisterRoutes(v1)
		uploadHandler.RegisterRoutes(v1)
		notifHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
