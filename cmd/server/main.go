package main

import (
	"log"
	"os"

	"divorce-lawyers-api/config"
	"divorce-lawyers-api/internal/admin"
	"divorce-lawyers-api/internal/auth"
	"divorce-lawyers-api/internal/contact"
	"divorce-lawyers-api/internal/content"
	"divorce-lawyers-api/internal/dma"
	"divorce-lawyers-api/internal/geocode"
	"divorce-lawyers-api/internal/lawyer"
	"divorce-lawyers-api/internal/location"
	"divorce-lawyers-api/internal/subscription"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.LoadConfig()

	dsn := "host=" + cfg.DBHost +
		" user=" + cfg.DBUser +
		" password=" + cfg.DBPassword +
		" dbname=" + cfg.DBName +
		" port=" + cfg.DBPort +
		" sslmode=disable"

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://www.divorcelawyers.com"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	geocoder := geocode.NewClient(cfg.NominatimBaseURL, cfg.NominatimUserAgent)
	geocode.RegisterRoutes(r, geocoder)

	resolver := dma.NewResolver(db, geocoder)
	ranker := subscription.NewRanker(db)

	lawyerService := lawyer.NewLawyerService(db, resolver, ranker)
	lawyer.RegisterRoutes(r, lawyerService)

	locationService := location.NewLocationService(db)
	location.RegisterRoutes(r, locationService)

	dmaService := dma.NewDMAService(db)
	dma.RegisterRoutes(r, dmaService)

	subscriptionService := subscription.NewSubscriptionService(db)
	subscription.RegisterRoutes(r, subscriptionService)

	contentService := content.NewContentService(db)
	content.RegisterRoutes(r, contentService)

	contactService := contact.NewContactService(db)
	contact.RegisterRoutes(r, contactService)

	authService := &auth.AuthService{DB: db}
	auth.RegisterRoutes(r, authService)

	adminService := &admin.AdminService{
		DB:       db,
		Resolver: resolver,
		Ranker:   ranker,
		Contacts: contactService,
	}
	admin.RegisterRoutes(r, adminService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on 0.0.0.0:%s ...", port)
	log.Fatal(r.Run("0.0.0.0:" + port))
}
