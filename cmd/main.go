package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/application"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/config"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/domain/service"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/handler"
	infraauth "github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/infrastructure/auth"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/infrastructure/database"
	infrafirestore "github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/infrastructure/firestore"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/infrastructure/maps"
	"github.com/Clement-Mateo/PWA-VOYAGE-ASIE/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("⚠️ .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	// Document store
	firestoreClient, err := infrafirestore.NewClient(ctx, cfg.FirestoreProjectID)
	if err != nil {
		logrus.Fatalf("Firestore initialization failed: %v", err)
	}
	defer firestoreClient.Close()

	// Embedded key-value store (offline cache + local fallback)
	badgerClient, err := database.NewBadgerClient(cfg.OfflineCachePath)
	if err != nil {
		logrus.Fatalf("Badger initialization failed: %v", err)
	}
	defer badgerClient.Close()

	// Search client: places first, geocode fallback
	placesProvider := maps.NewGooglePlacesProvider(cfg.GoogleAPIKey)
	geocodeProvider := maps.NewGoogleGeocodeProvider(cfg.GoogleAPIKey)
	searchService := service.NewAddressSearchService(placesProvider, geocodeProvider)

	// Remote sync
	identityClient := infraauth.NewIdentityClient(cfg.FirebaseAPIKey)
	itinerariesRepo := repository.NewFirestoreItinerariesRepository(firestoreClient.GetClient())
	destinationsRepo := repository.NewFirestoreDestinationsRepository(firestoreClient.GetClient())
	syncService := application.NewSyncService(identityClient, itinerariesRepo, destinationsRepo)

	// Token verification is optional: without Admin SDK credentials the
	// session gate alone protects the itinerary routes.
	var verifier handler.TokenVerifier
	if v, err := infraauth.NewFirebaseVerifier(ctx, cfg.FirestoreProjectID); err != nil {
		logrus.Warnf("⚠️ Firebase verifier unavailable: %v", err)
	} else {
		verifier = v
	}

	// Local fallback itinerary, reloaded from the key-value store
	localRepo := repository.NewBadgerLocalItineraryRepository(badgerClient.DB)
	itineraryStore := service.NewItineraryStore()
	if points, err := localRepo.Load(ctx); err != nil {
		logrus.Warnf("⚠️ Failed to reload local itinerary: %v", err)
	} else {
		itineraryStore.Replace(points)
	}

	// Offline cache worker: install then activate, like a service worker
	// taking over a page.
	cacheRepo := repository.NewBadgerOfflineCacheRepository(badgerClient.DB)
	offlineWorker := application.NewOfflineWorker(cacheRepo, nil, nil, nil)
	if err := offlineWorker.Install(ctx); err != nil {
		logrus.Warnf("⚠️ Offline cache install failed: %v", err)
	}
	if err := offlineWorker.Activate(ctx); err != nil {
		logrus.Warnf("⚠️ Offline cache activation failed: %v", err)
	}

	router := setupRouter(cfg, searchService, syncService, verifier, itineraryStore, localRepo, offlineWorker)

	logrus.Infof("Voyage-Asie server starting on :%s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

func setupRouter(
	cfg *config.Config,
	searchService service.AddressSearchService,
	syncService application.SyncService,
	verifier handler.TokenVerifier,
	itineraryStore *service.ItineraryStore,
	localRepo *repository.BadgerLocalItineraryRepository,
	offlineWorker application.OfflineWorker,
) *gin.Engine {
	router := gin.Default()
	router.Use(handler.CORSMiddleware())

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "voyage-asie"})
	})

	searchHandler := handler.NewSearchHandler(searchService, cfg.GoogleAPIKey)
	router.GET("/api/places-search", searchHandler.PlacesSearch)
	router.GET("/api/search", searchHandler.Search)

	authHandler := handler.NewAuthHandler(syncService)
	auth := router.Group("/api/auth")
	{
		auth.POST("/signin", authHandler.SignIn)
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signout", authHandler.SignOut)
		auth.GET("/session", authHandler.Session)
	}

	itineraryHandler := handler.NewItineraryHandler(syncService)
	itineraries := router.Group("/api/itineraries")
	itineraries.Use(handler.AuthRequired(syncService, verifier))
	{
		itineraries.GET("", itineraryHandler.List)
		itineraries.GET("/current", itineraryHandler.Current)
		itineraries.POST("/:id/destinations", itineraryHandler.AddDestination)
		itineraries.GET("/:id/destinations", itineraryHandler.ListDestinations)
	}

	localHandler := handler.NewLocalItineraryHandler(itineraryStore, localRepo)
	local := router.Group("/api/local/itinerary")
	{
		local.GET("", localHandler.List)
		local.DELETE("", localHandler.Clear)
		local.POST("/destinations", localHandler.AddDestination)
		local.DELETE("/destinations/:index", localHandler.RemoveDestination)
		local.GET("/duration", localHandler.TotalDuration)
		local.GET("/export", localHandler.Export)
		local.POST("/import", localHandler.Import)
	}

	offlineHandler := handler.NewOfflineHandler(offlineWorker)
	router.GET("/api/offline/fetch", offlineHandler.Fetch)

	return router
}
