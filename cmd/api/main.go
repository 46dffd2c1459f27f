package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"energy-advisor/internal/api/handlers"
	"energy-advisor/internal/api/middleware"
	"energy-advisor/internal/catalog"
	"energy-advisor/internal/config"
	"energy-advisor/internal/data"
	"energy-advisor/internal/engine"
	"energy-advisor/internal/sharing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	log := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	cat, err := loadCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("load catalog")
	}

	dir, err := loadDirectory()
	if err != nil {
		log.Fatal().Err(err).Msg("load customer directory")
	}

	dataDir := getEnv("DATA_DIR", "./data")
	curves := data.NewCSVStore(dataDir)

	signals, closeSignals, err := openSignalLog(log)
	if err != nil {
		log.Fatal().Err(err).Msg("open signal log")
	}
	defer closeSignals()

	eng := engine.New(engine.Deps{
		Config:    cfg,
		Catalog:   cat,
		Curves:    curves,
		Directory: dir,
		Contracts: dir,
		Signals:   signals,
		Log:       log,
	})

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	customerHandler := handlers.NewCustomerHandler(eng)
	consumptionHandler := handlers.NewConsumptionHandler(eng, time.Local)
	profileHandler := handlers.NewProfileHandler(eng)
	recommendationHandler := handlers.NewRecommendationHandler(eng)
	sharingHandler := handlers.NewSharingHandler(eng)

	api := router.Group("/api/v1")
	{
		api.GET("/customers/:id", customerHandler.GetCustomer)
		api.GET("/customers/:id/contract", customerHandler.GetContract)
		api.GET("/customers/:id/consumption", consumptionHandler.GetConsumption)
		api.GET("/customers/:id/profile", profileHandler.GetProfile)
		api.GET("/customers/:id/recommendations", recommendationHandler.GetRecommendations)
		api.GET("/customers/:id/challenges", recommendationHandler.GetChallenges)
		api.GET("/customers/:id/partners", sharingHandler.GetPartners)
		api.POST("/signals", sharingHandler.SignalInterest)
		api.GET("/offers", recommendationHandler.ListOffers)
	}

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}).Handler(router)

	addr := fmt.Sprintf(":%s", getEnv("API_PORT", "8080"))
	log.Info().Str("addr", addr).Str("data_dir", dataDir).Msg("starting API server")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		level = lvl
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	if os.Getenv("API_ENV") != "production" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return config.Load(path)
	}
	return config.Default(), nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		return catalog.Load(path)
	}
	return catalog.Default(), nil
}

func loadDirectory() (*data.Directory, error) {
	if path := os.Getenv("DIRECTORY_PATH"); path != "" {
		return data.LoadDirectory(path)
	}
	return data.DefaultDirectory(), nil
}

// openSignalLog picks the durable sqlite log when SIGNAL_DB is set and
// falls back to the in-process log otherwise.
func openSignalLog(log zerolog.Logger) (sharing.SignalLog, func(), error) {
	if path := os.Getenv("SIGNAL_DB"); path != "" {
		sl, err := sharing.OpenSQLiteLog(path)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", path).Msg("using sqlite signal log")
		return sl, func() { sl.Close() }, nil
	}
	return sharing.NewMemoryLog(), func() {}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
