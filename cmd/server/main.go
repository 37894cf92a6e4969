package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/maaidasong-coder/geointel/internal/api"
	"github.com/maaidasong-coder/geointel/internal/database"
	"github.com/maaidasong-coder/geointel/internal/inference"
	"github.com/maaidasong-coder/geointel/internal/intel"
	"github.com/maaidasong-coder/geointel/internal/search"
	"github.com/maaidasong-coder/geointel/internal/storage"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	port := getEnv("PORT", "8080")

	maxUploadSize := getEnv("MAX_UPLOAD_SIZE", "20971520")
	maxSize, err := strconv.ParseInt(maxUploadSize, 10, 64)
	if err != nil {
		log.Fatal("Invalid MAX_UPLOAD_SIZE:", err)
	}

	uploadDir := getEnv("UPLOAD_DIR", "./uploads")

	// Store selection: sqlite by default, postgres when configured, plain
	// in-memory map when DB_TYPE=memory.
	dbType := getEnv("DB_TYPE", "sqlite")

	var store database.CaseStore
	if dbType == "memory" {
		log.Println("No durable store configured, using in-memory case store")
		store = database.NewMemoryStore()
	} else {
		var dbConfig database.Config
		dbConfig.Type = dbType

		if dbType == "postgres" {
			dbConfig.Host = getEnv("DB_HOST", "localhost")

			dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
			if err != nil {
				log.Fatal("Invalid DB_PORT:", err)
			}
			dbConfig.Port = dbPort

			dbConfig.User = getEnv("DB_USER", "geointel")
			dbConfig.Password = getEnv("DB_PASSWORD", "geointel_dev")
			dbConfig.Name = getEnv("DB_NAME", "geointel")
		} else {
			dbConfig.SQLitePath = getEnv("DB_PATH", "./geointel.db")
		}

		db, err := database.NewDB(dbConfig)
		if err != nil {
			log.Fatal("Failed to initialize database:", err)
		}
		defer db.Close()

		migrationsPath := getEnv("MIGRATIONS_PATH", "./migrations")
		if err := db.RunMigrations(migrationsPath); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}

		store = database.NewCaseRepository(db)
	}

	localStorage, err := storage.NewLocalStorage(uploadDir)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	inferenceConfig := inference.Config{
		Token:        os.Getenv("HF_TOKEN"),
		EmbeddingURL: os.Getenv("EMBEDDING_MODEL_URL"),
		SceneURL:     os.Getenv("SCENE_MODEL_URL"),
		OCRURL:       os.Getenv("OCR_MODEL_URL"),
		FaceURL:      os.Getenv("FACE_MODEL_URL"),
	}
	if inferenceConfig.Token == "" {
		log.Println("HF_TOKEN not set; inference fields will carry error markers")
	}

	searchConfig := search.Config{
		SerpAPIKey:   os.Getenv("SERPAPI_KEY"),
		BingAPIKey:   os.Getenv("BING_API_KEY"),
		BingEndpoint: os.Getenv("BING_ENDPOINT"),
	}
	provider := search.NewProvider(searchConfig)
	if provider == nil {
		log.Println("No search provider configured; cases will carry empty search results")
	} else {
		log.Printf("Search provider: %s", provider.Name())
	}

	queryCap := 0
	if raw := os.Getenv("QUERY_CAP"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			queryCap = parsed
		}
	}

	service := intel.NewService(
		inference.NewClient(inferenceConfig),
		search.NewAggregator(provider),
		store,
		localStorage,
		intel.Config{QueryCap: queryCap},
	)

	app := &api.App{
		Intel:         service,
		Store:         store,
		MaxUploadSize: maxSize,
	}

	router := api.NewRouter(app)

	log.Printf("Server starting on port %s", port)
	log.Printf("Upload directory: %s", uploadDir)
	log.Printf("Store type: %s", dbType)
	log.Printf("Max upload size: %d bytes", maxSize)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
