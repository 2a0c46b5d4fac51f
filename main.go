package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lahuerta/storefront-api/cart"
	"github.com/lahuerta/storefront-api/catalog"
	orderControllers "github.com/lahuerta/storefront-api/controllers/order"
	"github.com/lahuerta/storefront-api/models"
	"github.com/lahuerta/storefront-api/order"
	"github.com/lahuerta/storefront-api/routes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Owned state, built once and threaded through the routes
	store := cart.NewStore(db)
	index := catalog.NewIndex()
	loader := catalog.NewLoader(os.Getenv("CATALOG_URL"), index)
	submitter := order.NewSubmitter(os.Getenv("ORDERS_URL"), store)
	submitter.Notify = orderControllers.BroadcastOrder

	// Best-effort fresh-session aid, off unless asked for
	if os.Getenv("RESET_CART_ON_BOOT") == "true" {
		store.Clear()
		log.Println("🗑️ Cart cleared for a fresh session")
	}

	// First catalog load; a dead endpoint leaves the catalog empty rather
	// than blocking startup.
	if err := loader.Load(context.Background()); err != nil {
		log.Printf("❌ Initial catalog load failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Cart:      store,
		Index:     index,
		Loader:    loader,
		Submitter: submitter,
	})

	// Periodic catalog refresh, off unless configured
	if minutes := refreshMinutes(); minutes > 0 {
		go startCatalogRefresh(loader, time.Duration(minutes)*time.Minute)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection: Postgres when DATABASE_URL is
// set, a local SQLite file otherwise.
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	path := os.Getenv("CART_DB_PATH")
	if path == "" {
		path = "storefront.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

func refreshMinutes() int {
	minutes, err := strconv.Atoi(os.Getenv("CATALOG_REFRESH_MINUTES"))
	if err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

// startCatalogRefresh reloads the catalog on a fixed interval
func startCatalogRefresh(loader *catalog.Loader, every time.Duration) {
	for {
		next := time.Now().Add(every)
		log.Printf("⏳ Next catalog refresh scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(every)

		if err := loader.Load(context.Background()); err != nil {
			log.Printf("❌ Catalog refresh failed: %v", err)
		} else {
			log.Println("✅ Catalog refreshed")
		}
	}
}
