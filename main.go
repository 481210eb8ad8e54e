package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/config"
	"github.com/pepperjack/tableorder/database"
	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/router"
	"github.com/pepperjack/tableorder/tablecodes"
	"github.com/pepperjack/tableorder/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	// Table-code mapping is configuration: load once, fail fast if broken.
	if err := tablecodes.Load(os.Getenv("TABLE_CODES_FILE")); err != nil {
		utils.ErrorLogger.Fatalf("Failed to load table codes: %v", err)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)
	defer func() {
		if err := utils.CloseDB(); err != nil {
			utils.ErrorLogger.Printf("Error closing database: %v", err)
		}
	}()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.SeedMenu(db); err != nil {
		utils.ErrorLogger.Printf("Error seeding menu: %v", err)
	}

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
		&models.Review{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
