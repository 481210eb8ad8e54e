package database

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
)

var menuItemImages = map[string]string{
	"Bulgogi":       "https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=400&fit=crop",
	"Galbi":         "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=400&fit=crop",
	"Samgyeopsal":   "https://images.unsplash.com/photo-1528607929212-2636ec44253e?w=400&h=400&fit=crop",
	"Chicken":       "https://images.unsplash.com/photo-1604503468506-a8da13d82791?w=400&h=400&fit=crop",
	"Shrimp":        "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?w=400&h=400&fit=crop",
	"Squid":         "https://images.unsplash.com/photo-1563379091339-03246963d29b?w=400&h=400&fit=crop",
	"Kimchi":        "https://images.unsplash.com/photo-1584270354949-c26b0d5b4a0c?w=400&h=400&fit=crop",
	"Rice":          "https://images.unsplash.com/photo-1536304993881-ff6e9eefa2a6?w=400&h=400&fit=crop",
	"Lettuce":       "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1?w=400&h=400&fit=crop",
	"Bean Sprouts":  "https://images.unsplash.com/photo-1596797038530-2c199229d51e?w=400&h=400&fit=crop",
	"Seaweed Salad": "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=400&fit=crop",
	"Japchae":       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=400&h=400&fit=crop",
}

var defaultMenu = []models.MenuItem{
	{Name: "Bulgogi", Description: "Marinated beef", Category: models.CategoryMeat},
	{Name: "Galbi", Description: "Short ribs", Category: models.CategoryMeat},
	{Name: "Samgyeopsal", Description: "Pork belly", Category: models.CategoryMeat},
	{Name: "Chicken", Description: "Marinated chicken", Category: models.CategoryMeat},
	{Name: "Shrimp", Description: "Grilled shrimp", Category: "Seafood"},
	{Name: "Squid", Description: "Grilled squid", Category: "Seafood"},
	{Name: "Kimchi", Description: "Fermented cabbage", Category: "Side"},
	{Name: "Rice", Description: "Steamed rice", Category: "Side"},
	{Name: "Lettuce", Description: "Fresh lettuce wraps", Category: "Side"},
	{Name: "Bean Sprouts", Description: "Seasoned bean sprouts", Category: "Side"},
	{Name: "Seaweed Salad", Description: "Fresh seaweed", Category: "Side"},
	{Name: "Japchae", Description: "Glass noodles", Category: "Side"},
}

// SeedMenu populates the catalog on first run. On an already-populated
// catalog it only backfills missing images for the known item names.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		now := time.Now()
		items := make([]models.MenuItem, len(defaultMenu))
		for i, item := range defaultMenu {
			item.Image = menuItemImages[item.Name]
			item.CreatedAt = now
			item.UpdatedAt = now
			items[i] = item
		}
		return db.Create(&items).Error
	}

	var existing []models.MenuItem
	if err := db.Select("id", "name", "image").Find(&existing).Error; err != nil {
		return err
	}
	for _, item := range existing {
		url, known := menuItemImages[item.Name]
		if !known || strings.TrimSpace(item.Image) != "" {
			continue
		}
		if err := db.Model(&models.MenuItem{}).Where("id = ?", item.ID).
			Update("image", url).Error; err != nil {
			return err
		}
	}
	return nil
}
