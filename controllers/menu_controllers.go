package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pepperjack/tableorder/models"
	"github.com/pepperjack/tableorder/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllMenuItems lists the catalog grouped the way the menu page renders
// it. A storage failure degrades to an empty list so the page still loads.
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("category, name").Find(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Error fetching menu items: %v", err)
		utils.RespondJSON(c, http.StatusOK, "List of menu items", []models.MenuItem{})
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

// GetMenuItemByID
func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item detail", item)
}

type menuItemReq struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
}

// CreateMenuItem -> admin adds an item. Name is the only required field.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body menuItemReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("name is required"))
		return
	}

	item := models.MenuItem{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Image:       body.Image,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateMenuItem -> full update of an existing item by id.
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	var body menuItemReq
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if body.ID == 0 || body.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id and name are required"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, body.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	item.Name = body.Name
	item.Description = body.Description
	item.Category = body.Category
	item.Price = body.Price
	item.Image = body.Image
	item.UpdatedAt = time.Now()

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteMenuItem -> ?id= query param, matching the admin form.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	idStr := c.Query("id")
	if idStr == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id is required"))
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid menu item id"))
		return
	}

	if err := mc.DB.Delete(&models.MenuItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", nil)
}
