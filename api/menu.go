package api

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"menucatalog/database"
	"menucatalog/models"
	"menucatalog/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuHandler serves the menu catalog endpoints.
type MenuHandler struct {
	describer *service.Describer
}

// NewMenuHandler creates a menu handler.
func NewMenuHandler(describer *service.Describer) *MenuHandler {
	return &MenuHandler{describer: describer}
}

// fallbackDescription replaces the generated text whenever the
// generator is unavailable or fails. Never surfaced as an error.
const fallbackDescription = "Delicious menu item"

// CreateMenuRequest create payload. Required-field validation is done
// by hand so the error body matches the documented message.
type CreateMenuRequest struct {
	Name        string   `json:"name" example:"Nasi Goreng"`
	Category    string   `json:"category" example:"Main Course"`
	Price       float64  `json:"price" example:"25000"`
	Calories    float64  `json:"calories" example:"450"`
	Ingredients []string `json:"ingredients"`
	Description string   `json:"description"`
}

// UpdateMenuRequest partial update payload; nil fields stay untouched.
type UpdateMenuRequest struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Calories    *float64  `json:"calories"`
	Ingredients *[]string `json:"ingredients"`
	Description *string   `json:"description"`
}

// List lists catalog items with filtering, sorting and pagination
// @Summary List menu items
// @Description Lists the catalog with optional text search, category and numeric filters, sorting and pagination. Malformed numeric parameters are ignored.
// @Tags menu
// @Accept json
// @Produce json
// @Param q query string false "case-insensitive substring match on name"
// @Param category query string false "exact category match"
// @Param min_price query number false "inclusive lower price bound"
// @Param max_price query number false "inclusive upper price bound"
// @Param max_cal query number false "inclusive upper calorie bound"
// @Param sort query string false "field or field:order, order asc|desc" example(price:desc)
// @Param page query int false "1-based page number" default(1)
// @Param per_page query int false "page size" default(10)
// @Success 200 {object} ListResponse
// @Failure 500 {object} MessageResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	var items []models.MenuItem
	if err := database.DB.Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	var q ListQuery
	_ = c.ShouldBindQuery(&q)

	result := ApplyFilters(items, q)
	SortItems(result, q.Sort)
	pageData, pagination := Paginate(result, q.Page, q.PerPage)

	c.JSON(200, ListResponse{Data: pageData, Pagination: pagination})
}

// Get fetches one catalog item
// @Summary Get a menu item
// @Tags menu
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} DataResponse{data=models.MenuItem}
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		// non-numeric ids can match no stored key
		NotFound(c, "Menu not found")
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Menu not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	Data(c, item)
}

// Create creates a catalog item
// @Summary Create a menu item
// @Description Creates a menu item. A blank description is filled in by the AI generator, falling back to a fixed default when generation fails.
// @Tags menu
// @Accept json
// @Produce json
// @Param request body CreateMenuRequest true "menu item"
// @Success 201 {object} MessageResponse{data=models.MenuItem}
// @Failure 400 {object} MessageResponse "required fields missing"
// @Failure 500 {object} MessageResponse
// @Router /menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return
	}

	if req.Name == "" || req.Category == "" || req.Price == 0 {
		BadRequest(c, "Required fields missing")
		return
	}

	description := req.Description
	if strings.TrimSpace(description) == "" {
		generated, err := h.describer.Describe(c.Request.Context(), req.Name, req.Category, req.Ingredients)
		if err != nil {
			description = fallbackDescription
		} else {
			description = generated
		}
	}

	// Next id = highest stored id + 1. Read-then-write without a
	// transaction: two concurrent creates can race (known limitation).
	newID := 1
	var last models.MenuItem
	err := database.DB.Order("id DESC").First(&last).Error
	switch {
	case err == nil:
		newID = last.ID + 1
	case errors.Is(err, gorm.ErrRecordNotFound):
		// empty catalog, keep id 1
	default:
		InternalError(c, SafeErrorMessage(err, "failed to assign id"))
		return
	}

	ingredients := req.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	now := time.Now()
	item := models.MenuItem{
		ID:          newID,
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Calories:    req.Calories,
		Ingredients: ingredients,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to create menu"))
		return
	}

	Created(c, "Menu created", item)
}

// Update partially updates a catalog item
// @Summary Update a menu item
// @Description Applies a partial update; fields absent from the body are left untouched. The response always reflects the persisted record.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "menu item id"
// @Param request body UpdateMenuRequest true "fields to change"
// @Success 200 {object} MessageResponse{data=models.MenuItem}
// @Failure 400 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /menu/{id} [put]
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		NotFound(c, "Menu not found")
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Menu not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid request body"))
		return
	}

	updates := map[string]interface{}{
		"id":         id, // id stays pinned to the path parameter
		"updated_at": time.Now(),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Calories != nil {
		updates["calories"] = *req.Calories
	}
	if req.Ingredients != nil {
		// serialize by hand: map-based updates bypass the field serializer
		encoded, err := json.Marshal(*req.Ingredients)
		if err != nil {
			BadRequest(c, SafeErrorMessage(err, "invalid ingredients"))
			return
		}
		updates["ingredients"] = string(encoded)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if err := database.DB.Model(&item).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to update menu"))
		return
	}

	// Re-read so the response matches exactly what was persisted.
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	MessageWithData(c, "Menu updated", item)
}

// Delete removes a catalog item
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path int true "menu item id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} MessageResponse
// @Failure 500 {object} MessageResponse
// @Router /menu/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		NotFound(c, "Menu not found")
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "Menu not found")
			return
		}
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to delete menu"))
		return
	}

	Message(c, "Menu deleted successfully")
}

// GroupByCategory aggregates the catalog per category
// @Summary Group menu items by category
// @Description mode=count returns per-category item counts, mode=list returns per-category item summaries in stored order.
// @Tags menu
// @Produce json
// @Param mode query string true "count or list"
// @Success 200 {object} DataResponse
// @Failure 400 {object} MessageResponse "invalid mode"
// @Failure 500 {object} MessageResponse
// @Router /menu/group-by-category [get]
func (h *MenuHandler) GroupByCategory(c *gin.Context) {
	mode := c.Query("mode")
	if mode != "count" && mode != "list" {
		BadRequest(c, "Invalid mode")
		return
	}

	var items []models.MenuItem
	if err := database.DB.Find(&items).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "failed to load menu"))
		return
	}

	if mode == "count" {
		counts := make(map[string]int)
		for _, item := range items {
			counts[item.Category]++
		}
		Data(c, counts)
		return
	}

	grouped := make(map[string][]models.MenuSummary)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item.Summary())
	}
	Data(c, grouped)
}
