package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// MenuHandler handles menu category and item HTTP requests
type MenuHandler struct {
	menuService *service.MenuService
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// CreateCategory adds a menu category
func (h *MenuHandler) CreateCategory(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.menuService.CreateCategory(c.Request.Context(), a, &service.CreateCategoryInput{
		Name:     req.Name,
		Position: req.Position,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created", category)
}

// ListCategories returns the branch menu categories
func (h *MenuHandler) ListCategories(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	categories, err := h.menuService.ListCategories(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved", categories)
}

// CreateItem adds a sellable item
func (h *MenuHandler) CreateItem(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	input := &service.CreateItemInput{
		CategoryID:       req.CategoryID,
		Name:             req.Name,
		Description:      req.Description,
		SKU:              req.SKU,
		HSN:              req.HSN,
		TaxInclusive:     req.TaxInclusive,
		GSTRate:          req.GSTRate,
		KitchenStationID: req.KitchenStationID,
	}
	for _, v := range req.Variants {
		input.Variants = append(input.Variants, service.ItemVariantInput{
			Label:     v.Label,
			MRP:       v.MRP,
			BasePrice: v.BasePrice,
			IsDefault: v.IsDefault,
		})
	}

	item, err := h.menuService.CreateItem(c.Request.Context(), a, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created", item)
}

// GetItem returns an item with its variants
func (h *MenuHandler) GetItem(c *gin.Context) {
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	item, err := h.menuService.GetItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved", item)
}

// ListItems returns items, optionally filtered by category
func (h *MenuHandler) ListItems(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var categoryID *uuid.UUID
	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		id, err := uuid.Parse(categoryIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid category_id")
			return
		}
		categoryID = &id
	}

	items, err := h.menuService.ListItems(c.Request.Context(), a, categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Items retrieved", items)
}

// CreateModifierGroup adds a modifier group with its options
func (h *MenuHandler) CreateModifierGroup(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateModifierGroupRequest
	if !bindJSON(c, &req) {
		return
	}

	input := &service.CreateModifierGroupInput{
		Name:     req.Name,
		MinSel:   req.MinSel,
		MaxSel:   req.MaxSel,
		Required: req.Required,
	}
	for _, m := range req.Modifiers {
		input.Modifiers = append(input.Modifiers, service.ModifierInput{
			Name:       m.Name,
			PriceDelta: m.PriceDelta,
		})
	}

	group, err := h.menuService.CreateModifierGroup(c.Request.Context(), a, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Modifier group created", group)
}

// ListModifierGroups returns the tenant's modifier groups
func (h *MenuHandler) ListModifierGroups(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	groups, err := h.menuService.ListModifierGroups(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Modifier groups retrieved", groups)
}

// SetStockOut toggles the 86 flag on an item
func (h *MenuHandler) SetStockOut(c *gin.Context) {
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.StockOutRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.menuService.SetStockOut(c.Request.Context(), itemID, *req.StockOut); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item stock flag updated", nil)
}
