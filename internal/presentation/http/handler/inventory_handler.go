package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles ingredient, purchase and stock HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// CreateIngredient registers a raw material
func (h *InventoryHandler) CreateIngredient(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateIngredientRequest
	if !bindJSON(c, &req) {
		return
	}

	ingredient, err := h.inventoryService.CreateIngredient(c.Request.Context(), a, &service.CreateIngredientInput{
		Name:     req.Name,
		UOM:      req.UOM,
		MinLevel: req.MinLevel,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Ingredient created", ingredient)
}

// ListIngredients returns the tenant's raw materials
func (h *InventoryHandler) ListIngredients(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	ingredients, err := h.inventoryService.ListIngredients(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ingredients retrieved", ingredients)
}

// ReceivePurchase records a goods receipt with its stock ledger entries
func (h *InventoryHandler) ReceivePurchase(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.ReceivePurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	input := &service.ReceivePurchaseInput{
		Supplier: req.Supplier,
		Note:     req.Note,
		Lines:    make([]service.PurchaseLineInput, 0, len(req.Lines)),
	}
	for _, l := range req.Lines {
		input.Lines = append(input.Lines, service.PurchaseLineInput{
			IngredientID: l.IngredientID,
			Qty:          l.Qty,
			UnitCost:     l.UnitCost,
		})
	}

	purchase, err := h.inventoryService.ReceivePurchase(c.Request.Context(), a, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase received", purchase)
}

// RecordWastage writes off spoiled stock
func (h *InventoryHandler) RecordWastage(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.WastageRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.inventoryService.RecordWastage(c.Request.Context(), a, req.IngredientID, req.Qty, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Wastage recorded", nil)
}

// UpsertRecipe replaces a menu item's bill of materials
func (h *InventoryHandler) UpsertRecipe(c *gin.Context) {
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpsertRecipeRequest
	if !bindJSON(c, &req) {
		return
	}

	lines := make([]service.RecipeLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, service.RecipeLineInput{
			IngredientID: l.IngredientID,
			Qty:          l.Qty,
		})
	}

	if err := h.inventoryService.UpsertRecipe(c.Request.Context(), itemID, lines); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recipe updated", nil)
}

// StockLevels returns current on-hand quantities per ingredient
func (h *InventoryHandler) StockLevels(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	levels, err := h.inventoryService.StockLevels(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock levels retrieved", levels)
}

// LowStock returns ingredients at or below their minimum level
func (h *InventoryHandler) LowStock(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	levels, err := h.inventoryService.LowStock(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock retrieved", levels)
}
