package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return conn(ctx, r.db).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := conn(ctx, r.db).First(&ingredient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

func (r *ingredientRepository) List(ctx context.Context, tenantID uuid.UUID) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	err := conn(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&ingredients).Error
	return ingredients, err
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) domainRepo.RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetByItemID(ctx context.Context, itemID uuid.UUID) ([]entity.RecipeBOM, error) {
	var lines []entity.RecipeBOM
	err := conn(ctx, r.db).
		Where("item_id = ?", itemID).
		Find(&lines).Error
	return lines, err
}

func (r *recipeRepository) ReplaceForItem(ctx context.Context, itemID uuid.UUID, lines []entity.RecipeBOM) error {
	db := conn(ctx, r.db)
	if err := db.Delete(&entity.RecipeBOM{}, "item_id = ?", itemID).Error; err != nil {
		return err
	}
	if len(lines) == 0 {
		return nil
	}
	for i := range lines {
		lines[i].ItemID = itemID
	}
	return db.Create(&lines).Error
}

type stockMoveRepository struct {
	db *gorm.DB
}

// NewStockMoveRepository creates a new stock move repository
func NewStockMoveRepository(db *gorm.DB) domainRepo.StockMoveRepository {
	return &stockMoveRepository{db: db}
}

func (r *stockMoveRepository) CreateBatch(ctx context.Context, moves []entity.StockMove) error {
	if len(moves) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&moves).Error
}

func (r *stockMoveRepository) SumForIngredient(ctx context.Context, ingredientID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := conn(ctx, r.db).Model(&entity.StockMove{}).
		Where("ingredient_id = ?", ingredientID).
		Select("COALESCE(SUM(qty_change), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *stockMoveRepository) SumByLineRef(ctx context.Context, lineID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	type row struct {
		IngredientID uuid.UUID
		Total        decimal.Decimal
	}
	var rows []row
	err := conn(ctx, r.db).Model(&entity.StockMove{}).
		Where("ref_line_id = ?", lineID).
		Select("ingredient_id, SUM(qty_change) AS total").
		Group("ingredient_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sums := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, r := range rows {
		sums[r.IngredientID] = r.Total
	}
	return sums, nil
}

func (r *stockMoveRepository) Levels(ctx context.Context, tenantID uuid.UUID) ([]domainRepo.StockLevel, error) {
	var levels []domainRepo.StockLevel
	err := conn(ctx, r.db).Model(&entity.Ingredient{}).
		Select("ingredients.id AS ingredient_id, ingredients.name, ingredients.uom, ingredients.min_level, COALESCE(SUM(stock_moves.qty_change), 0) AS qty").
		Joins("LEFT JOIN stock_moves ON stock_moves.ingredient_id = ingredients.id").
		Where("ingredients.tenant_id = ?", tenantID).
		Group("ingredients.id, ingredients.name, ingredients.uom, ingredients.min_level").
		Order("ingredients.name ASC").
		Scan(&levels).Error
	return levels, err
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return conn(ctx, r.db).Create(purchase).Error
}

func (r *purchaseRepository) CreateLines(ctx context.Context, lines []entity.PurchaseLine) error {
	if len(lines) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&lines).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := conn(ctx, r.db).
		Preload("Lines").
		First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}
