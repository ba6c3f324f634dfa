package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

func TestSaleMoves(t *testing.T) {
	orderID := uuid.New()
	lineID := uuid.New()
	rice := uuid.New()
	dal := uuid.New()

	// thali recipe: 150g rice, 20g dal, sold twice
	components := []RecipeComponent{
		{IngredientID: rice, QtyPerUnit: d("150")},
		{IngredientID: dal, QtyPerUnit: d("20")},
	}

	moves := SaleMoves(orderID, lineID, decimal.NewFromInt(2), components)
	if len(moves) != 2 {
		t.Fatalf("got %d moves, want 2", len(moves))
	}

	wantQty := map[uuid.UUID]string{rice: "-300", dal: "-40"}
	for _, m := range moves {
		if m.Type != enum.StockSale {
			t.Errorf("move type = %s, want SALE", m.Type)
		}
		if !m.QtyChange.Equal(d(wantQty[m.IngredientID])) {
			t.Errorf("ingredient %s qty = %s, want %s", m.IngredientID, m.QtyChange, wantQty[m.IngredientID])
		}
		if m.RefOrderID == nil || *m.RefOrderID != orderID {
			t.Error("move missing order ref")
		}
		if m.RefLineID == nil || *m.RefLineID != lineID {
			t.Error("move missing line ref")
		}
	}
}

func TestReversalMovesNetZero(t *testing.T) {
	orderID := uuid.New()
	lineID := uuid.New()
	rice := uuid.New()
	dal := uuid.New()

	components := []RecipeComponent{
		{IngredientID: rice, QtyPerUnit: d("150")},
		{IngredientID: dal, QtyPerUnit: d("20")},
	}
	qty := decimal.NewFromInt(2)

	sales := SaleMoves(orderID, lineID, qty, components)
	reversals := ReversalMoves(orderID, lineID, qty, components, "line removed")

	net := make(map[uuid.UUID]decimal.Decimal)
	for _, m := range sales {
		net[m.IngredientID] = net[m.IngredientID].Add(m.QtyChange)
	}
	for _, m := range reversals {
		if m.Type != enum.StockAdjust {
			t.Errorf("reversal type = %s, want ADJUST", m.Type)
		}
		if m.Reason != "line removed" {
			t.Errorf("reversal reason = %q", m.Reason)
		}
		net[m.IngredientID] = net[m.IngredientID].Add(m.QtyChange)
	}

	for id, sum := range net {
		if !sum.IsZero() {
			t.Errorf("ingredient %s nets to %s after reversal, want 0", id, sum)
		}
	}
}

func TestSaleMovesFractionalQty(t *testing.T) {
	// 0.5 portions of 333g rounds to the 3-decimal stock grid
	moves := SaleMoves(uuid.New(), uuid.New(), d("0.5"), []RecipeComponent{
		{IngredientID: uuid.New(), QtyPerUnit: d("333.333")},
	})
	if len(moves) != 1 {
		t.Fatalf("got %d moves, want 1", len(moves))
	}
	if !moves[0].QtyChange.Equal(d("-166.667")) {
		t.Errorf("qty = %s, want -166.667", moves[0].QtyChange)
	}
}

func TestSaleMovesEmptyRecipe(t *testing.T) {
	if moves := SaleMoves(uuid.New(), uuid.New(), decimal.NewFromInt(3), nil); len(moves) != 0 {
		t.Errorf("got %d moves for empty recipe, want 0", len(moves))
	}
}
