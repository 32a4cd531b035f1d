package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/resto-next/internal/constants"
	"github.com/resto-next/internal/models"
)

func TestCartScenarioTotalsThousand(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	productA := f.createProduct(t, "Pizza Margherita", 200, true)
	mealB := f.createMeal(t, "Burger Maison", 500, true)
	ingredientI := f.createIngredient(t, "Cheddar", 50, true)

	if _, err := f.cart.AddProduct("s1", productA.ID, 2); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	summary, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: mealB.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: ingredientI.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("add customized meal failed: %v", err)
	}
	if summary.Total.String() != "1000.00" || summary.Count != 2 {
		t.Fatalf("want total 1000.00 count 2, got %s %d", summary.Total, summary.Count)
	}

	cart := f.cartFor(t, "s1")
	total, err := f.cart.GetTotal(cart)
	if err != nil {
		t.Fatalf("get total failed: %v", err)
	}
	if !total.Equal(mustMoney(t, "1000")) {
		t.Fatalf("want 1000 got %s", total)
	}
	count, err := f.cart.GetLineCount(cart)
	if err != nil || count != 2 {
		t.Fatalf("want 2 lines got %d err=%v", count, err)
	}
}

func TestCartAddProductMergesQuantity(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	product := f.createProduct(t, "Tacos", 350, true)

	if _, err := f.cart.AddProduct("s1", product.ID, 1); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	summary, err := f.cart.AddProduct("s1", product.ID, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if summary.Count != 1 {
		t.Fatalf("same product should stay on one line, got %d lines", summary.Count)
	}
	if summary.Total.String() != "1400.00" {
		t.Fatalf("want 1400.00 got %s", summary.Total)
	}
	detail, err := f.cart.GetCartDetail("s1")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 4 || detail.Items[0].Name != "Tacos" {
		t.Fatalf("unexpected detail %+v", detail.Items)
	}
}

func TestCartAddProductRejectsInvalidInput(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	unavailable := f.createProduct(t, "Couscous", 900, false)

	if _, err := f.cart.AddProduct("s1", unavailable.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("want ErrInvalidQuantity got %v", err)
	}
	if _, err := f.cart.AddProduct("s1", unavailable.ID, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("want ErrProductNotAvailable got %v", err)
	}
	if _, err := f.cart.AddProduct("s1", 99999, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("missing product want ErrProductNotAvailable got %v", err)
	}
	if _, err := f.cart.AddProduct("", unavailable.ID, 1); !errors.Is(err, ErrSessionKeyRequired) {
		t.Fatalf("want ErrSessionKeyRequired got %v", err)
	}
}

func TestCartCustomizedMealAlwaysNewLine(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	meal := f.createMeal(t, "Bowl", 400, true)
	ingredient := f.createIngredient(t, "Avocat", 120, true)

	input := AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      2,
		Selections: []IngredientSelection{
			{IngredientID: ingredient.ID, Quantity: 1},
			{IngredientID: ingredient.ID, Quantity: 0},
		},
		Notes: "  sans oignon ",
	}
	if _, err := f.cart.AddCustomizedMeal("s1", input); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	summary, err := f.cart.AddCustomizedMeal("s1", input)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if summary.Count != 2 {
		t.Fatalf("customized meals should never merge, got %d lines", summary.Count)
	}
	// (400 + 120) * 2 per line
	if summary.Total.String() != "2080.00" {
		t.Fatalf("want 2080.00 got %s", summary.Total)
	}
	detail, err := f.cart.GetCartDetail("s1")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.SpecialMeals) != 2 || detail.SpecialMeals[0].Notes != "sans oignon" {
		t.Fatalf("unexpected meal lines %+v", detail.SpecialMeals)
	}
	if len(detail.SpecialMeals[0].Ingredients) != 1 || detail.SpecialMeals[0].Ingredients[0].Name != "Avocat" {
		t.Fatalf("zero-quantity selections should be skipped, got %+v", detail.SpecialMeals[0].Ingredients)
	}
}

func TestCartCustomizedMealRollsBackOnIngredientFailure(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	meal := f.createMeal(t, "Bowl", 400, true)
	good := f.createIngredient(t, "Riz", 30, true)
	disabled := f.createIngredient(t, "Truffe", 900, false)

	_, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections: []IngredientSelection{
			{IngredientID: good.ID, Quantity: 1},
			{IngredientID: disabled.ID, Quantity: 1},
		},
	})
	if !errors.Is(err, ErrIngredientNotAvailable) {
		t.Fatalf("want ErrIngredientNotAvailable got %v", err)
	}
	var lines, selections int64
	f.db.Model(&models.CartSpecialMeal{}).Count(&lines)
	f.db.Model(&models.CartSpecialMealIngredient{}).Count(&selections)
	if lines != 0 || selections != 0 {
		t.Fatalf("failed insert must leave nothing behind, lines=%d selections=%d", lines, selections)
	}

	_, err = f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: good.ID, Quantity: -1}},
	})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("negative selection want ErrInvalidSelection got %v", err)
	}

	unavailableMeal := f.createMeal(t, "Off", 100, false)
	_, err = f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{SpecialMealID: unavailableMeal.ID, Quantity: 1})
	if !errors.Is(err, ErrSpecialMealNotAvailable) {
		t.Fatalf("want ErrSpecialMealNotAvailable got %v", err)
	}
}

func TestCartIngredientLimitsWhenEnforced(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{EnforceIngredientLimits: true})
	meal := f.createMeal(t, "Burger", 500, true)
	cheese := f.createIngredient(t, "Cheddar", 50, true)
	bacon := f.createIngredient(t, "Bacon", 80, true)
	f.linkIngredient(t, meal.ID, cheese.ID, 2)

	_, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: cheese.ID, Quantity: 3}},
	})
	if !errors.Is(err, ErrIngredientLimitExceeded) {
		t.Fatalf("want ErrIngredientLimitExceeded got %v", err)
	}
	_, err = f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: bacon.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrIngredientNotAllowed) {
		t.Fatalf("want ErrIngredientNotAllowed got %v", err)
	}
	if _, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: cheese.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("selection within limit should succeed: %v", err)
	}
}

func TestCartIngredientLimitsNotEnforcedByDefault(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	meal := f.createMeal(t, "Burger", 500, true)
	bacon := f.createIngredient(t, "Bacon", 80, true)

	summary, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: bacon.ID, Quantity: 9}},
	})
	if err != nil {
		t.Fatalf("unlinked ingredient should be accepted when limits are off: %v", err)
	}
	if summary.Total.String() != "1220.00" {
		t.Fatalf("want 1220.00 got %s", summary.Total)
	}
}

func TestCartUpdateLineQuantity(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	product := f.createProduct(t, "Salade", 250, true)
	meal := f.createMeal(t, "Wrap", 300, true)
	sauce := f.createIngredient(t, "Harissa", 20, true)

	if _, err := f.cart.AddProduct("s1", product.ID, 1); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if _, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: sauce.ID, Quantity: 2}},
	}); err != nil {
		t.Fatalf("add meal failed: %v", err)
	}
	detail, _ := f.cart.GetCartDetail("s1")
	itemID := detail.Items[0].ID
	mealLineID := detail.SpecialMeals[0].ID

	for _, quantity := range []int{0, -3} {
		if _, err := f.cart.UpdateLineQuantity("s1", itemID, constants.LineTypeProduct, quantity); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d want ErrInvalidQuantity got %v", quantity, err)
		}
	}
	unchanged, _ := f.cart.GetCartDetail("s1")
	if unchanged.Items[0].Quantity != 1 {
		t.Fatalf("rejected update must leave the line unchanged")
	}

	// 价格变动后更新数量按当前价格重算
	f.db.Model(&models.Ingredient{}).Where("id = ?", sauce.ID).Update("price", models.NewMoneyFromInt(30))
	summary, err := f.cart.UpdateLineQuantity("s1", mealLineID, constants.LineTypeSpecialMeal, 3)
	if err != nil {
		t.Fatalf("update meal line failed: %v", err)
	}
	// 250 + (300 + 30*2) * 3
	if summary.Total.String() != "1330.00" {
		t.Fatalf("want 1330.00 got %s", summary.Total)
	}
	summary, err = f.cart.UpdateLineQuantity("s1", itemID, constants.LineTypeProduct, 2)
	if err != nil {
		t.Fatalf("update product line failed: %v", err)
	}
	if summary.Total.String() != "1580.00" {
		t.Fatalf("want 1580.00 got %s", summary.Total)
	}

	if _, err := f.cart.UpdateLineQuantity("s1", itemID, "drink", 2); !errors.Is(err, ErrInvalidLineType) {
		t.Fatalf("want ErrInvalidLineType got %v", err)
	}
	if _, err := f.cart.UpdateLineQuantity("s1", 4242, constants.LineTypeProduct, 2); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("want ErrCartLineNotFound got %v", err)
	}
	if _, err := f.cart.UpdateLineQuantity("other", itemID, constants.LineTypeProduct, 2); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("another session must not update this line, got %v", err)
	}
}

func TestCartRemoveLine(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	product := f.createProduct(t, "Soupe", 150, true)
	meal := f.createMeal(t, "Plat du jour", 650, true)
	ingredient := f.createIngredient(t, "Frites", 100, true)

	if _, err := f.cart.AddProduct("s1", product.ID, 2); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if _, err := f.cart.AddCustomizedMeal("s1", AddCustomizedMealInput{
		SpecialMealID: meal.ID,
		Quantity:      1,
		Selections:    []IngredientSelection{{IngredientID: ingredient.ID, Quantity: 1}},
	}); err != nil {
		t.Fatalf("add meal failed: %v", err)
	}
	detail, _ := f.cart.GetCartDetail("s1")

	summary, err := f.cart.RemoveLine("s1", 98765, constants.LineTypeProduct)
	if err != nil {
		t.Fatalf("removing unknown line should be a no-op: %v", err)
	}
	if summary.Count != 2 || summary.Total.String() != "1050.00" {
		t.Fatalf("no-op remove changed the cart: %+v", summary)
	}

	summary, err = f.cart.RemoveLine("s1", detail.SpecialMeals[0].ID, constants.LineTypeSpecialMeal)
	if err != nil {
		t.Fatalf("remove meal line failed: %v", err)
	}
	if summary.Count != 1 || summary.Total.String() != "300.00" {
		t.Fatalf("unexpected summary after remove %+v", summary)
	}
	var selections int64
	f.db.Model(&models.CartSpecialMealIngredient{}).Count(&selections)
	if selections != 0 {
		t.Fatalf("selections must be removed with their line, got %d", selections)
	}

	summary, err = f.cart.RemoveLine("unknown-session", 1, constants.LineTypeProduct)
	if err != nil || summary.Count != 0 {
		t.Fatalf("remove on missing cart should be a no-op, summary=%+v err=%v", summary, err)
	}
}

func TestCartConcurrentAddsSerialized(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	product := f.createProduct(t, "Café", 100, true)

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.cart.AddProduct("s1", product.ID, 1); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent add failed: %v", err)
	}

	detail, err := f.cart.GetCartDetail("s1")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if len(detail.Items) != 1 || detail.Items[0].Quantity != 10 {
		t.Fatalf("want one line with quantity 10, got %+v", detail.Items)
	}
	if detail.Total.String() != "1000.00" {
		t.Fatalf("want 1000.00 got %s", detail.Total)
	}
}

func TestCartDetailWithoutCartIsEmpty(t *testing.T) {
	f := setupServiceTest(t, CartServiceOptions{})
	detail, err := f.cart.GetCartDetail("nobody")
	if err != nil {
		t.Fatalf("get detail failed: %v", err)
	}
	if detail.Count != 0 || len(detail.Items) != 0 || detail.Total.String() != "0.00" {
		t.Fatalf("unexpected empty detail %+v", detail)
	}
	var carts int64
	f.db.Model(&models.Cart{}).Count(&carts)
	if carts != 0 {
		t.Fatalf("reading the cart must not create one")
	}
}

func TestNormalizeSelections(t *testing.T) {
	got, err := normalizeSelections([]IngredientSelection{
		{IngredientID: 1, Quantity: 1},
		{IngredientID: 2, Quantity: 0},
		{IngredientID: 1, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 3 {
		t.Fatalf("unexpected normalized selections %+v", got)
	}
	if _, err := normalizeSelections([]IngredientSelection{{IngredientID: 0, Quantity: 1}}); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("zero ingredient id want ErrInvalidSelection got %v", err)
	}
}

func TestSpecialMealUnitPrice(t *testing.T) {
	unit := specialMealUnitPrice(models.NewMoneyFromInt(500), []pricedSelection{
		{UnitPrice: models.NewMoneyFromInt(50), Quantity: 2},
		{UnitPrice: mustMoney(t, "12.50"), Quantity: 1},
	})
	if unit.String() != "612.50" {
		t.Fatalf("want 612.50 got %s", unit)
	}
}
