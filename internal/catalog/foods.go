package catalog

import "github.com/jonathan/health-planner/internal/types"

// Foods returns the full static food catalog in canonical order.
func Foods() []types.Food {
	return foodCatalog
}

var foodCatalog = []types.Food{
	{ID: "oats_steelcut", Name: "Steel-Cut Oats", GlycemicIndex: 52, Category: "grain", Tags: []string{"breakfast", "fiber"}},
	{ID: "rice_white", Name: "White Rice", GlycemicIndex: 73, Category: "grain"},
	{ID: "rice_brown", Name: "Brown Rice", GlycemicIndex: 68, Category: "grain", Tags: []string{"fiber"}},
	{ID: "quinoa", Name: "Quinoa", GlycemicIndex: 53, Category: "grain", Tags: []string{"protein"}},
	{ID: "bread_white", Name: "White Bread", GlycemicIndex: 75, Category: "grain"},
	{ID: "bread_whole", Name: "Whole Grain Bread", GlycemicIndex: 53, Category: "grain", Allergens: []string{"gluten"}, Tags: []string{"fiber"}},
	{ID: "potato_baked", Name: "Baked Potato", GlycemicIndex: 85, Category: "vegetable"},
	{ID: "sweet_potato", Name: "Sweet Potato", GlycemicIndex: 63, Category: "vegetable"},
	{ID: "lentils", Name: "Lentils", GlycemicIndex: 32, Category: "legume", Tags: []string{"protein", "fiber"}},
	{ID: "chickpeas", Name: "Chickpeas", GlycemicIndex: 28, Category: "legume", Tags: []string{"protein", "fiber"}},
	{ID: "salmon_grilled", Name: "Grilled Salmon", GlycemicIndex: 0, Category: "protein", Allergens: []string{"fish"}, Tags: []string{"omega-3"}},
	{ID: "chicken_breast", Name: "Chicken Breast", GlycemicIndex: 0, Category: "protein", Tags: []string{"lean"}},
	{ID: "tofu_firm", Name: "Firm Tofu", GlycemicIndex: 15, Category: "protein", Allergens: []string{"soy"}},
	{ID: "egg_boiled", Name: "Boiled Egg", GlycemicIndex: 0, Category: "protein", Allergens: []string{"egg"}},
	{ID: "shrimp_steamed", Name: "Steamed Shrimp", GlycemicIndex: 0, Category: "protein", Allergens: []string{"shellfish"}, PurineRich: true},
	{ID: "beef_liver", Name: "Beef Liver", GlycemicIndex: 0, Category: "protein", PurineRich: true, Tags: []string{"organ meat"}},
	{ID: "sardines_canned", Name: "Canned Sardines", GlycemicIndex: 0, Category: "protein", Allergens: []string{"fish"}, PurineRich: true},
	{ID: "spinach", Name: "Spinach", GlycemicIndex: 15, Category: "vegetable", Tags: []string{"leafy-green"}},
	{ID: "broccoli", Name: "Broccoli", GlycemicIndex: 15, Category: "vegetable", Tags: []string{"fiber"}},
	{ID: "apple", Name: "Apple", GlycemicIndex: 36, Category: "fruit"},
	{ID: "banana_ripe", Name: "Ripe Banana", GlycemicIndex: 62, Category: "fruit"},
	{ID: "watermelon", Name: "Watermelon", GlycemicIndex: 76, Category: "fruit"},
	{ID: "berries_mixed", Name: "Mixed Berries", GlycemicIndex: 25, Category: "fruit", Tags: []string{"antioxidant"}},
	{ID: "yogurt_plain", Name: "Plain Yogurt", GlycemicIndex: 35, Category: "dairy", Allergens: []string{"milk"}},
	{ID: "milk_whole", Name: "Whole Milk", GlycemicIndex: 39, Category: "dairy", Allergens: []string{"milk"}},
	{ID: "almonds", Name: "Almonds", GlycemicIndex: 15, Category: "snack", Allergens: []string{"tree-nut"}, Tags: []string{"healthy-fat"}},
	{ID: "walnuts", Name: "Walnuts", GlycemicIndex: 15, Category: "snack", Allergens: []string{"tree-nut"}, Tags: []string{"omega-3"}},
}
