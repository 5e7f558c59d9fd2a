package catalog

import (
	"context"

	"better-food-logs/feature/foodlog/identity"
	"better-food-logs/feature/foodlog/local"
	"better-food-logs/feature/foodlog/models"
	"better-food-logs/feature/foodlog/remote"

	"github.com/google/uuid"
)

// Version identifies the starter list. Bumping it reseeds local stores.
const Version = "v1"

// Foods returns a fresh copy of the starter list. Ids are empty.
func Foods() []models.Food {
	g := models.Float
	return []models.Food{
		{Name: "Banana", ServingDescription: "1 medium", ServingMassG: g(118), Calories: 105, ProteinG: 1.3, FatG: 0.4, CarbsG: 27, SugarG: 14, SodiumMg: 1},
		{Name: "Apple", ServingDescription: "1 medium", ServingMassG: g(182), Calories: 95, ProteinG: 0.5, FatG: 0.3, CarbsG: 25, SugarG: 19, SodiumMg: 2},
		{Name: "Large Egg", ServingDescription: "1 egg", ServingMassG: g(50), Calories: 72, ProteinG: 6.3, FatG: 4.8, CarbsG: 0.4, SugarG: 0.2, SodiumMg: 71, CholesterolMg: 186},
		{Name: "Greek Yogurt", BrandName: "Chobani", ServingDescription: "1 container (5.3 oz)", ServingMassG: g(150), Calories: 90, ProteinG: 15, CarbsG: 6, SugarG: 4, SodiumMg: 55, CholesterolMg: 10},
		{Name: "Whole Milk", ServingDescription: "1 cup", ServingVolumeMl: g(240), Calories: 149, ProteinG: 7.7, FatG: 7.9, CarbsG: 11.7, SugarG: 12.3, SodiumMg: 105, CholesterolMg: 24},
		{Name: "Orange Juice", ServingDescription: "1 cup", ServingVolumeMl: g(248), Calories: 112, ProteinG: 1.7, FatG: 0.5, CarbsG: 25.8, SugarG: 20.8, SodiumMg: 2},
		{Name: "Rolled Oats", ServingDescription: "1/2 cup dry", ServingMassG: g(40), Calories: 150, ProteinG: 5, FatG: 3, CarbsG: 27, SugarG: 1},
		{Name: "White Rice", ServingDescription: "1 cup cooked", ServingMassG: g(158), Calories: 205, ProteinG: 4.3, FatG: 0.4, CarbsG: 44.5, SodiumMg: 2},
		{Name: "Chicken Breast", ServingDescription: "4 oz cooked", ServingMassG: g(113), Calories: 187, ProteinG: 35, FatG: 4, SodiumMg: 84, CholesterolMg: 96},
		{Name: "Peanut Butter", ServingDescription: "2 tbsp", ServingMassG: g(32), Calories: 190, ProteinG: 7, FatG: 16, CarbsG: 7, SugarG: 3, SodiumMg: 140},
		{Name: "Whole Wheat Bread", ServingDescription: "1 slice", ServingMassG: g(28), Calories: 69, ProteinG: 3.6, FatG: 0.9, CarbsG: 11.6, SugarG: 1.6, SodiumMg: 132},
		{Name: "Broccoli", ServingDescription: "1 cup chopped", ServingMassG: g(91), Calories: 31, ProteinG: 2.5, FatG: 0.3, CarbsG: 6, SugarG: 1.5, SodiumMg: 30},
		{Name: "Cheddar Cheese", ServingDescription: "1 oz", ServingMassG: g(28), Calories: 113, ProteinG: 7, FatG: 9.3, CarbsG: 0.4, SugarG: 0.1, SodiumMg: 180, CholesterolMg: 29},
		{Name: "Black Coffee", ServingDescription: "1 cup brewed", ServingVolumeMl: g(237), Calories: 2, ProteinG: 0.3, SodiumMg: 5},
	}
}

// EnsureLocal seeds store when it holds no foods or an older catalog
// version. Existing foods matching a starter entry keep their id so local
// logs stay resolvable, and foods the user created are kept. It reports
// whether the list was rewritten.
func EnsureLocal(ctx context.Context, store *local.Store) (bool, error) {
	existing, err := store.Foods(ctx)
	if err != nil {
		return false, err
	}
	version, err := store.SeedVersion(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 && version == Version {
		return false, nil
	}

	ids := identity.Index(existing)
	starter := Foods()
	seeded := make(map[string]struct{}, len(starter))
	merged := make([]models.Food, 0, len(starter)+len(existing))
	for _, f := range starter {
		sig := identity.Signature(f)
		seeded[sig] = struct{}{}
		if id, ok := ids[sig]; ok {
			f.ID = id
		} else {
			f.ID = uuid.NewString()
		}
		merged = append(merged, f)
	}
	for _, f := range existing {
		if _, ok := seeded[identity.Signature(f)]; !ok {
			merged = append(merged, f)
		}
	}

	if err := store.SaveFoods(ctx, merged); err != nil {
		return false, err
	}
	if err := store.SetSeedVersion(ctx, Version); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureRemote inserts the starter list when the remote foods table is
// empty and returns the number of inserted foods.
func EnsureRemote(ctx context.Context, store remote.Store) (int, error) {
	n, err := store.CountFoods(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	inserted, err := store.InsertFoods(ctx, Foods())
	if err != nil {
		return 0, err
	}
	return len(inserted), nil
}
