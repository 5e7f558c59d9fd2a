package checks

import (
	"context"

	"better-food-logs/feature/foodlog/catalog"
	"better-food-logs/feature/foodlog/identity"
	"better-food-logs/feature/foodlog/remote"
)

// CatalogReport tells whether the starter foods are present remotely.
type CatalogReport struct {
	Version        string   `json:"version"`
	RemoteFoods    int      `json:"remote_foods"`
	StarterFoods   int      `json:"starter_foods"`
	MissingStarter []string `json:"missing_starter"`
}

// CheckCatalog lists the starter foods absent from the remote foods table,
// matched by content.
func CheckCatalog(ctx context.Context, store remote.Store) (*CatalogReport, error) {
	foods, err := store.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	present := identity.Index(foods)

	starter := catalog.Foods()
	report := &CatalogReport{
		Version:        catalog.Version,
		RemoteFoods:    len(foods),
		StarterFoods:   len(starter),
		MissingStarter: []string{},
	}
	for _, f := range starter {
		if _, ok := present[identity.Signature(f)]; !ok {
			report.MissingStarter = append(report.MissingStarter, f.Name)
		}
	}
	return report, nil
}
