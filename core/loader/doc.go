// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its routes on
// the Fiber router it is handed. The Manager keeps the registry and loads the
// enabled features in registration order.
//
//	mgr := loader.NewManager()
//	mgr.Register(foodlog.NewFeature(svc, logger))
//	loaded, err := mgr.LoadAll(app)
package loader
