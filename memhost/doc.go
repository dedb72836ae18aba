// Package memhost provides a complete in-memory [encore.Host] for tests,
// examples, and embedders that have no scene graph of their own.
//
// A [Scene] models the minimum a real host exposes to the core:
//
//   - [Object] entities carrying a name, tags, a delta transform layer and
//     an optional Primary-channel curve set.
//
//   - Shareable [Geometry] that Deformation-channel curve sets bind to, so
//     objects sharing geometry share deformation timing exactly like
//     instanced geometry in a real scene.
//
//   - [Group] containers with exclusive membership semantics.
//
// # Usage
//
//	s := memhost.New()
//	src := s.NewObject("walker")
//	s.BindAnimation(src, encore.Primary, set)
//	m, _ := encore.NewManager(encore.ManagerConfig{Host: s})
//	res, _ := m.Recreate(src, encore.DefaultRecreateConfig())
package memhost
