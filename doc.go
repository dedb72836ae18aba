// Package encore manipulates animation curves to stage time-shifted
// duplicates of an animated entity, extend motion cyclically beyond the
// keyed range, and repeat a sub-range of a curve with value transforms.
//
// encore is host-agnostic: scene objects are reached only through the Host
// interface bundle, with a complete in-memory implementation in the
// encore/memhost subpackage. The Manager drives the duplicate-group
// lifecycle (Recreate, RepeatRange, Finish); Shift, ConfigureCycles and
// Evaluate operate on bare curves.
//
// Basic usage:
//
//	h := memhost.New()
//	m, err := encore.NewManager(encore.ManagerConfig{Host: h})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := m.Recreate(source, encore.DefaultRecreateConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary())
package encore
