package memhost

import (
	"fmt"
	"maps"
	"slices"

	"github.com/encore-anim/encore"
)

// Object is an in-memory scene entity.
type Object struct {
	name  string
	geo   *Geometry
	delta encore.Perturbation
	anim  *encore.CurveSet
	tags  map[string]string
}

// Name implements encore.Entity.
func (o *Object) Name() string { return o.name }

// Geometry returns the geometry data o references. Objects cloned with
// shared geometry return the same pointer.
func (o *Object) Geometry() *Geometry { return o.geo }

// Delta returns o's current delta transform layer.
func (o *Object) Delta() encore.Perturbation { return o.delta }

// Animation returns o's curve set on the given channel, nil when absent.
func (o *Object) Animation(ch encore.Channel) *encore.CurveSet {
	switch ch {
	case encore.Primary:
		return o.anim
	case encore.Deformation:
		if o.geo != nil {
			return o.geo.anim
		}
	}
	return nil
}

// Geometry is shareable geometry data. Deformation-channel animation binds
// here rather than to the object, so every object referencing the same
// geometry shares it.
type Geometry struct {
	anim *encore.CurveSet
}

// Group is an in-memory container.
type Group struct {
	name   string
	tags   map[string]string
	linked bool
}

// Name implements encore.Container.
func (g *Group) Name() string { return g.name }

// Scene is an in-memory encore.Host. The zero value is not usable;
// construct with New.
type Scene struct {
	objects []*Object
	groups  []*Group
	members map[*Group][]*Object
	sets    []*encore.CurveSet
}

var _ encore.Host = (*Scene)(nil)

// New returns an empty scene.
func New() *Scene {
	return &Scene{members: make(map[*Group][]*Object)}
}

// NewObject creates an object with its own fresh geometry and adds it to
// the scene.
func (s *Scene) NewObject(name string) *Object {
	o := &Object{
		name:  name,
		geo:   &Geometry{},
		delta: encore.Neutral(),
		tags:  make(map[string]string),
	}
	s.objects = append(s.objects, o)
	return o
}

// BindAnimation binds set to o on the given channel, replacing any prior
// binding. Deformation sets bind to o's geometry, so objects sharing the
// geometry see the same set. Channels other than Primary and Deformation
// are ignored.
func (s *Scene) BindAnimation(o *Object, ch encore.Channel, set *encore.CurveSet) {
	switch ch {
	case encore.Primary:
		o.anim = set
	case encore.Deformation:
		o.geo.anim = set
	default:
		return
	}
	s.register(set)
}

func (s *Scene) register(set *encore.CurveSet) {
	if set != nil && !slices.Contains(s.sets, set) {
		s.sets = append(s.sets, set)
	}
}

func (s *Scene) object(e encore.Entity) (*Object, error) {
	o, ok := e.(*Object)
	if !ok || o == nil {
		return nil, fmt.Errorf("memhost: foreign entity")
	}
	if !slices.Contains(s.objects, o) {
		return nil, fmt.Errorf("memhost: entity %q is not in the scene", o.name)
	}
	return o, nil
}

func (s *Scene) group(c encore.Container) (*Group, error) {
	g, ok := c.(*Group)
	if !ok || g == nil {
		return nil, fmt.Errorf("memhost: foreign container")
	}
	if _, ok := s.members[g]; !ok {
		return nil, fmt.Errorf("memhost: container %q is not in the scene", g.name)
	}
	return g, nil
}

// CloneEntity implements encore.EntityOps. The clone shares src's geometry
// and references the same curve sets until they are rebound.
func (s *Scene) CloneEntity(src encore.Entity, name string) (encore.Entity, error) {
	o, err := s.object(src)
	if err != nil {
		return nil, err
	}
	dup := &Object{
		name:  name,
		geo:   o.geo,
		delta: o.delta,
		anim:  o.anim,
		tags:  maps.Clone(o.tags),
	}
	s.objects = append(s.objects, dup)
	return dup, nil
}

// CopyGeometry implements encore.EntityOps. The fresh copy starts with the
// same deformation set bound; rebinding through DuplicateCurveSet severs
// that too.
func (s *Scene) CopyGeometry(e encore.Entity) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	o.geo = &Geometry{anim: o.geo.anim}
	return nil
}

// DestroyEntity implements encore.EntityOps.
func (s *Scene) DestroyEntity(e encore.Entity) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	s.objects = slices.DeleteFunc(s.objects, func(x *Object) bool { return x == o })
	for g := range s.members {
		s.members[g] = slices.DeleteFunc(s.members[g], func(x *Object) bool { return x == o })
	}
	return nil
}

// DetachEntity implements encore.EntityOps. The object leaves every group
// but stays in the scene.
func (s *Scene) DetachEntity(e encore.Entity) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	for g := range s.members {
		s.members[g] = slices.DeleteFunc(s.members[g], func(x *Object) bool { return x == o })
	}
	return nil
}

// Entities implements encore.EntityOps. Objects come back in creation
// order.
func (s *Scene) Entities() []encore.Entity {
	out := make([]encore.Entity, len(s.objects))
	for i, o := range s.objects {
		out[i] = o
	}
	return out
}

// SetDelta implements encore.EntityOps.
func (s *Scene) SetDelta(e encore.Entity, p encore.Perturbation) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	o.delta = p
	return nil
}

// CreateContainer implements encore.ContainerOps.
func (s *Scene) CreateContainer(name string) (encore.Container, error) {
	g := &Group{name: name, tags: make(map[string]string), linked: true}
	s.groups = append(s.groups, g)
	s.members[g] = nil
	return g, nil
}

// DestroyContainer implements encore.ContainerOps. Members still in the
// container are destroyed with it; their count is returned.
func (s *Scene) DestroyContainer(c encore.Container) (int, error) {
	g, err := s.group(c)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, o := range slices.Clone(s.members[g]) {
		if s.DestroyEntity(o) == nil {
			n++
		}
	}
	delete(s.members, g)
	s.groups = slices.DeleteFunc(s.groups, func(x *Group) bool { return x == g })
	return n, nil
}

// DetachContainer implements encore.ContainerOps. The group disappears
// from the scene listing but keeps its members, like a collection unlinked
// from a scene hierarchy.
func (s *Scene) DetachContainer(c encore.Container) error {
	g, err := s.group(c)
	if err != nil {
		return err
	}
	g.linked = false
	return nil
}

// MoveEntityExclusive implements encore.ContainerOps.
func (s *Scene) MoveEntityExclusive(e encore.Entity, c encore.Container) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	g, err := s.group(c)
	if err != nil {
		return err
	}
	for x := range s.members {
		s.members[x] = slices.DeleteFunc(s.members[x], func(y *Object) bool { return y == o })
	}
	s.members[g] = append(s.members[g], o)
	return nil
}

// ContainerEntities implements encore.ContainerOps.
func (s *Scene) ContainerEntities(c encore.Container) []encore.Entity {
	g, err := s.group(c)
	if err != nil {
		return nil
	}
	out := make([]encore.Entity, len(s.members[g]))
	for i, o := range s.members[g] {
		out[i] = o
	}
	return out
}

// Containers implements encore.ContainerOps. Detached groups are not
// listed.
func (s *Scene) Containers() []encore.Container {
	var out []encore.Container
	for _, g := range s.groups {
		if g.linked {
			out = append(out, g)
		}
	}
	return out
}

// AnimationSources implements encore.AnimationOps: Primary first, then
// Deformation, absent channels omitted.
func (s *Scene) AnimationSources(e encore.Entity) []encore.BoundSet {
	o, err := s.object(e)
	if err != nil {
		return nil
	}
	var out []encore.BoundSet
	if o.anim != nil {
		out = append(out, encore.BoundSet{Channel: encore.Primary, Set: o.anim})
	}
	if o.geo != nil && o.geo.anim != nil {
		out = append(out, encore.BoundSet{Channel: encore.Deformation, Set: o.geo.anim})
	}
	return out
}

// DuplicateCurveSet implements encore.AnimationOps.
func (s *Scene) DuplicateCurveSet(dst encore.Entity, ch encore.Channel, src *encore.CurveSet, name string) (*encore.CurveSet, error) {
	o, err := s.object(dst)
	if err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("memhost: nil curve set")
	}
	dup := src.Clone()
	dup.Name = name
	switch ch {
	case encore.Primary:
		o.anim = dup
	case encore.Deformation:
		if o.geo == nil {
			return nil, fmt.Errorf("memhost: entity %q has no geometry for deformation animation", o.name)
		}
		o.geo.anim = dup
	default:
		return nil, fmt.Errorf("memhost: invalid channel %v", ch)
	}
	s.register(dup)
	return dup, nil
}

// PurgeUnreferencedCurveSets implements encore.AnimationOps. A set stays
// referenced while a live object binds it on either channel.
func (s *Scene) PurgeUnreferencedCurveSets() int {
	live := make(map[*encore.CurveSet]bool)
	for _, o := range s.objects {
		if o.anim != nil {
			live[o.anim] = true
		}
		if o.geo != nil && o.geo.anim != nil {
			live[o.geo.anim] = true
		}
	}
	kept := s.sets[:0]
	purged := 0
	for _, set := range s.sets {
		if live[set] {
			kept = append(kept, set)
		} else {
			purged++
		}
	}
	s.sets = kept
	return purged
}

// Tag implements encore.TagStore.
func (s *Scene) Tag(e encore.Entity, key string) (string, bool) {
	o, err := s.object(e)
	if err != nil {
		return "", false
	}
	v, ok := o.tags[key]
	return v, ok
}

// SetTag implements encore.TagStore.
func (s *Scene) SetTag(e encore.Entity, key, value string) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	o.tags[key] = value
	return nil
}

// DeleteTag implements encore.TagStore. Deleting an absent tag succeeds.
func (s *Scene) DeleteTag(e encore.Entity, key string) error {
	o, err := s.object(e)
	if err != nil {
		return err
	}
	delete(o.tags, key)
	return nil
}

// ContainerTag implements encore.TagStore.
func (s *Scene) ContainerTag(c encore.Container, key string) (string, bool) {
	g, err := s.group(c)
	if err != nil {
		return "", false
	}
	v, ok := g.tags[key]
	return v, ok
}

// SetContainerTag implements encore.TagStore.
func (s *Scene) SetContainerTag(c encore.Container, key, value string) error {
	g, err := s.group(c)
	if err != nil {
		return err
	}
	g.tags[key] = value
	return nil
}

// DeleteContainerTag implements encore.TagStore. Deleting an absent tag
// succeeds.
func (s *Scene) DeleteContainerTag(c encore.Container, key string) error {
	g, err := s.group(c)
	if err != nil {
		return err
	}
	delete(g.tags, key)
	return nil
}
