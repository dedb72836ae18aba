package encore

// Entity is a host scene object the core manipulates. Implementations must
// be comparable; the manager uses entities as map keys.
type Entity interface {
	Name() string
}

// Container is a host grouping construct that owns its member entities'
// existence. Implementations must be comparable.
type Container interface {
	Name() string
}

// EntityOps are the entity-level scene operations the core consumes.
type EntityOps interface {
	// CloneEntity duplicates src under the given name. The clone references
	// the same geometry data as src; use CopyGeometry to sever the share.
	CloneEntity(src Entity, name string) (Entity, error)

	// CopyGeometry gives e its own copy of the geometry data it currently
	// shares.
	CopyGeometry(e Entity) error

	// DestroyEntity removes e from the host scene.
	DestroyEntity(e Entity) error

	// DetachEntity unlinks e from every container it belongs to, the
	// fallback path when a plain destroy fails.
	DetachEntity(e Entity) error

	// Entities lists every entity in the scene, in stable order.
	Entities() []Entity

	// SetDelta replaces e's non-destructive delta transform layer.
	SetDelta(e Entity, p Perturbation) error
}

// ContainerOps are the grouping operations the core consumes.
type ContainerOps interface {
	CreateContainer(name string) (Container, error)

	// DestroyContainer removes c together with any entities still inside
	// it, returning how many entities went down with it.
	DestroyContainer(c Container) (int, error)

	// DetachContainer unlinks c from the scene, the fallback path when a
	// plain destroy fails.
	DetachContainer(c Container) error

	// MoveEntityExclusive places e in c, removing it from every other
	// container first.
	MoveEntityExclusive(e Entity, c Container) error

	// ContainerEntities lists c's members in stable order.
	ContainerEntities(c Container) []Entity

	// Containers lists every container in the scene, in stable order.
	Containers() []Container
}

// AnimationOps expose the host's animation bindings.
type AnimationOps interface {
	// AnimationSources returns the curve sets animating e: Primary first,
	// then Deformation; absent channels are omitted.
	AnimationSources(e Entity) []BoundSet

	// DuplicateCurveSet deep-copies src under the given name and binds the
	// copy to dst on channel ch. Deformation sets bind to dst's geometry
	// data, so entities sharing geometry share the set.
	DuplicateCurveSet(dst Entity, ch Channel, src *CurveSet, name string) (*CurveSet, error)

	// PurgeUnreferencedCurveSets drops curve sets no longer bound to any
	// entity or geometry, returning how many were removed.
	PurgeUnreferencedCurveSets() int
}

// TagStore is the host's per-object key/value metadata. Tags are the only
// durable state the core writes; hosts must carry them through their own
// save/load unchanged. Deleting an absent tag is not an error.
type TagStore interface {
	Tag(e Entity, key string) (string, bool)
	SetTag(e Entity, key, value string) error
	DeleteTag(e Entity, key string) error

	ContainerTag(c Container, key string) (string, bool)
	SetContainerTag(c Container, key, value string) error
	DeleteContainerTag(c Container, key string) error
}

// Host bundles everything the core needs from a scene graph. The memhost
// package provides a complete in-memory implementation.
type Host interface {
	EntityOps
	ContainerOps
	AnimationOps
	TagStore
}
