package encore

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// Host is the scene graph the manager operates on. Required.
	Host Host

	// Logger receives teardown warnings. Nil → slog.Default() with a
	// component attribute.
	Logger *slog.Logger

	// Seed for the perturbation generator. Zero → time-seeded.
	Seed int64
}

// Manager orchestrates duplicate groups on a host scene: recreate-on-rerun
// duplication, cycle configuration, randomized perturbation, group
// teardown and release. It is not safe for concurrent use.
type Manager struct {
	host   Host
	logger *slog.Logger
	rng    *rand.Rand

	// Write-through caches over the durable tag state, repopulated lazily
	// from host scans after a reload.
	groups map[string]Container // group id → container
	tags   map[Entity]TagRecord
}

// NewManager creates a Manager from the given config.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.Host == nil {
		return nil, fmt.Errorf("encore: manager requires a host")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "encore")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Manager{
		host:   cfg.Host,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		groups: make(map[string]Container),
		tags:   make(map[Entity]TagRecord),
	}, nil
}

// RecreateConfig configures one Recreate call.
// Zero values are conservative; see DefaultRecreateConfig for the usual
// starting point.
type RecreateConfig struct {
	Copies          int              `json:"copies"`            // number of duplicates, >= 1
	FrameOffset     float64          `json:"frame_offset"`      // per-duplicate time shift, scaled by index
	ShareGeometry   bool             `json:"share_geometry"`    // duplicates reference the source geometry
	Cycle           CycleConfig      `json:"cycle"`             // applied to every duplicated curve set
	ApplyToOriginal bool             `json:"apply_to_original"` // also configure the source's own sets
	Randomize       bool             `json:"randomize"`         // draw per-duplicate perturbations
	Perturbation    PerturbationSpec `json:"perturbation"`      // bounds for Randomize draws
}

// DefaultRecreateConfig mirrors the usual host-side defaults: five
// duplicates ten frames apart sharing geometry, motion repeated after the
// keyed range.
func DefaultRecreateConfig() RecreateConfig {
	return RecreateConfig{
		Copies:        5,
		FrameOffset:   10,
		ShareGeometry: true,
		Cycle:         DefaultCycleConfig(),
		Perturbation:  DefaultPerturbationSpec(),
	}
}

// Duplicate describes one created group member.
type Duplicate struct {
	Index  int
	Entity Entity
	Sets   []BoundSet
}

// RecreateResult reports one Recreate run.
type RecreateResult struct {
	GroupID   string
	Container Container
	Destroyed int         // previous-generation entities removed
	Created   int         // duplicates created
	Members   []Duplicate // the new generation, in index order
	Notes     []string    // informational policy notes
	Purged    int         // orphaned curve sets reclaimed during teardown

	// CleanupFailed names previous-generation objects that survived both
	// removal attempts. CleanupErr wraps ErrResourceCleanup when the list
	// is non-empty; it rides in the result rather than failing the run.
	CleanupFailed []string
	CleanupErr    error
}

// Summary returns the human-readable report line for the run.
func (r RecreateResult) Summary() string {
	name := ""
	if r.Container != nil {
		name = r.Container.Name()
	}
	msg := fmt.Sprintf("Deleted %d old duplicates. Created %d new duplicates in '%s'.", r.Destroyed, r.Created, name)
	for _, note := range r.Notes {
		msg += " " + note
	}
	if n := len(r.CleanupFailed); n > 0 {
		msg += fmt.Sprintf(" %d stale objects could not be removed.", n)
	}
	return msg
}

// Recreate rebuilds the duplicate group for source from scratch: any
// previous generation is torn down, then cfg.Copies clones are created,
// each with its own copies of the source's curve sets shifted by
// cfg.FrameOffset times its index (plus jitter when randomizing) and
// configured with cfg.Cycle.
//
// The first call stamps a group id on source; reruns resolve the same id,
// which is what makes the teardown find exactly the stale generation.
// Teardown is best effort: objects resisting both removal paths are
// skipped, named in RecreateResult.CleanupFailed and aggregated under
// ErrResourceCleanup in CleanupErr, and the run continues. A host error
// during rebuild aborts with the partial result; the next Recreate cleans
// up whatever was left behind.
func (m *Manager) Recreate(source Entity, cfg RecreateConfig) (RecreateResult, error) {
	var res RecreateResult
	if source == nil {
		return res, ErrNoActiveEntity
	}
	if cfg.Copies < 1 {
		return res, fmt.Errorf("encore: copies %d, need at least 1", cfg.Copies)
	}
	sources := m.host.AnimationSources(source)
	if len(sources) == 0 {
		return res, fmt.Errorf("%w: %s", ErrNoAnimation, source.Name())
	}

	gid, err := m.ensureGroup(source)
	if err != nil {
		return res, err
	}
	res.GroupID = gid

	// Tear down the previous generation, then reclaim orphaned clips.
	if old := m.findContainer(gid); old != nil {
		res.Destroyed, res.CleanupFailed = m.teardown(old)
		delete(m.groups, gid)
	}
	res.Purged = m.host.PurgeUnreferencedCurveSets()
	if n := len(res.CleanupFailed); n > 0 {
		res.CleanupErr = fmt.Errorf("%w: %d objects left behind", ErrResourceCleanup, n)
	}

	cont, err := m.host.CreateContainer(source.Name() + "_dups")
	if err != nil {
		return res, err
	}
	blob, err := (TagRecord{GroupID: gid}).encode()
	if err != nil {
		return res, err
	}
	if err := m.host.SetContainerTag(cont, TagKey, blob); err != nil {
		return res, err
	}
	m.groups[gid] = cont
	res.Container = cont

	if cfg.ApplyToOriginal {
		for _, bs := range sources {
			ConfigureCycles(bs.Set, cfg.Cycle)
		}
	}

	// Deformation timing lives on geometry data, so shared geometry would
	// make every duplicate play the same offset. Force per-duplicate
	// copies when that channel is animated.
	hasDeform := false
	for _, bs := range sources {
		if bs.Channel == Deformation {
			hasDeform = true
		}
	}
	copyGeometry := !cfg.ShareGeometry || hasDeform
	if hasDeform && cfg.ShareGeometry {
		res.Notes = append(res.Notes, "Note: Deformation animation detected; duplicates use unique geometry data to allow per-duplicate timing.")
	}

	for i := 1; i <= cfg.Copies; i++ {
		dup, err := m.createDuplicate(source, cont, gid, i, copyGeometry, sources, cfg)
		if err != nil {
			return res, err
		}
		res.Members = append(res.Members, dup)
		res.Created++
	}
	return res, nil
}

func (m *Manager) createDuplicate(source Entity, cont Container, gid string, i int, copyGeometry bool, sources []BoundSet, cfg RecreateConfig) (Duplicate, error) {
	e, err := m.host.CloneEntity(source, fmt.Sprintf("%s_dup_%02d", source.Name(), i))
	if err != nil {
		return Duplicate{}, err
	}
	if copyGeometry {
		if err := m.host.CopyGeometry(e); err != nil {
			return Duplicate{}, err
		}
	}
	if err := m.host.MoveEntityExclusive(e, cont); err != nil {
		return Duplicate{}, err
	}
	rec := TagRecord{GroupID: gid, Index: i}
	blob, err := rec.encode()
	if err != nil {
		return Duplicate{}, err
	}
	if err := m.host.SetTag(e, TagKey, blob); err != nil {
		return Duplicate{}, err
	}
	m.tags[e] = rec

	dup := Duplicate{Index: i, Entity: e}
	for _, bs := range sources {
		set, err := m.host.DuplicateCurveSet(e, bs.Channel, bs.Set, fmt.Sprintf("%s_dup_%02d", bs.Set.Name, i))
		if err != nil {
			return Duplicate{}, err
		}
		dup.Sets = append(dup.Sets, BoundSet{Channel: bs.Channel, Set: set})
	}

	// The delta layer is always written, neutral unless randomizing, so a
	// rerun without Randomize scrubs an earlier perturbation.
	p := Neutral()
	if cfg.Randomize {
		p = cfg.Perturbation.Draw(m.rng)
	}
	if err := m.host.SetDelta(e, p); err != nil {
		return Duplicate{}, err
	}

	if dx := cfg.FrameOffset*float64(i) + p.FrameJitter; dx != 0 {
		for _, bs := range dup.Sets {
			ShiftSet(bs.Set, dx)
		}
	}
	for _, bs := range dup.Sets {
		ConfigureCycles(bs.Set, cfg.Cycle)
	}
	return dup, nil
}

// ensureGroup resolves the group id stamped on source, allocating and
// stamping a fresh one on first use.
func (m *Manager) ensureGroup(source Entity) (string, error) {
	if rec, ok := entityRecord(m.host, source); ok {
		m.tags[source] = rec
		return rec.GroupID, nil
	}
	rec := TagRecord{GroupID: uuid.NewString(), IsSource: true}
	blob, err := rec.encode()
	if err != nil {
		return "", err
	}
	if err := m.host.SetTag(source, TagKey, blob); err != nil {
		return "", err
	}
	m.tags[source] = rec
	return rec.GroupID, nil
}

// findContainer locates the group's container: cached mapping first, host
// scan as the cold path after a reload.
func (m *Manager) findContainer(gid string) Container {
	if c, ok := m.groups[gid]; ok {
		return c
	}
	for _, c := range m.host.Containers() {
		if id, ok := containerGroup(m.host, c); ok && id == gid {
			m.groups[gid] = c
			return c
		}
	}
	return nil
}

// teardown destroys every member of c, then c itself. Objects that resist
// DestroyEntity are retried once through the detach fallback; survivors
// are skipped and named in failed.
func (m *Manager) teardown(c Container) (destroyed int, failed []string) {
	for _, e := range m.host.ContainerEntities(c) {
		if err := m.destroyEntity(e); err != nil {
			m.logger.Warn("leaving stale duplicate behind", "entity", e.Name(), "error", err)
			failed = append(failed, e.Name())
			continue
		}
		delete(m.tags, e)
		destroyed++
	}
	n, err := m.host.DestroyContainer(c)
	if err != nil {
		if derr := m.host.DetachContainer(c); derr == nil {
			n, err = m.host.DestroyContainer(c)
		}
	}
	if err != nil {
		m.logger.Warn("leaving stale container behind", "container", c.Name(), "error", err)
		failed = append(failed, c.Name())
	}
	return destroyed + n, failed
}

// destroyEntity removes e, falling back to detach-then-destroy once.
func (m *Manager) destroyEntity(e Entity) error {
	err := m.host.DestroyEntity(e)
	if err == nil {
		return nil
	}
	if derr := m.host.DetachEntity(e); derr != nil {
		return err
	}
	return m.host.DestroyEntity(e)
}

// FinishResult reports one Finish run.
type FinishResult struct {
	GroupID string
	Cleared int // entities whose tag was removed
}

// Summary returns the human-readable report line for the run.
func (r FinishResult) Summary() string {
	return "Cleared group tags (entities and container kept)."
}

// Finish releases the group: the tag blob is stripped from every entity
// carrying the same group id as entity, the source included. Entities,
// container and curves stay untouched; a later Recreate on the source
// starts a fresh group. An entity with no group tag finishes successfully
// with nothing cleared.
func (m *Manager) Finish(entity Entity) (FinishResult, error) {
	var res FinishResult
	if entity == nil {
		return res, ErrNoActiveEntity
	}
	rec, ok := entityRecord(m.host, entity)
	if !ok {
		return res, nil
	}
	res.GroupID = rec.GroupID
	for _, e := range m.host.Entities() {
		r, ok := entityRecord(m.host, e)
		if !ok || r.GroupID != rec.GroupID {
			continue
		}
		if err := m.host.DeleteTag(e, TagKey); err != nil {
			m.logger.Warn("group tag left on entity", "entity", e.Name(), "error", err)
			continue
		}
		delete(m.tags, e)
		res.Cleared++
	}
	delete(m.groups, rec.GroupID)
	return res, nil
}
