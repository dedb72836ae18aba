package encore_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/encore-anim/encore"
	"github.com/encore-anim/encore/memhost"
)

func benchCurve(n int) *encore.Curve {
	keys := make([]encore.Keyframe, n)
	for i := range keys {
		keys[i] = encore.Key(float64(i), float64(i%7))
	}
	return encore.NewCurve("location.x", keys...)
}

// BenchmarkEvaluate measures one mid-segment curve sample on a 100-key
// curve. Target: < 1μs/op.
func BenchmarkEvaluate(b *testing.B) {
	c := benchCurve(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encore.Evaluate(c, float64(i%99)+0.5)
	}
}

// BenchmarkShiftSet measures shifting a three-curve set of 100 keys each.
// Target: < 5μs/op.
func BenchmarkShiftSet(b *testing.B) {
	set := encore.NewCurveSet("clip", benchCurve(100), benchCurve(100), benchCurve(100))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		encore.ShiftSet(set, 1)
	}
}

// BenchmarkRecreate measures a full teardown-and-rebuild of a five-member
// group, the rerun path. Target: < 100μs/op.
func BenchmarkRecreate(b *testing.B) {
	s := memhost.New()
	src := s.NewObject("walker")
	s.BindAnimation(src, encore.Primary, encore.NewCurveSet("walkerAction", benchCurve(20)))
	m, err := encore.NewManager(encore.ManagerConfig{
		Host:   s,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Seed:   1,
	})
	if err != nil {
		b.Fatal(err)
	}
	cfg := encore.DefaultRecreateConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Recreate(src, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRepeatRange measures baking three repeats of a two-key range,
// rebuilding the fixture each iteration so the curve does not grow across
// runs. Target: < 20μs/op.
func BenchmarkRepeatRange(b *testing.B) {
	spec := encore.DefaultRangeSpec()
	for i := 0; i < b.N; i++ {
		s := memhost.New()
		o := s.NewObject("riser")
		s.BindAnimation(o, encore.Primary, encore.NewCurveSet("riserAction",
			encore.NewCurve("location.z", encore.Key(1, 0), encore.Key(5, 10)),
		))
		m, err := encore.NewManager(encore.ManagerConfig{Host: s, Seed: 1})
		if err != nil {
			b.Fatal(err)
		}
		if _, err := m.RepeatRange([]encore.Entity{o}, spec); err != nil {
			b.Fatal(err)
		}
	}
}
