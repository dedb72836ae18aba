package encore

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIntervalDrawBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, iv := range []Interval{{Min: 2, Max: 5}, {Min: 5, Max: 2}} {
		for i := 0; i < 10000; i++ {
			v := iv.draw(rng)
			if v < 2 || v > 5 {
				t.Fatalf("draw from %+v = %g, want within [2, 5]", iv, v)
			}
		}
	}
}

func TestIntervalDrawDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	iv := Interval{Min: 3, Max: 3}
	for i := 0; i < 100; i++ {
		if v := iv.draw(rng); v != 3 {
			t.Fatalf("draw from %+v = %g, want 3", iv, v)
		}
	}
}

func TestDrawDeterministic(t *testing.T) {
	spec := DefaultPerturbationSpec()
	spec.Translation = [3]Interval{{Min: -2, Max: 2}, {Min: -2, Max: 2}, {Min: 0, Max: 1}}
	spec.RotationDeg[2] = Interval{Min: -180, Max: 180}
	spec.FrameJitter = Interval{Min: 0, Max: 5}

	a := spec.Draw(rand.New(rand.NewSource(99)))
	b := spec.Draw(rand.New(rand.NewSource(99)))
	if a != b {
		t.Errorf("same seed drew different perturbations:\n%+v\n%+v", a, b)
	}

	c := spec.Draw(rand.New(rand.NewSource(100)))
	if a == c {
		t.Error("different seeds drew identical perturbations")
	}
}

func TestDefaultPerturbationSpecDrawsNeutral(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	spec := DefaultPerturbationSpec()
	for i := 0; i < 10; i++ {
		if p := spec.Draw(rng); p != Neutral() {
			t.Fatalf("draw %d = %+v, want neutral", i, p)
		}
	}
}

func TestDrawLeavesUnsetAxesNeutral(t *testing.T) {
	spec := DefaultPerturbationSpec()
	spec.Translation[0] = Interval{Min: 1, Max: 4}
	p := spec.Draw(rand.New(rand.NewSource(3)))
	if p.Translation[0] < 1 || p.Translation[0] > 4 {
		t.Errorf("Translation[0] = %g, want within [1, 4]", p.Translation[0])
	}
	if p.Translation[1] != 0 || p.Translation[2] != 0 {
		t.Errorf("untouched translation axes = (%g, %g), want (0, 0)", p.Translation[1], p.Translation[2])
	}
	if p.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want unit", p.Scale)
	}
}

func TestNeutral(t *testing.T) {
	p := Neutral()
	if p.Translation != (mgl64.Vec3{}) || p.RotationDeg != (mgl64.Vec3{}) {
		t.Errorf("neutral translation/rotation = %v/%v, want zero", p.Translation, p.RotationDeg)
	}
	if p.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("neutral scale = %v, want (1, 1, 1)", p.Scale)
	}
	if p.FrameJitter != 0 {
		t.Errorf("neutral jitter = %g, want 0", p.FrameJitter)
	}
}

// --- Quat ---

func TestQuatIdentity(t *testing.T) {
	q := Neutral().Quat()
	if math.Abs(q.W-1) > epsilon {
		t.Errorf("q.W = %g, want 1", q.W)
	}
	for i, v := range q.V {
		if math.Abs(v) > epsilon {
			t.Errorf("q.V[%d] = %g, want 0", i, v)
		}
	}
}

func TestQuatSingleAxis(t *testing.T) {
	p := Neutral()
	p.RotationDeg[0] = 90
	q := p.Quat()
	half := math.Sqrt2 / 2
	if math.Abs(q.W-half) > epsilon {
		t.Errorf("q.W = %g, want %g", q.W, half)
	}
	if math.Abs(q.V[0]-half) > epsilon {
		t.Errorf("q.V[0] = %g, want %g", q.V[0], half)
	}
	if math.Abs(q.V[1]) > epsilon || math.Abs(q.V[2]) > epsilon {
		t.Errorf("q.V = %v, want rotation about X only", q.V)
	}
}

func TestQuatUnitLength(t *testing.T) {
	p := Neutral()
	p.RotationDeg = mgl64.Vec3{90, 45, 30}
	q := p.Quat()
	if got := q.Len(); math.Abs(got-1) > 1e-6 {
		t.Errorf("|q| = %g, want 1", got)
	}
}
