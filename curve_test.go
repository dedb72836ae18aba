package encore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
)

func TestKeyHandlePlacement(t *testing.T) {
	k := Key(10, 4)
	if k.Frame != 10 || k.Value != 4 {
		t.Errorf("Key(10, 4) = (%g, %g), want (10, 4)", k.Frame, k.Value)
	}
	wantLeft := curve.Pt(10-1.0/3.0, 4)
	wantRight := curve.Pt(10+1.0/3.0, 4)
	if k.HandleLeft != wantLeft {
		t.Errorf("HandleLeft = %v, want %v", k.HandleLeft, wantLeft)
	}
	if k.HandleRight != wantRight {
		t.Errorf("HandleRight = %v, want %v", k.HandleRight, wantRight)
	}
	// Flat handles: same value as the key.
	if k.HandleLeft.Y != 4 || k.HandleRight.Y != 4 {
		t.Errorf("handles not flat: left.Y = %g, right.Y = %g", k.HandleLeft.Y, k.HandleRight.Y)
	}
}

// --- NewCurve ---

func TestNewCurveSortsKeys(t *testing.T) {
	c := NewCurve("location.x", Key(25, 3), Key(1, 0), Key(13, 2))
	want := []float64{1, 13, 25}
	if len(c.Keys) != len(want) {
		t.Fatalf("len(Keys) = %d, want %d", len(c.Keys), len(want))
	}
	for i, f := range want {
		if c.Keys[i].Frame != f {
			t.Errorf("Keys[%d].Frame = %g, want %g", i, c.Keys[i].Frame, f)
		}
	}
	if c.Path != "location.x" {
		t.Errorf("Path = %q, want %q", c.Path, "location.x")
	}
	if c.Revision != 0 {
		t.Errorf("Revision = %d, want 0", c.Revision)
	}
}

func TestNewCurveSortStable(t *testing.T) {
	// Keys on the same frame keep their argument order.
	c := NewCurve("v", Key(5, 1), Key(5, 2), Key(1, 0))
	if c.Keys[0].Frame != 1 {
		t.Fatalf("Keys[0].Frame = %g, want 1", c.Keys[0].Frame)
	}
	if c.Keys[1].Value != 1 || c.Keys[2].Value != 2 {
		t.Errorf("same-frame order = (%g, %g), want (1, 2)", c.Keys[1].Value, c.Keys[2].Value)
	}
}

// --- Insert ---

func TestInsertKeepsOrder(t *testing.T) {
	c := NewCurve("v", Key(1, 0), Key(10, 5))
	c.Insert(Key(4, 2))
	want := []float64{1, 4, 10}
	for i, f := range want {
		if c.Keys[i].Frame != f {
			t.Errorf("Keys[%d].Frame = %g, want %g", i, c.Keys[i].Frame, f)
		}
	}
}

func TestInsertCoincidentLandsAfter(t *testing.T) {
	c := NewCurve("v", Key(1, 0), Key(5, 10))
	c.Insert(Key(5, 99))
	if len(c.Keys) != 3 {
		t.Fatalf("len(Keys) = %d, want 3", len(c.Keys))
	}
	// The existing key at frame 5 stays first; the new one coexists after it.
	if c.Keys[1].Value != 10 {
		t.Errorf("Keys[1].Value = %g, want 10 (existing key)", c.Keys[1].Value)
	}
	if c.Keys[2].Value != 99 {
		t.Errorf("Keys[2].Value = %g, want 99 (inserted key)", c.Keys[2].Value)
	}
}

func TestInsertBumpsRevision(t *testing.T) {
	c := NewCurve("v", Key(1, 0))
	if c.Revision != 0 {
		t.Fatalf("Revision = %d, want 0", c.Revision)
	}
	c.Insert(Key(2, 1))
	c.Insert(Key(3, 2))
	if c.Revision != 2 {
		t.Errorf("Revision = %d, want 2", c.Revision)
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	c := NewCurve("v")
	c.Insert(Key(7, 3))
	if len(c.Keys) != 1 || c.Keys[0].Frame != 7 {
		t.Errorf("Keys = %v, want one key at frame 7", c.Keys)
	}
}

// --- Span ---

func TestSpan(t *testing.T) {
	c := NewCurve("v", Key(3, 1), Key(20, 2), Key(8, 0))
	first, last, ok := c.Span()
	if !ok {
		t.Fatal("Span ok = false, want true")
	}
	if first != 3 || last != 20 {
		t.Errorf("Span = (%g, %g), want (3, 20)", first, last)
	}
}

func TestSpanEmpty(t *testing.T) {
	c := NewCurve("v")
	first, last, ok := c.Span()
	if ok {
		t.Error("Span ok = true on empty curve, want false")
	}
	if first != 0 || last != 0 {
		t.Errorf("Span = (%g, %g), want (0, 0)", first, last)
	}
}

// --- Clone ---

func TestCurveCloneIndependent(t *testing.T) {
	c := NewCurve("v", Key(1, 0), Key(10, 5))
	ConfigureCycles(NewCurveSet("s", c), DefaultCycleConfig())

	cl := c.Clone()
	if diff := cmp.Diff(c, cl); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}

	cl.Keys[0].Value = 99
	cl.Extrapolation.After = Mirror
	cl.Insert(Key(20, 1))
	if c.Keys[0].Value != 0 {
		t.Error("mutating clone keys leaked into original")
	}
	if c.Extrapolation.After != Repeat {
		t.Error("mutating clone extrapolation leaked into original")
	}
	if len(c.Keys) != 2 {
		t.Errorf("len(Keys) = %d after clone insert, want 2", len(c.Keys))
	}
}

func TestCurveCloneNilExtrapolation(t *testing.T) {
	c := NewCurve("v", Key(1, 0))
	cl := c.Clone()
	if cl.Extrapolation != nil {
		t.Errorf("clone Extrapolation = %v, want nil", cl.Extrapolation)
	}
}

// --- CurveSet ---

func TestCurveSetLookup(t *testing.T) {
	x := NewCurve("location.x", Key(1, 0))
	y := NewCurve("location.y", Key(1, 2))
	cs := NewCurveSet("clip", x, y)
	if cs.Name != "clip" {
		t.Errorf("Name = %q, want %q", cs.Name, "clip")
	}
	if got := cs.Curve("location.y"); got != y {
		t.Errorf("Curve(location.y) = %v, want the y curve", got)
	}
	if got := cs.Curve("location.z"); got != nil {
		t.Errorf("Curve(location.z) = %v, want nil", got)
	}
}

func TestCurveSetCloneDeep(t *testing.T) {
	cs := NewCurveSet("clip", NewCurve("v", Key(1, 0), Key(5, 2)))
	cl := cs.Clone()
	if diff := cmp.Diff(cs, cl); diff != "" {
		t.Fatalf("clone differs from original (-want +got):\n%s", diff)
	}
	cl.Curves[0].Keys[0].Value = 42
	if cs.Curves[0].Keys[0].Value != 0 {
		t.Error("mutating clone curve leaked into original")
	}
}
