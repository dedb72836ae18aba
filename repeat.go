package encore

import (
	"fmt"
	"math"
)

// RangeSpec describes one RepeatRange request.
type RangeSpec struct {
	Start        float64   `json:"start"` // range bounds, swapped when reversed
	End          float64   `json:"end"`
	Repeats      int       `json:"repeats"`        // copies per curve, >= 1
	Roll         RollMode  `json:"roll"`           // side the copies land on
	Mode         CycleMode `json:"mode"`           // Repeat, RepeatWithOffset or Mirror
	SnapToFrames bool      `json:"snap_to_frames"` // round produced frames and handle X to integers
}

// DefaultRangeSpec returns the usual starting request: the range [1, 5]
// repeated three times after itself, stacking the value delta, snapped to
// whole frames.
func DefaultRangeSpec() RangeSpec {
	return RangeSpec{
		Start:        1,
		End:          5,
		Repeats:      3,
		Roll:         Postroll,
		Mode:         RepeatWithOffset,
		SnapToFrames: true,
	}
}

// RepeatResult reports one RepeatRange run.
type RepeatResult struct {
	Inserted      int // keyframes inserted across all curves
	CurvesTouched int // curves that had keys inside the range
}

// Summary returns the human-readable report line for the run.
func (r RepeatResult) Summary() string {
	return fmt.Sprintf("Inserted %d keyframes.", r.Inserted)
}

// RepeatRange bakes repeated copies of the keyframes inside
// [spec.Start, spec.End] back into every curve of every given entity, on
// both animation channels. Entities without animation and curves without
// keys inside the range are skipped silently. The copies derive from a
// snapshot of the original range, so repeat i always lands i range-lengths
// away from the source keys, never compounding on earlier repeats.
//
// RepeatRange reads no group state; it works on whatever entities it is
// handed.
func (m *Manager) RepeatRange(entities []Entity, spec RangeSpec) (RepeatResult, error) {
	var res RepeatResult
	f0, f1 := spec.Start, spec.End
	if f1 < f0 {
		f0, f1 = f1, f0
	}
	if f1-f0 <= 0 {
		return res, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, spec.Start, spec.End)
	}
	if spec.Repeats < 1 {
		return res, fmt.Errorf("encore: repeats %d, need at least 1", spec.Repeats)
	}
	switch spec.Mode {
	case Repeat, RepeatWithOffset, Mirror:
	default:
		return res, fmt.Errorf("encore: repeating a range needs mode Repeat, RepeatWithOffset or Mirror, got %v", spec.Mode)
	}
	if !spec.Roll.isValid() {
		return res, fmt.Errorf("encore: invalid roll mode: %d", int(spec.Roll))
	}

	for _, e := range entities {
		if e == nil {
			continue
		}
		for _, bs := range m.host.AnimationSources(e) {
			for _, c := range bs.Set.Curves {
				if n := repeatCurve(c, f0, f1, spec); n > 0 {
					res.Inserted += n
					res.CurvesTouched++
				}
			}
		}
	}
	return res, nil
}

// repeatCurve bakes spec.Repeats copies of c's keys inside [f0, f1] back
// into c and returns how many keys were inserted. The value delta across
// the range is taken from the curve's interpolated values at the range
// bounds, whether or not keys sit exactly there.
func repeatCurve(c *Curve, f0, f1 float64, spec RangeSpec) int {
	var src []Keyframe
	for _, k := range c.Keys {
		if k.Frame >= f0 && k.Frame <= f1 {
			src = append(src, k)
		}
	}
	if len(src) == 0 {
		return 0
	}
	length := f1 - f0
	delta := Evaluate(c, f1) - Evaluate(c, f0)

	inserted := 0
	for i := 1; i <= spec.Repeats; i++ {
		timeShift := spec.Roll.sign() * float64(i) * length
		var valueShift float64
		switch spec.Mode {
		case RepeatWithOffset:
			valueShift = spec.Roll.sign() * float64(i) * delta
		case Mirror:
			if i%2 == 1 {
				valueShift = delta
			} else {
				valueShift = -delta
			}
		}
		for _, k := range src {
			nk := k
			nk.Frame += timeShift
			nk.HandleLeft.X += timeShift
			nk.HandleRight.X += timeShift
			nk.Value += valueShift
			nk.HandleLeft.Y += valueShift
			nk.HandleRight.Y += valueShift
			if spec.SnapToFrames {
				nk.Frame = math.Round(nk.Frame)
				nk.HandleLeft.X = math.Round(nk.HandleLeft.X)
				nk.HandleRight.X = math.Round(nk.HandleRight.X)
			}
			c.Insert(nk)
			inserted++
		}
	}
	return inserted
}
