package encore

import (
	"math"
	"sort"

	"honnef.co/go/curve"
)

// Evaluate samples c at the given frame.
//
// Between neighbouring keys the value follows the cubic Bezier segment
// spanned by the keys and their facing handles. Outside the keyed range
// the first or last key value is held. On a frame carrying keys the first
// key's value wins. An empty curve evaluates to 0.
func Evaluate(c *Curve, frame float64) float64 {
	if c == nil || len(c.Keys) == 0 {
		return 0
	}
	keys := c.Keys
	i := sort.Search(len(keys), func(i int) bool {
		return keys[i].Frame >= frame
	})
	if i < len(keys) && keys[i].Frame == frame {
		return keys[i].Value
	}
	if i == 0 {
		return keys[0].Value
	}
	if i == len(keys) {
		return keys[len(keys)-1].Value
	}
	return evalSegment(keys[i-1], keys[i], frame)
}

func evalSegment(k0, k1 Keyframe, frame float64) float64 {
	p0 := curve.Pt(k0.Frame, k0.Value)
	p3 := curve.Pt(k1.Frame, k1.Value)
	p1, p2 := clampHandles(p0, k0.HandleRight, k1.HandleLeft, p3)
	seg := curve.CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
	return seg.Eval(segmentParam(seg, frame)).Y
}

// clampHandles rescales the facing handles of a segment when their combined
// horizontal reach exceeds the segment width, so that frame stays monotonic
// in the curve parameter.
func clampHandles(p0, h0, h1, p3 curve.Point) (curve.Point, curve.Point) {
	d0 := h0.Sub(p0)
	d1 := h1.Sub(p3)
	width := p3.X - p0.X
	reach := math.Abs(d0.X) + math.Abs(d1.X)
	if reach == 0 || reach <= width {
		return h0, h1
	}
	fac := width / reach
	return p0.Translate(d0.Mul(fac)), p3.Translate(d1.Mul(fac))
}

// segmentParam finds t in [0, 1] with seg.Eval(t).X == frame by solving the
// cubic in the X coordinate.
func segmentParam(seg curve.CubicBez, frame float64) float64 {
	x0, x1, x2, x3 := seg.P0.X, seg.P1.X, seg.P2.X, seg.P3.X
	roots, n := curve.SolveCubic(
		x0-frame,
		3*(x1-x0),
		3*(x0-2*x1+x2),
		x3-3*x2+3*x1-x0,
	)
	const eps = 1e-6
	for i := 0; i < n; i++ {
		if t := roots[i]; t >= -eps && t <= 1+eps {
			return min(1, max(0, t))
		}
	}
	// No usable root, e.g. a zero-width segment between coincident keys.
	// Fall back to linear placement.
	if width := x3 - x0; width > 0 {
		return min(1, max(0, (frame-x0)/width))
	}
	return 0
}
