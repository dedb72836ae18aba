package encore

import "honnef.co/go/curve"

// Shift translates every keyframe of c by dx frames. Handles move rigidly
// with their keys, so the interpolation shape is preserved exactly and
// values are untouched. Shifting by 0 is a no-op and leaves Revision
// unchanged. Repeated shifts compound.
func Shift(c *Curve, dx float64) {
	if c == nil || dx == 0 {
		return
	}
	d := curve.Vec2{X: dx}
	for i := range c.Keys {
		k := &c.Keys[i]
		k.Frame += dx
		k.HandleLeft = k.HandleLeft.Translate(d)
		k.HandleRight = k.HandleRight.Translate(d)
	}
	c.Revision++
}

// ShiftSet applies Shift to every curve of the set.
func ShiftSet(set *CurveSet, dx float64) {
	if set == nil {
		return
	}
	for _, c := range set.Curves {
		Shift(c, dx)
	}
}
