package encore

import (
	"sort"

	"honnef.co/go/curve"
)

// Keyframe is one sample of an animation curve: a control point at
// (Frame, Value) plus the two Bezier handles shaping the interpolation
// into and out of it. Handles live on the same frame/value plane as the
// point itself, expressed in absolute coordinates.
type Keyframe struct {
	Frame       float64     `json:"frame"`
	Value       float64     `json:"value"`
	HandleLeft  curve.Point `json:"handle_left"`
	HandleRight curve.Point `json:"handle_right"`
}

// Key returns a keyframe at (frame, value) with flat handles one third of
// a frame to either side, the shape hosts give freshly inserted keys.
func Key(frame, value float64) Keyframe {
	return Keyframe{
		Frame:       frame,
		Value:       value,
		HandleLeft:  curve.Pt(frame-1.0/3.0, value),
		HandleRight: curve.Pt(frame+1.0/3.0, value),
	}
}

// Curve is a sequence of keyframes, ordered by frame, animating a single
// property of its owner. Path identifies the property in host terms, for
// example "location.x" or the name of a morph target.
type Curve struct {
	Path string     `json:"path"`
	Keys []Keyframe `json:"keys"`

	// Extrapolation extends the motion outside the keyed range. Nil until
	// configured; a curve carries at most one descriptor.
	Extrapolation *CycleExtrapolation `json:"extrapolation,omitempty"`

	// Revision increments on every keyframe mutation. Hosts use it to
	// invalidate evaluation caches. Treat as read-only.
	Revision uint64 `json:"-"`
}

// NewCurve returns a curve for the given property path. Keys may be passed
// in any order; they are sorted by frame, preserving the relative order of
// keys on the same frame.
func NewCurve(path string, keys ...Keyframe) *Curve {
	c := &Curve{Path: path, Keys: keys}
	sort.SliceStable(c.Keys, func(i, j int) bool {
		return c.Keys[i].Frame < c.Keys[j].Frame
	})
	return c
}

// Insert adds kf, keeping Keys ordered by frame. A key on an already
// occupied frame coexists with the keys there and is placed after them;
// existing keys are never replaced.
func (c *Curve) Insert(kf Keyframe) {
	i := sort.Search(len(c.Keys), func(i int) bool {
		return c.Keys[i].Frame > kf.Frame
	})
	c.Keys = append(c.Keys, Keyframe{})
	copy(c.Keys[i+1:], c.Keys[i:])
	c.Keys[i] = kf
	c.Revision++
}

// Span returns the first and last keyed frame. A curve with no keys spans
// (0, 0); ok reports whether any key exists.
func (c *Curve) Span() (first, last float64, ok bool) {
	if len(c.Keys) == 0 {
		return 0, 0, false
	}
	return c.Keys[0].Frame, c.Keys[len(c.Keys)-1].Frame, true
}

// Clone returns a deep copy of the curve.
func (c *Curve) Clone() *Curve {
	out := *c
	out.Keys = append([]Keyframe(nil), c.Keys...)
	if c.Extrapolation != nil {
		e := *c.Extrapolation
		out.Extrapolation = &e
	}
	return &out
}

// CurveSet is a named bundle of curves sharing one time axis, the core's
// view of a host animation clip.
type CurveSet struct {
	Name   string   `json:"name"`
	Curves []*Curve `json:"curves"`
}

// NewCurveSet returns a curve set holding the given curves.
func NewCurveSet(name string, curves ...*Curve) *CurveSet {
	return &CurveSet{Name: name, Curves: curves}
}

// Curve returns the curve with the given path, or nil if the set has none.
func (cs *CurveSet) Curve(path string) *Curve {
	for _, c := range cs.Curves {
		if c.Path == path {
			return c
		}
	}
	return nil
}

// Clone returns a deep copy of the set and every curve in it.
func (cs *CurveSet) Clone() *CurveSet {
	out := &CurveSet{Name: cs.Name, Curves: make([]*Curve, len(cs.Curves))}
	for i, c := range cs.Curves {
		out.Curves[i] = c.Clone()
	}
	return out
}
