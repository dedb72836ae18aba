package encore

import "math"

// CycleConfig describes the cyclic extrapolation to apply to every curve
// of a set. The zero value requests no cycling on either side.
type CycleConfig struct {
	Before      CycleMode `json:"before"`       // extrapolation before the first key
	After       CycleMode `json:"after"`        // extrapolation after the last key
	CountBefore int       `json:"count_before"` // cycle count before; 0 = infinite
	CountAfter  int       `json:"count_after"`  // cycle count after; 0 = infinite

	UseInfluence bool    `json:"use_influence"`
	Influence    float64 `json:"influence"` // clamped to [0, 1]

	// Restricted frame range. FrameStart/End and the blends apply only
	// while UseRestrictedRange is set.
	UseRestrictedRange bool    `json:"use_restricted_range"`
	FrameStart         float64 `json:"frame_start"`
	FrameEnd           float64 `json:"frame_end"`
	BlendIn            float64 `json:"blend_in"`  // clamped to >= 0
	BlendOut           float64 `json:"blend_out"` // clamped to >= 0
}

// DefaultCycleConfig returns the configuration hosts commonly start from:
// motion repeated indefinitely after the keyed range, untouched before it.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Before:     NoCycle,
		After:      Repeat,
		Influence:  1,
		FrameStart: 1,
		FrameEnd:   250,
	}
}

// CycleExtrapolation is the extrapolation state stored on a Curve. It is
// created by ConfigureCycles and updated in place on reconfiguration, so a
// curve never carries more than one descriptor.
type CycleExtrapolation struct {
	Before      CycleMode `json:"before"`
	After       CycleMode `json:"after"`
	CountBefore int       `json:"count_before"`
	CountAfter  int       `json:"count_after"`

	UseInfluence bool    `json:"use_influence"`
	Influence    float64 `json:"influence"`

	UseRestrictedRange bool    `json:"use_restricted_range"`
	FrameStart         float64 `json:"frame_start"`
	FrameEnd           float64 `json:"frame_end"`
	BlendIn            float64 `json:"blend_in"`
	BlendOut           float64 `json:"blend_out"`
}

// ConfigureCycles applies cfg to every curve of the set.
//
// Modes, counts and influence are applied unconditionally; counts clamp to
// >= 0 (0 meaning infinite) and influence to [0, 1]. The restricted-range
// fields are copied only while cfg.UseRestrictedRange is set; switching it
// off forces BlendIn and BlendOut to 0 so a stale fade from an earlier
// configuration cannot leak through, while the stored frame range keeps
// its last value. Configuring twice with the same cfg leaves the set in
// the same state as one call. Keyframes are untouched, so curve Revisions
// do not change.
func ConfigureCycles(set *CurveSet, cfg CycleConfig) {
	if set == nil {
		return
	}
	for _, c := range set.Curves {
		configureCurve(c, cfg)
	}
}

func configureCurve(c *Curve, cfg CycleConfig) {
	ext := c.Extrapolation
	if ext == nil {
		ext = &CycleExtrapolation{}
		c.Extrapolation = ext
	}
	ext.Before = cfg.Before
	ext.After = cfg.After
	ext.CountBefore = max(0, cfg.CountBefore)
	ext.CountAfter = max(0, cfg.CountAfter)
	ext.UseInfluence = cfg.UseInfluence
	ext.Influence = math.Min(1, math.Max(0, cfg.Influence))
	ext.UseRestrictedRange = cfg.UseRestrictedRange
	if cfg.UseRestrictedRange {
		ext.FrameStart = cfg.FrameStart
		ext.FrameEnd = cfg.FrameEnd
		ext.BlendIn = math.Max(0, cfg.BlendIn)
		ext.BlendOut = math.Max(0, cfg.BlendOut)
	} else {
		ext.BlendIn = 0
		ext.BlendOut = 0
	}
}
