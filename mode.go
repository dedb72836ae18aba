package encore

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// CycleMode describes how motion repeats: not at all, verbatim, stacked on
// the range's value delta, or alternately flipped. It selects the
// extrapolation behavior on each side of a curve's keyed range
// (CycleConfig) and the transform applied to copies baked by RepeatRange
// (RangeSpec, where NoCycle is not allowed).
//
// The zero value is NoCycle, so a zero CycleConfig requests no cycling.
type CycleMode int

const (
	NoCycle          CycleMode = iota // No repetition.
	Repeat                            // Verbatim repetition.
	RepeatWithOffset                  // Each cycle adds the range's value delta.
	Mirror                            // Alternate cycles flipped in time.
)

var (
	cycleModeNames  = [...]string{NoCycle: "NoCycle", Repeat: "Repeat", RepeatWithOffset: "RepeatWithOffset", Mirror: "Mirror"}
	cycleModeByName = map[string]CycleMode{
		"NoCycle":          NoCycle,
		"Repeat":           Repeat,
		"RepeatWithOffset": RepeatWithOffset,
		"Mirror":           Mirror,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = CycleMode(0)
	_ json.Marshaler           = CycleMode(0)
	_ json.Unmarshaler         = (*CycleMode)(nil)
	_ encoding.TextMarshaler   = CycleMode(0)
	_ encoding.TextUnmarshaler = (*CycleMode)(nil)
)

func (m CycleMode) isValid() bool {
	return m >= NoCycle && m <= Mirror
}

// String returns the name of the mode ("NoCycle", "Repeat",
// "RepeatWithOffset", "Mirror"). For invalid values it returns
// "CycleMode(n)".
func (m CycleMode) String() string {
	if m.isValid() {
		return cycleModeNames[m]
	}
	return fmt.Sprintf("CycleMode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m CycleMode) MarshalText() ([]byte, error) {
	if !m.isValid() {
		return nil, fmt.Errorf("encore: invalid cycle mode: %d", int(m))
	}
	return []byte(cycleModeNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CycleMode) UnmarshalText(text []byte) error {
	v, ok := cycleModeByName[string(text)]
	if !ok {
		return fmt.Errorf("encore: invalid cycle mode: %q", text)
	}
	*m = v
	return nil
}

// MarshalJSON implements json.Marshaler. CycleMode serializes as a JSON
// string.
func (m CycleMode) MarshalJSON() ([]byte, error) {
	text, err := m.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (m *CycleMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("encore: invalid cycle mode: %s", data)
	}
	return m.UnmarshalText([]byte(str))
}
