package encore

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// RollMode selects on which side of the source range RepeatRange lays down
// its copies.
type RollMode int

const (
	Preroll  RollMode = iota + 1 // Copies before the range, leading into it.
	Postroll                     // Copies after the range, carrying on from it.
)

var (
	rollModeNames  = [...]string{Preroll: "Preroll", Postroll: "Postroll"}
	rollModeByName = map[string]RollMode{
		"Preroll":  Preroll,
		"Postroll": Postroll,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = RollMode(0)
	_ json.Marshaler           = RollMode(0)
	_ json.Unmarshaler         = (*RollMode)(nil)
	_ encoding.TextMarshaler   = RollMode(0)
	_ encoding.TextUnmarshaler = (*RollMode)(nil)
)

func (r RollMode) isValid() bool {
	return r >= Preroll && r <= Postroll
}

// sign is +1 for Postroll, -1 for Preroll.
func (r RollMode) sign() float64 {
	if r == Preroll {
		return -1
	}
	return 1
}

// String returns the name of the roll mode ("Preroll", "Postroll"). For
// invalid values it returns "RollMode(n)".
func (r RollMode) String() string {
	if r.isValid() {
		return rollModeNames[r]
	}
	return fmt.Sprintf("RollMode(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r RollMode) MarshalText() ([]byte, error) {
	if !r.isValid() {
		return nil, fmt.Errorf("encore: invalid roll mode: %d", int(r))
	}
	return []byte(rollModeNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *RollMode) UnmarshalText(text []byte) error {
	v, ok := rollModeByName[string(text)]
	if !ok {
		return fmt.Errorf("encore: invalid roll mode: %q", text)
	}
	*r = v
	return nil
}

// MarshalJSON implements json.Marshaler. RollMode serializes as a JSON
// string.
func (r RollMode) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (r *RollMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("encore: invalid roll mode: %s", data)
	}
	return r.UnmarshalText([]byte(str))
}
