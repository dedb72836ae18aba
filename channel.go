package encore

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Channel identifies which animation surface of an entity a curve set
// drives.
type Channel int

const (
	Primary     Channel = iota + 1 // Animation on the entity itself (transforms, properties).
	Deformation                    // Morph-target animation on the entity's geometry data.
)

var (
	channelNames  = [...]string{Primary: "Primary", Deformation: "Deformation"}
	channelByName = map[string]Channel{
		"Primary":     Primary,
		"Deformation": Deformation,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Channel(0)
	_ json.Marshaler           = Channel(0)
	_ json.Unmarshaler         = (*Channel)(nil)
	_ encoding.TextMarshaler   = Channel(0)
	_ encoding.TextUnmarshaler = (*Channel)(nil)
)

func (ch Channel) isValid() bool {
	return ch >= Primary && ch <= Deformation
}

// String returns the name of the channel ("Primary", "Deformation").
// For invalid values it returns "Channel(n)".
func (ch Channel) String() string {
	if ch.isValid() {
		return channelNames[ch]
	}
	return fmt.Sprintf("Channel(%d)", int(ch))
}

// MarshalText implements encoding.TextMarshaler.
func (ch Channel) MarshalText() ([]byte, error) {
	if !ch.isValid() {
		return nil, fmt.Errorf("encore: invalid channel: %d", int(ch))
	}
	return []byte(channelNames[ch]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ch *Channel) UnmarshalText(text []byte) error {
	v, ok := channelByName[string(text)]
	if !ok {
		return fmt.Errorf("encore: invalid channel: %q", text)
	}
	*ch = v
	return nil
}

// MarshalJSON implements json.Marshaler. Channel serializes as a JSON
// string.
func (ch Channel) MarshalJSON() ([]byte, error) {
	text, err := ch.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (ch *Channel) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("encore: invalid channel: %s", data)
	}
	return ch.UnmarshalText([]byte(str))
}

// BoundSet pairs a curve set with the channel it animates on its owner.
type BoundSet struct {
	Channel Channel   `json:"channel"`
	Set     *CurveSet `json:"set"`
}
