package encore

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// TagKey is the single host tag key under which the core stores its
// metadata, as a JSON blob. Entities carry a full TagRecord; containers
// carry just the group id.
const TagKey = "encore"

// TagRecord is the identity metadata riding on a tagged entity: the
// duplicate group it belongs to, whether it is the group's source, and its
// 1-based duplicate index (0 for the source).
type TagRecord struct {
	GroupID  string
	IsSource bool
	Index    int
}

// encode renders rec as the JSON blob stored under TagKey. Only meaningful
// fields are written: "source" when set, "index" when positive.
func (rec TagRecord) encode() (string, error) {
	blob, err := sjson.Set("", "group", rec.GroupID)
	if err != nil {
		return "", err
	}
	if rec.IsSource {
		if blob, err = sjson.Set(blob, "source", true); err != nil {
			return "", err
		}
	}
	if rec.Index > 0 {
		if blob, err = sjson.Set(blob, "index", rec.Index); err != nil {
			return "", err
		}
	}
	return blob, nil
}

// decodeTagRecord parses a TagKey blob. ok is false when the blob is not
// JSON or carries no group id.
func decodeTagRecord(blob string) (TagRecord, bool) {
	if !gjson.Valid(blob) {
		return TagRecord{}, false
	}
	group := gjson.Get(blob, "group")
	if !group.Exists() || group.String() == "" {
		return TagRecord{}, false
	}
	return TagRecord{
		GroupID:  group.String(),
		IsSource: gjson.Get(blob, "source").Bool(),
		Index:    int(gjson.Get(blob, "index").Int()),
	}, true
}

// entityRecord reads e's tag record from the store.
func entityRecord(ts TagStore, e Entity) (TagRecord, bool) {
	blob, ok := ts.Tag(e, TagKey)
	if !ok {
		return TagRecord{}, false
	}
	return decodeTagRecord(blob)
}

// containerGroup reads the group id stored on c.
func containerGroup(ts TagStore, c Container) (string, bool) {
	blob, ok := ts.ContainerTag(c, TagKey)
	if !ok {
		return "", false
	}
	rec, ok := decodeTagRecord(blob)
	return rec.GroupID, ok
}
