package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/encore-anim/encore/schema"
)

func TestSchemasCarryTitles(t *testing.T) {
	if s := schema.Recreate(); s == nil || s.Title != "Recreate Configuration" {
		t.Errorf("Recreate schema = %+v, want Recreate Configuration title", s)
	}
	if s := schema.RepeatRange(); s == nil || s.Title != "Repeat Range Request" {
		t.Errorf("RepeatRange schema = %+v, want Repeat Range Request title", s)
	}
	if s := schema.Cycle(); s == nil || s.Title != "Cycle Configuration" {
		t.Errorf("Cycle schema = %+v, want Cycle Configuration title", s)
	}
}

func TestRecreateSchemaListsFields(t *testing.T) {
	data, err := json.Marshal(schema.Recreate())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, field := range []string{"copies", "frame_offset", "share_geometry", "randomize"} {
		if !strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("schema JSON missing %q:\n%s", field, data)
		}
	}
}

func TestRepeatRangeSchemaListsFields(t *testing.T) {
	data, err := json.Marshal(schema.RepeatRange())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, field := range []string{"start", "end", "repeats", "snap_to_frames"} {
		if !strings.Contains(string(data), `"`+field+`"`) {
			t.Errorf("schema JSON missing %q:\n%s", field, data)
		}
	}
}
