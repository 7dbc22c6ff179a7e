package ids

import (
	"strconv"
	"testing"
)

func TestUUIDUnique(t *testing.T) {
	gen := UUID{}
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestTimestampIsNumeric(t *testing.T) {
	id := Timestamp{}.NewID()
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		t.Fatalf("timestamp id %q is not numeric: %v", id, err)
	}
}
