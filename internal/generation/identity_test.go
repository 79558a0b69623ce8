package generation

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var idPattern = regexp.MustCompile(`^task_[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestNewID_Format(t *testing.T) {
	s := NewSource(42)
	id := NewID(s, "task")
	assert.Regexp(t, idPattern, id)
}

func TestNewID_SeedDeterministic(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, NewID(a, "proj"), NewID(b, "proj"))
	}
}

func TestNewID_UniqueWithinStream(t *testing.T) {
	s := NewSource(42)
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID(s, "user")
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestDedupeEmail_FirstUseUnchanged(t *testing.T) {
	seen := map[string]struct{}{}
	got := DedupeEmail("jane.doe@datawhale.io", seen)
	assert.Equal(t, "jane.doe@datawhale.io", got)
	assert.Contains(t, seen, "jane.doe@datawhale.io")
}

func TestDedupeEmail_CounterStartsAtTwo(t *testing.T) {
	seen := map[string]struct{}{}
	first := DedupeEmail("jane.doe@datawhale.io", seen)
	second := DedupeEmail("jane.doe@datawhale.io", seen)
	third := DedupeEmail("jane.doe@datawhale.io", seen)

	assert.Equal(t, "jane.doe@datawhale.io", first)
	assert.Equal(t, "jane.doe+2@datawhale.io", second)
	assert.Equal(t, "jane.doe+3@datawhale.io", third)
}

func TestDedupeEmail_SkipsOccupiedCounters(t *testing.T) {
	seen := map[string]struct{}{
		"jane.doe@datawhale.io":   {},
		"jane.doe+2@datawhale.io": {},
	}
	got := DedupeEmail("jane.doe@datawhale.io", seen)
	assert.Equal(t, "jane.doe+3@datawhale.io", got)
}
