package generation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID mints a globally unique identifier in the stable form
// "prefix_<uuid>". The UUID bytes are drawn from the run's random stream,
// so a fixed seed reproduces the same identifiers.
func NewID(s *Source, prefix string) string {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// The stream never fails to read; this path exists only to
		// satisfy the reader contract.
		id = uuid.New()
	}
	return prefix + "_" + id.String()
}

// DedupeEmail returns candidate unchanged when unseen. On collision it
// inserts an incrementing counter into the local part (before the '@'),
// starting at 2, until an unseen address is found. The returned address is
// registered in seen and is never a member of the set passed in.
func DedupeEmail(candidate string, seen map[string]struct{}) string {
	email := candidate
	if _, dup := seen[email]; dup {
		local, domainPart, _ := strings.Cut(candidate, "@")
		for n := 2; ; n++ {
			email = fmt.Sprintf("%s+%d@%s", local, n, domainPart)
			if _, dup := seen[email]; !dup {
				break
			}
		}
	}
	seen[email] = struct{}{}
	return email
}
