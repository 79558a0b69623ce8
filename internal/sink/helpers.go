package sink

import "time"

const dateLayout = "2006-01-02"

// dateValue formats a day-granular date for storage.
func dateValue(t time.Time) string {
	return t.Format(dateLayout)
}

// nullableDate converts an optional date to a storage value, mapping nil
// to SQL NULL.
func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// nullableString maps a nil string pointer to SQL NULL.
func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

// boolValue stores a bool as 0/1.
func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
