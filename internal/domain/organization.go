package domain

import (
	"regexp"
	"strings"
	"time"
)

// Organization is the root entity of a generated workspace.
// Exactly one instance exists per run.
type Organization struct {
	ID           string
	Name         string
	Industry     string
	Size         int
	CreatedAt    time.Time
	Description  string
	Headquarters string
	Domain       string
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// EmailDomain derives an email domain from a company name by lowercasing,
// stripping non-alphanumerics and appending ".io".
func EmailDomain(companyName string) string {
	base := nonAlnum.ReplaceAllString(strings.ToLower(companyName), "")
	return base + ".io"
}
