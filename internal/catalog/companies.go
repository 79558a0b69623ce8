package catalog

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// fallbackCompanies backs company-name lookups when live fetching is
// disabled or fails.
var fallbackCompanies = []string{
	"ProductZen",
	"CloudForge",
	"GrowthPulse",
	"DataWhale",
	"InsightHub",
	"MetricFlow",
	"OpsPilot",
	"SecureStack",
	"DevNest",
	"PipelineLabs",
	"SignalCore",
	"LaunchPadly",
	"TeamAxis",
	"FocusLoop",
	"QuantifyIQ",
	"Workstreamer",
	"ScaleOps",
	"NimbusTech",
	"FeatureBay",
	"Sprintly",
}

// FallbackCompanies returns up to limit names from the static list.
func FallbackCompanies(limit int) []string {
	if limit <= 0 || limit > len(fallbackCompanies) {
		limit = len(fallbackCompanies)
	}
	out := make([]string, limit)
	copy(out, fallbackCompanies[:limit])
	return out
}

const defaultDirectoryURL = "https://www.ycombinator.com/companies"

var headingPattern = regexp.MustCompile(`(?s)<h3[^>]*>(.*?)</h3>`)

// LiveCompanySource fetches company names from a public directory page.
// Failures are returned to the caller, which is expected to fall back to
// FallbackCompanies.
type LiveCompanySource struct {
	url  string
	http *http.Client
}

// NewLiveCompanySource creates a fetcher against the default directory.
func NewLiveCompanySource() *LiveCompanySource {
	return &LiveCompanySource{
		url:  defaultDirectoryURL,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Names fetches up to limit company names from the directory page.
func (l *LiveCompanySource) Names(ctx context.Context, limit int) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating directory request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching company directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("company directory returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("reading company directory: %w", err)
	}

	var names []string
	for _, match := range headingPattern.FindAllStringSubmatch(string(body), -1) {
		name := strings.TrimSpace(html.UnescapeString(stripTags(match[1])))
		if name == "" {
			continue
		}
		names = append(names, name)
		if limit > 0 && len(names) >= limit {
			break
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("company directory yielded no names")
	}
	return names, nil
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
