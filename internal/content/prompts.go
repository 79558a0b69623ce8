package content

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPrompts reads task name prompts from a file, one per line. Blank
// lines and lines starting with '#' are skipped.
func LoadPrompts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening prompt file: %w", err)
	}
	defer f.Close()

	var prompts []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading prompt file: %w", err)
	}
	return prompts, nil
}
