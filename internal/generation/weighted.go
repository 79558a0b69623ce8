package generation

import (
	"fmt"
	"sort"
)

// WeightedChoice draws a label from a discrete distribution with selection
// probability proportional to its weight. Labels are visited in sorted
// order so the draw depends only on the stream, not on map iteration or
// insertion order. Fails with ErrInvalidDistribution if weights is empty
// or contains a non-positive weight.
func WeightedChoice(s *Source, weights map[string]int) (string, error) {
	if len(weights) == 0 {
		return "", fmt.Errorf("%w: no outcomes", ErrInvalidDistribution)
	}

	labels := make([]string, 0, len(weights))
	total := 0
	for label, w := range weights {
		if w <= 0 {
			return "", fmt.Errorf("%w: weight %d for %q", ErrInvalidDistribution, w, label)
		}
		labels = append(labels, label)
		total += w
	}
	sort.Strings(labels)

	r := s.Between(0, total-1)
	for _, label := range labels {
		r -= weights[label]
		if r < 0 {
			return label, nil
		}
	}
	return labels[len(labels)-1], nil
}
