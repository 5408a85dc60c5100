package sentiment

import (
	"context"
	"strings"

	"github.com/osse101/WishEval_Go/internal/domain"
)

// Result is a single classifier verdict.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// IsPositive reports whether the label is the positive one.
func (r Result) IsPositive() bool {
	return r.Label == domain.LabelPositive
}

// Classifier turns text into a sentiment verdict.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
	Name() string
}

// HealthChecker is implemented by classifiers that can report readiness.
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// NormalizeLabel maps provider specific labels onto POSITIVE / NEGATIVE.
// Unknown labels are upper-cased and passed through.
func NormalizeLabel(label string) string {
	l := strings.ToUpper(strings.TrimSpace(label))
	switch l {
	case "POSITIVE", "POS", "LABEL_1":
		return domain.LabelPositive
	case "NEGATIVE", "NEG", "LABEL_0":
		return domain.LabelNegative
	default:
		return l
	}
}

// best picks the highest scoring candidate.
func best(candidates []Result) (Result, bool) {
	if len(candidates) == 0 {
		return Result{}, false
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Score > top.Score {
			top = c
		}
	}
	top.Label = NormalizeLabel(top.Label)
	return top, true
}
