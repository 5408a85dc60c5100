package sentiment

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/utils"
)

// NormalizeText applies NFKC, drops control characters other than newlines
// and tabs, and trims whitespace.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return strings.TrimSpace(normed)
}

// PrepareInput normalizes text and cuts it to the classifier input limit.
func PrepareInput(text string) string {
	return utils.TruncateRunes(NormalizeText(text), domain.MaxClassifierRunes)
}

type normalizing struct {
	next Classifier
}

// WithNormalization prepares every input with PrepareInput before classifying.
func WithNormalization(next Classifier) Classifier {
	return &normalizing{next: next}
}

func (n *normalizing) Classify(ctx context.Context, text string) (Result, error) {
	return n.next.Classify(ctx, PrepareInput(text))
}

func (n *normalizing) Name() string { return n.next.Name() }
