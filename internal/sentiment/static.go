package sentiment

import "context"

// Static always returns the same verdict, or Err when set.
type Static struct {
	Result Result
	Err    error
}

// NewStatic creates a fixed classifier.
func NewStatic(label string, score float64) *Static {
	return &Static{Result: Result{Label: NormalizeLabel(label), Score: score}}
}

func (s *Static) Name() string { return ProviderStatic }

func (s *Static) Classify(ctx context.Context, _ string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Err != nil {
		return Result{}, s.Err
	}
	return s.Result, nil
}
