package wish

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/sentiment"
	"github.com/osse101/WishEval_Go/internal/utils"
)

// Probability formulas
const (
	// FormulaAverage averages the baseline with the score as a percentage.
	FormulaAverage = "average"
	// FormulaLinear maps the score linearly onto [floor, floor+span].
	FormulaLinear = "linear"
)

// Keyword override presets
const (
	OverrideNone    = "none"
	OverrideHopeful = "hopeful"
	OverrideFestive = "festive"
)

var overridePresets = map[string][]string{
	OverrideNone:    nil,
	OverrideHopeful: {"wish", "hope", "want", "dream"},
	OverrideFestive: {"christmas", "merry"},
}

// Variant is one complete evaluation policy.
type Variant struct {
	Name    string  `yaml:"name" json:"name"`
	Formula string  `yaml:"formula" json:"formula"`
	Base    float64 `yaml:"base" json:"base"`
	Span    float64 `yaml:"span,omitempty" json:"span,omitempty"`

	Override string   `yaml:"override" json:"override"`
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	FallbackScore       float64 `yaml:"fallback_score" json:"fallback_score"`
	FallbackProbability float64 `yaml:"fallback_probability" json:"fallback_probability"`
	ShowErrorDetail     bool    `yaml:"show_error_detail" json:"show_error_detail"`

	SupportSlots   int     `yaml:"support_slots" json:"support_slots"`
	FixedIncrement float64 `yaml:"fixed_increment,omitempty" json:"fixed_increment,omitempty"`

	Pacing time.Duration `yaml:"pacing,omitempty" json:"pacing,omitempty"`
}

// BuiltinVariants returns the four stock policies keyed by name.
func BuiltinVariants() map[string]Variant {
	return map[string]Variant{
		VariantClassic: {
			Name:                VariantClassic,
			Formula:             FormulaAverage,
			Base:                60,
			Override:            OverrideNone,
			FallbackScore:       0.7,
			FallbackProbability: 60,
			ShowErrorDetail:     true,
			SupportSlots:        5,
		},
		VariantHopeful: {
			Name:                VariantHopeful,
			Formula:             FormulaLinear,
			Base:                60,
			Span:                20,
			Override:            OverrideHopeful,
			FallbackScore:       0.7,
			FallbackProbability: 65,
			SupportSlots:        5,
		},
		VariantFestive: {
			Name:                VariantFestive,
			Formula:             FormulaLinear,
			Base:                60,
			Span:                20,
			Override:            OverrideFestive,
			FallbackScore:       0.7,
			FallbackProbability: 65,
			SupportSlots:        1,
			FixedIncrement:      5,
		},
		VariantFlag: {
			Name:                VariantFlag,
			Formula:             FormulaLinear,
			Base:                60,
			Span:                20,
			Override:            OverrideNone,
			FallbackScore:       0.7,
			FallbackProbability: 65,
			SupportSlots:        1,
			FixedIncrement:      5,
		},
	}
}

// Validate checks that the variant can be evaluated.
func (v Variant) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("%w: variant name is empty", domain.ErrInvalidPolicy)
	}
	switch v.Formula {
	case FormulaAverage, FormulaLinear:
	default:
		return fmt.Errorf("%w: variant %s: unknown formula %q", domain.ErrInvalidPolicy, v.Name, v.Formula)
	}
	if v.Formula == FormulaLinear && (v.Span <= 0 || v.Span > 100) {
		return fmt.Errorf("%w: variant %s: linear span %v must be within (0, 100]", domain.ErrInvalidPolicy, v.Name, v.Span)
	}
	if _, ok := overridePresets[v.Override]; !ok && len(v.Keywords) == 0 {
		return fmt.Errorf("%w: variant %s: unknown override %q", domain.ErrInvalidPolicy, v.Name, v.Override)
	}
	if v.Base < domain.MinProbability || v.Base > domain.MaxProbability {
		return fmt.Errorf("%w: variant %s: base %v out of range", domain.ErrInvalidPolicy, v.Name, v.Base)
	}
	if v.FallbackScore < 0 || v.FallbackScore > 1 {
		return fmt.Errorf("%w: variant %s: fallback score %v out of range", domain.ErrInvalidPolicy, v.Name, v.FallbackScore)
	}
	if v.FallbackProbability < domain.MinProbability || v.FallbackProbability > domain.MaxProbability {
		return fmt.Errorf("%w: variant %s: fallback probability %v out of range", domain.ErrInvalidPolicy, v.Name, v.FallbackProbability)
	}
	if v.SupportSlots < 0 || v.SupportSlots > MaxSupportSlots {
		return fmt.Errorf("%w: variant %s: support slots must be 0-%d", domain.ErrInvalidPolicy, v.Name, MaxSupportSlots)
	}
	if v.FixedIncrement < 0 || v.FixedIncrement > domain.MaxIncrement {
		return fmt.Errorf("%w: variant %s: fixed increment %v out of range", domain.ErrInvalidPolicy, v.Name, v.FixedIncrement)
	}
	if v.Pacing < 0 || v.Pacing > MaxPacing {
		return fmt.Errorf("%w: variant %s: pacing must be 0-%s", domain.ErrInvalidPolicy, v.Name, MaxPacing)
	}
	return nil
}

// Probability converts a positive score into the displayed probability,
// rounded to one decimal place and clamped to [0, 99.9].
func (v Variant) Probability(score float64) float64 {
	var p float64
	switch v.Formula {
	case FormulaLinear:
		p = v.Base + v.Span*score
	default:
		p = (v.Base + score*100) / 2
	}
	return utils.Clamp(utils.RoundTo(p, 1), domain.MinProbability, domain.MaxProbability)
}

// keywords returns the override word list in folded form.
func (v Variant) keywords() []string {
	words := v.Keywords
	if len(words) == 0 {
		words = overridePresets[v.Override]
	}
	out := make([]string, 0, len(words))
	fold := cases.Fold()
	for _, w := range words {
		out = append(out, fold.String(strings.TrimSpace(w)))
	}
	return out
}

// ApplyOverride forces a positive verdict when the wish contains one of the
// variant's keywords as a whole word. A flipped verdict keeps the model's
// confidence by inverting the score. It reports whether the label changed.
func (v Variant) ApplyOverride(text string, r sentiment.Result) (sentiment.Result, bool) {
	if r.IsPositive() {
		return r, false
	}
	keywords := v.keywords()
	if len(keywords) == 0 {
		return r, false
	}

	words := strings.FieldsFunc(cases.Fold().String(text), func(c rune) bool {
		return !unicode.IsLetter(c) && !unicode.IsDigit(c)
	})
	for _, w := range words {
		for _, k := range keywords {
			if w == k {
				return sentiment.Result{
					Label: domain.LabelPositive,
					Score: utils.Clamp(1-r.Score, 0, 1),
				}, true
			}
		}
	}
	return r, false
}

// Policy holds the known variants and which one is active.
type Policy struct {
	mu       sync.RWMutex
	variants map[string]Variant
	active   string
}

// NewPolicy creates a policy with the builtin variants and activates name.
func NewPolicy(name string) (*Policy, error) {
	p := &Policy{variants: BuiltinVariants()}
	if name == "" {
		name = DefaultVariant
	}
	if err := p.SetActive(name); err != nil {
		return nil, err
	}
	return p, nil
}

// Active returns a copy of the active variant.
func (p *Policy) Active() Variant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v := p.variants[p.active]
	v.Keywords = append([]string(nil), v.Keywords...)
	return v
}

// SetActive switches the active variant.
func (p *Policy) SetActive(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.variants[name]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownVariant, name)
	}
	p.active = name
	return nil
}

// Variants lists every known variant sorted by name.
func (p *Policy) Variants() []Variant {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Variant, 0, len(p.variants))
	for _, v := range p.variants {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Replace validates a full policy document and swaps it in atomically.
// Builtin variants stay available unless the document redefines them.
func (p *Policy) Replace(doc Document) error {
	variants := BuiltinVariants()
	for name, v := range doc.Variants {
		if v.Name == "" {
			v.Name = name
		}
		if v.Name != name {
			return fmt.Errorf("%w: variant key %q does not match name %q", domain.ErrInvalidPolicy, name, v.Name)
		}
		if err := v.Validate(); err != nil {
			return err
		}
		variants[name] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	active := doc.Active
	if active == "" {
		active = p.active
	}
	if _, ok := variants[active]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownVariant, active)
	}
	p.variants = variants
	p.active = active
	return nil
}
