package wish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/sentiment"
)

func TestVariant_Probability(t *testing.T) {
	builtins := BuiltinVariants()

	tests := []struct {
		name    string
		variant string
		score   float64
		want    float64
	}{
		{"classic 0.9", VariantClassic, 0.9, 75.0},
		{"classic 1.0", VariantClassic, 1.0, 80.0},
		{"classic 0.0", VariantClassic, 0.0, 30.0},
		{"classic rounds", VariantClassic, 0.9876, 79.4},
		{"hopeful 0.9", VariantHopeful, 0.9, 78.0},
		{"festive 0.9", VariantFestive, 0.9, 78.0},
		{"flag 0.5", VariantFlag, 0.5, 70.0},
		{"flag 0.999", VariantFlag, 0.999, 80.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builtins[tt.variant].Probability(tt.score))
		})
	}
}

func TestVariant_ProbabilityClamped(t *testing.T) {
	v := Variant{Name: "hot", Formula: FormulaLinear, Base: 90, Span: 50}
	assert.Equal(t, domain.MaxProbability, v.Probability(1))
}

func TestVariant_ApplyOverride(t *testing.T) {
	builtins := BuiltinVariants()
	negative := sentiment.Result{Label: domain.LabelNegative, Score: 0.8}

	tests := []struct {
		name       string
		variant    string
		text       string
		wantLabel  string
		wantScore  float64
		overridden bool
	}{
		{"hopeful keyword", VariantHopeful, "I HOPE it rains", domain.LabelPositive, 0.2, true},
		{"hopeful punctuation", VariantHopeful, "dream, big!", domain.LabelPositive, 0.2, true},
		{"hopeful needs whole word", VariantHopeful, "wishful thinking", domain.LabelNegative, 0.8, false},
		{"festive keyword", VariantFestive, "Merry days ahead", domain.LabelPositive, 0.2, true},
		{"festive ignores hope", VariantFestive, "I hope so", domain.LabelNegative, 0.8, false},
		{"classic has none", VariantClassic, "I wish I could", domain.LabelNegative, 0.8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overridden := builtins[tt.variant].ApplyOverride(tt.text, negative)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.InDelta(t, tt.wantScore, got.Score, 1e-9)
			assert.Equal(t, tt.overridden, overridden)
		})
	}
}

func TestVariant_ApplyOverride_PositiveUntouched(t *testing.T) {
	v := BuiltinVariants()[VariantHopeful]
	in := sentiment.Result{Label: domain.LabelPositive, Score: 0.95}
	got, overridden := v.ApplyOverride("I wish", in)
	assert.Equal(t, in, got)
	assert.False(t, overridden)
}

func TestVariant_ApplyOverride_CustomKeywords(t *testing.T) {
	v := Variant{Name: "custom", Formula: FormulaLinear, Keywords: []string{"Straße"}}
	got, overridden := v.ApplyOverride("a new STRASSE", sentiment.Result{Label: domain.LabelNegative, Score: 0.6})
	assert.True(t, overridden)
	assert.Equal(t, domain.LabelPositive, got.Label)
}

func TestVariant_Validate(t *testing.T) {
	for name, v := range BuiltinVariants() {
		assert.NoError(t, v.Validate(), name)
	}

	bad := []Variant{
		{},
		{Name: "x", Formula: "cubic"},
		{Name: "x", Formula: FormulaLinear, Override: OverrideNone},
		{Name: "x", Formula: FormulaLinear, Span: -5, Override: OverrideNone},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: "sometimes"},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: OverrideNone, FallbackScore: 2},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: OverrideNone, FallbackProbability: 120},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: OverrideNone, SupportSlots: -1},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: OverrideNone, FixedIncrement: 11},
		{Name: "x", Formula: FormulaLinear, Span: 20, Override: OverrideNone, Pacing: MaxPacing * 2},
	}
	for _, v := range bad {
		assert.ErrorIs(t, v.Validate(), domain.ErrInvalidPolicy, "%+v", v)
	}
}

func TestPolicy_ActiveAndSwitch(t *testing.T) {
	p, err := NewPolicy("")
	require.NoError(t, err)
	assert.Equal(t, VariantClassic, p.Active().Name)

	require.NoError(t, p.SetActive(VariantFestive))
	assert.Equal(t, VariantFestive, p.Active().Name)

	assert.ErrorIs(t, p.SetActive("nope"), domain.ErrUnknownVariant)
	assert.Equal(t, VariantFestive, p.Active().Name)

	_, err = NewPolicy("nope")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)

	names := []string{}
	for _, v := range p.Variants() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{VariantClassic, VariantFestive, VariantFlag, VariantHopeful}, names)
}

func TestPolicy_Replace(t *testing.T) {
	p, err := NewPolicy(VariantClassic)
	require.NoError(t, err)

	err = p.Replace(Document{
		Active: "gentle",
		Variants: map[string]Variant{
			"gentle": {Formula: FormulaLinear, Base: 65, Span: 15, Override: OverrideHopeful, FallbackScore: 0.7, FallbackProbability: 65, SupportSlots: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "gentle", p.Active().Name)
	assert.Equal(t, 78.5, p.Active().Probability(0.9))
	assert.Len(t, p.Variants(), 5)

	err = p.Replace(Document{Active: "broken", Variants: map[string]Variant{"broken": {Formula: "cubic"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
	assert.Equal(t, "gentle", p.Active().Name)

	err = p.Replace(Document{Active: "flat", Variants: map[string]Variant{
		"flat": {Formula: FormulaLinear, Base: 60, Override: OverrideNone},
	}})
	assert.ErrorIs(t, err, domain.ErrInvalidPolicy, "a linear variant without span scores every wish the same")
	assert.Equal(t, "gentle", p.Active().Name)

	err = p.Replace(Document{Active: "missing"})
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}
