package wish

import "time"

// Builtin variant names
const (
	VariantClassic = "classic"
	VariantHopeful = "hopeful"
	VariantFestive = "festive"
	VariantFlag    = "flag"

	DefaultVariant = VariantClassic
)

const (
	// MaxSupportSlots bounds how many buttons a variant may offer
	MaxSupportSlots = 20

	// MaxPacing bounds the cosmetic delay a policy may configure
	MaxPacing = 5 * time.Second

	// policyReloadDebounce collapses bursts of editor writes into one reload
	policyReloadDebounce = 200 * time.Millisecond
)
