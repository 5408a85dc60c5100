package domain

// Sentiment labels reported by classifiers. Anything other than LabelPositive
// is treated as "other".
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

// Evaluation outcomes used for metrics and responses
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
	OutcomeFallback = "fallback"
)

// Shared support results
const (
	SharedResultApplied   = "applied"
	SharedResultDuplicate = "duplicate"
)

// Probability bounds
const (
	MaxProbability = 99.9
	MinProbability = 0.0

	// CelebrationThreshold is the probability at which the owner gets the celebration message
	CelebrationThreshold = 80.0
)

// Input limits, counted in runes
const (
	MinWishRunes       = 4
	MaxWishRunes       = 2000
	MaxClassifierRunes = 512
	SharePrefixRunes   = 50
	ErrorDetailRunes   = 100
	WishIDLength       = 10
)

// Support increment bounds
const (
	MinIncrement = 1.0
	MaxIncrement = 10.0
)
