package wish

import "fmt"

// User facing messages
const (
	MsgAccepted         = "Nice work! That's a wonderful wish."
	MsgNotSpecific      = "Hmm, You might want to think of a more specific one."
	MsgTooShort         = "Please enter a wish (at least 4 characters)"
	MsgTooLong          = "That wish is a little long. Try to keep it under 2000 characters."
	MsgCelebrate        = "Your friends shared their luck with you! Just do it to make it happen. Good luck!"
	MsgAlreadySupported = "You've already supported this wish!"
	MsgSharedInvite     = "I just made a wish for 2026. Please click the heart button to share your luck!"
	MsgLinkReady        = "Link ready to share"
)

// FallbackMessage is shown when the classifier failed and a fixed probability was used.
func FallbackMessage(probability float64) string {
	return fmt.Sprintf("Your wish has been recorded! Probability: %s%%", formatPercent(probability))
}

// SharedThanksMessage is shown after a friend's support has been applied.
func SharedThanksMessage(increment float64) string {
	return fmt.Sprintf("Thank you! You added +%s%% luck!", formatPercent(increment))
}

// formatPercent prints whole numbers without a decimal and everything else with one.
func formatPercent(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
