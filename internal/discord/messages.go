package discord

// Friendly message constants for Discord responses
const (
	MsgNoWish         = "🌠 **No wish yet**\nUse `/wish` to make one."
	MsgSlotUsed       = "✋ **Already pressed**\nThat support button has been used."
	MsgNotAccepted    = "🌧️ **Not this one**\nSupport and sharing open up once a wish is accepted."
	MsgTooSlow        = "⏳ **That took too long**\nPlease try again."
	MsgInvalidRequest = "❓ **Hmm**\nThat request didn't look right."

	MsgGenericError = "❌ Something went wrong."
	MsgAPIError     = "Error connecting to the wish server."
)

const (
	// SessionPrefix namespaces Discord users in the session store
	SessionPrefix = "discord:"

	ColorAccepted = 0x2ecc71
	ColorRejected = 0xe67e22
	ColorShare    = 0x3498db
)
