package client

import "time"

const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond

	maxErrorBodyBytes = 4 << 10
)

// API paths
const (
	PathWish              = "/api/v1/wish"
	PathWishEvaluate      = "/api/v1/wish/evaluate"
	PathWishSupport       = "/api/v1/wish/support"
	PathWishReset         = "/api/v1/wish/reset"
	PathWishShare         = "/api/v1/wish/share"
	PathShared            = "/api/v1/shared"
	PathSharedSupport     = "/api/v1/shared/support"
	PathLuck              = "/api/v1/luck/"
	PathPolicy            = "/api/v1/policy"
	PathAdminReloadPolicy = "/api/v1/admin/reload-policy"
)

const (
	HeaderAPIKey = "X-API-Key"

	ParamWishID = "wish_id"
	ParamWish   = "wish"
)
