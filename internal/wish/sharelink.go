package wish

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/osse101/WishEval_Go/internal/domain"
	"github.com/osse101/WishEval_Go/internal/utils"
)

// Share link query parameters
const (
	ParamWishID = "wish_id"
	ParamWish   = "wish"
)

// BuildShareLink returns <base>?wish_id=<id>&wish=<escaped first 50 runes>.
func BuildShareLink(baseURL, wishID, text string) domain.ShareLink {
	prefix := utils.TruncateRunes(text, domain.SharePrefixRunes)

	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}

	return domain.ShareLink{
		URL:        baseURL + sep + ParamWishID + "=" + url.QueryEscape(wishID) + "&" + ParamWish + "=" + url.QueryEscape(prefix),
		WishID:     wishID,
		WishPrefix: prefix,
	}
}

// ParseShareLink extracts the wish ID and text from a share link or a bare query string.
func ParseShareLink(link string) (wishID, text string, err error) {
	raw := link
	if i := strings.IndexByte(link, '?'); i >= 0 {
		raw = link[i+1:]
	}
	values, err := url.ParseQuery(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", domain.ErrInvalidShareLink, err)
	}
	return ParseShareParams(values.Get(ParamWishID), values.Get(ParamWish))
}

// ParseShareParams validates already-decoded share parameters. Both must be present.
func ParseShareParams(wishID, text string) (string, string, error) {
	if wishID == "" || text == "" {
		return "", "", fmt.Errorf("%w: both %s and %s are required", domain.ErrInvalidShareLink, ParamWishID, ParamWish)
	}
	if err := ValidateShareWishID(wishID); err != nil {
		return "", "", err
	}
	return wishID, utils.TruncateRunes(text, domain.SharePrefixRunes), nil
}

// ValidateShareWishID checks the wish_id half of a share link on its own.
func ValidateShareWishID(wishID string) error {
	if wishID == "" {
		return fmt.Errorf("%w: %s is required", domain.ErrInvalidShareLink, ParamWishID)
	}
	if !domain.IsValidWishID(wishID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidWishID, wishID)
	}
	return nil
}
