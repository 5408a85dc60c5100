package wish

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/osse101/WishEval_Go/internal/domain"
)

// NewWishID derives a short identifier from the wish text and the time it was made.
// It only namespaces share links, so md5 is sufficient.
func NewWishID(text string, at time.Time) string {
	seconds := float64(at.UnixNano()) / float64(time.Second)
	sum := md5.Sum([]byte(text + "_" + strconv.FormatFloat(seconds, 'f', -1, 64)))
	return hex.EncodeToString(sum[:])[:domain.WishIDLength]
}
