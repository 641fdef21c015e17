package catalog

import "github.com/ardnew/msgfmt/msg"

// Predefined errors (sentinel values). They share [msg.Error], so attributes
// such as the offending file and key are available through [msg.Attr].
var (
	ErrReadFile        = msg.NewError("failed to read catalog file")
	ErrDecodeFile      = msg.NewError("failed to decode catalog file")
	ErrInvalidLocale   = msg.NewError("invalid locale")
	ErrInvalidEntry    = msg.NewError("invalid catalog entry")
	ErrDuplicateKey    = msg.NewError("duplicate message key")
	ErrMessageNotFound = msg.NewError("message not found")
)

// Attribute keys attached to catalog errors.
const (
	AttrFile    = "file"
	AttrKey     = "key"
	AttrLocale  = "locale"
	AttrSimilar = "similar"
)
