package llm

import (
	"context"
	"strings"

	"github.com/joseph-ayodele/rider-orders/constants"
	"github.com/joseph-ayodele/rider-orders/internal/common"
)

// ExtractRequest is one image to read order counts from.
type ExtractRequest struct {
	Filename     string
	ImageDataURL string // data:<mime>;base64,<payload>
}

// OrdersExtractor is the interface our pipeline depends on.
// It never fails: errors come back as a CallError sentinel in the reply text.
type OrdersExtractor interface {
	ExtractOrders(ctx context.Context, req ExtractRequest) string
}

// CallError renders err as the sentinel reply recognised by IsCallError.
func CallError(err error) string {
	return constants.CallErrorPrefix + ": " + common.Truncate(err.Error(), constants.CallErrRunes)
}

// IsCallError reports whether a reply is a failed-call sentinel.
func IsCallError(reply string) bool {
	return strings.HasPrefix(reply, constants.CallErrorPrefix)
}
