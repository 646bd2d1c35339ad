package gateway

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmountMismatch rejects an open-payment call whose line items do not
// sum to the declared amount. Raised before any network I/O.
var ErrAmountMismatch = errors.New("line item sum does not match declared amount")

// duplicateOrderCode is the provider code for "an order with the same
// orderId already exists" — evidence of a prior successful confirm, not a
// fresh failure.
const duplicateOrderCode = "1172"

// GatewayError is a non-success application code embedded in the provider's
// response body.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %s: %s", e.Code, e.Message)
}

// IsDuplicateOrder reports whether the provider rejected the call because
// the order was already submitted. Matched on both the code and the message
// text, since some provider endpoints only carry the text.
func (e *GatewayError) IsDuplicateOrder() bool {
	if e.Code == duplicateOrderCode {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "same orderid") ||
		strings.Contains(msg, "existing order") ||
		strings.Contains(msg, "duplicate")
}

// IsDuplicateOrderError is a convenience for callers holding a plain error.
func IsDuplicateOrderError(err error) bool {
	var ge *GatewayError
	return errors.As(err, &ge) && ge.IsDuplicateOrder()
}
