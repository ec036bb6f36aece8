package domain

// OrderStatus is the single terminal outcome of one submission.
type OrderStatus string

const (
	Accepted                      OrderStatus = "ACCEPTED"
	Executed                      OrderStatus = "EXECUTED"
	RejectedNoLiquidity           OrderStatus = "REJECTED_NO_LIQUIDITY"
	RejectedFillAndKillNoMatch    OrderStatus = "REJECTED_FILL_AND_KILL_NO_MATCH"
	RejectedFillOrKillPartialFill OrderStatus = "REJECTED_FILL_OR_KILL_PARTIAL_FILL"
	RejectedDuplicateID           OrderStatus = "REJECTED_DUPLICATE_ID"
	RejectedUnsupportedType       OrderStatus = "REJECTED_UNSUPPORTED_TYPE"
)

// IsRejected reports whether the submission left the book untouched.
func (s OrderStatus) IsRejected() bool {
	return s != Accepted && s != Executed
}

// Message returns display text for the status, for hosts that surface
// outcomes directly to users.
func (s OrderStatus) Message() string {
	switch s {
	case Accepted:
		return "order accepted and resting on the book"
	case Executed:
		return "order executed"
	case RejectedNoLiquidity:
		return "order rejected: no liquidity on the opposite side"
	case RejectedFillAndKillNoMatch:
		return "order rejected: fill-and-kill with no possible match"
	case RejectedFillOrKillPartialFill:
		return "order rejected: fill-or-kill cannot be fully filled"
	case RejectedDuplicateID:
		return "order rejected: duplicate order id"
	case RejectedUnsupportedType:
		return "order rejected: order type not supported"
	default:
		return "unknown status"
	}
}

// OrderResult is the outcome of one submission: the assigned id, the
// terminal status, and any trades the crossing loop produced.
type OrderResult struct {
	OrderID OrderID
	Status  OrderStatus
	Trades  []Trade
}
