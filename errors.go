package tradebook

import "errors"

// Error kinds returned by ledger operations. Call sites wrap them with
// context, so callers should test with errors.Is.
var (
	// ErrInvalidInput reports a rejected field value: a non-positive
	// quantity, or a zero-amount cash record.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLotNotFound reports an id that does not resolve to a record of the
	// expected kind.
	ErrLotNotFound = errors.New("lot not found")

	// ErrInsufficientQuantity reports a sale (new or edited) requesting more
	// than the lot's remaining quantity.
	ErrInsufficientQuantity = errors.New("insufficient remaining quantity")

	// ErrDependentRecords reports a deletion blocked by sells still linked
	// to the lot.
	ErrDependentRecords = errors.New("dependent sell records exist")
)
