package marketerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrLotNotFound  = errors.New("lot not found")
	ErrNoBids       = errors.New("no bids found for lot")
)

// business logic errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrLotNotOpen         = errors.New("lot is not open for bidding")
	ErrBidTooLow          = errors.New("bid amount below minimum price")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoHistoricalData   = errors.New("no historical data for crop and district")
)
