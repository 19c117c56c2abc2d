package models

import "time"

// User types recognized by the marketplace
const (
	UserTypeFarmer = "farmer"
	UserTypeBuyer  = "buyer"
)

// Lot lifecycle states. "closed" is reserved; lots currently move straight
// from open to sold.
const (
	LotStatusOpen   = "open"
	LotStatusClosed = "closed"
	LotStatusSold   = "sold"
)

// User represents a marketplace participant, keyed by phone number.
// Farmers list lots over SMS; buyers bid over SMS or the web dashboard.
type User struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	UserType    string `json:"user_type"`
	District    string `json:"district,omitempty"`
	LoginCode   string `json:"login_code,omitempty"`
}

// Lot represents a quantity of a crop offered for sale.
// MinPrice is nil when neither the farmer nor the MSP table supplied a floor.
// Members holds contributing farmer ids and is only populated for collective lots.
type Lot struct {
	ID           int64    `json:"id"`
	FarmerID     int64    `json:"farmer_id"`
	CropType     string   `json:"crop_type"`
	QuantityKg   float64  `json:"quantity_kg"`
	MinPrice     *float64 `json:"min_price"`
	Status       string   `json:"status"`
	IsCollective bool     `json:"is_collective"`
	Members      []int64  `json:"members,omitempty"`
}

// Bid represents a buyer's offer on a lot. Immutable once recorded.
type Bid struct {
	BidID     string    `json:"bid_id"`
	LotID     int64     `json:"lot_id"`
	BidderID  int64     `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
