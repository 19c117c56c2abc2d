package helpers

import "encoding/xml"

// Request/Response DTOs
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	LoginCode   string `json:"login_code" binding:"required"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	UserType string `json:"user_type"`
}

type LotResponse struct {
	ID         int64    `json:"id"`
	CropType   string   `json:"crop_type"`
	QuantityKg float64  `json:"quantity_kg"`
	MinPrice   *float64 `json:"min_price"`
	HighestBid float64  `json:"highest_bid"`
}

type HistoricalPricesResponse struct {
	HistoricalPrices []float64 `json:"historical_prices"`
}

type ContractResponse struct {
	Contract string `json:"contract"`
}

// TwiML is the reply markup the SMS provider expects from the webhook.
type TwiML struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}
