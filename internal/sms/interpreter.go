// Package sms turns free-text inbound messages into marketplace actions.
//
// Three commands are recognized, matched on the first whitespace token after
// lower-casing:
//
//	LIST <CROP> <QTY> [<MIN_PRICE>]    list a lot for sale
//	BID <LOT_ID> <AMOUNT>              bid on a lot
//	COLLECTIVE <CROP> <QTY> <DISTRICT> join or start a collective lot
//
// A recognized command with bad arguments gets that command's format-error
// reply; anything else gets the generic help text. Failed commands never
// mutate state.
package sms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"farmer-market/internal/marketerrors"
	"farmer-market/internal/models"
	"farmer-market/utils"
)

// Reply texts for unrecognized or malformed commands.
const (
	helpReply             = "Welcome to the marketplace! Commands: 'LIST <CROP> <QTY> [PRICE]' or 'BID <LOT_ID> <AMT>'."
	listFormatReply       = "Invalid format. Use 'LIST CROP QUANTITY [PRICE]'."
	bidFormatReply        = "Invalid format. Use 'BID LOT_ID AMOUNT'."
	collectiveFormatReply = "Invalid format. Use 'COLLECTIVE CROP QUANTITY DISTRICT'."
)

// MarketService is the slice of business logic the interpreter drives.
type MarketService interface {
	ListLot(phoneNumber, cropType string, quantityKg float64, minPrice *float64) (models.Lot, error)
	PlaceBid(phoneNumber string, lotID int64, amount float64) (models.Bid, error)
	JoinCollective(phoneNumber, cropType string, quantityKg float64, district string) (models.Lot, bool, error)
	GetLot(lotID int64) (models.Lot, error)
}

// Interpreter parses inbound SMS bodies and executes them against the market
type Interpreter struct {
	service MarketService
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(service MarketService) *Interpreter {
	return &Interpreter{service: service}
}

// Handle executes one inbound message from a phone number and returns the
// reply text to send back.
func (i *Interpreter) Handle(from, body string) string {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(body)))

	var command string
	if len(parts) > 0 {
		command = parts[0]
	}

	switch {
	case command == "list" && len(parts) >= 3:
		return i.handleList(from, parts)
	case command == "bid" && len(parts) == 3:
		return i.handleBid(from, parts)
	case command == "collective" && len(parts) >= 3:
		return i.handleCollective(from, parts)
	default:
		return helpReply
	}
}

// handleList processes LIST <CROP> <QTY> [<MIN_PRICE>]
func (i *Interpreter) handleList(from string, parts []string) string {
	cropType := parts[1]

	quantity, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return listFormatReply
	}

	var minPrice *float64
	if len(parts) > 3 {
		price, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return listFormatReply
		}
		minPrice = &price
	}

	lot, err := i.service.ListLot(from, cropType, quantity, minPrice)
	if err != nil {
		utils.Error("sms: list command failed", map[string]any{"from": from, "error": err.Error()})
		return listFormatReply
	}

	priceMsg := " at the current MSP"
	if lot.MinPrice != nil {
		priceMsg = fmt.Sprintf(" at your minimum price of Rs. %.1f", *lot.MinPrice)
	}
	return fmt.Sprintf("Lot listed! Crop: %s, Quantity: %.1fkg. Lot ID: %d%s.", lot.CropType, lot.QuantityKg, lot.ID, priceMsg)
}

// handleBid processes BID <LOT_ID> <AMOUNT>
func (i *Interpreter) handleBid(from string, parts []string) string {
	lotID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return bidFormatReply
	}
	amount, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return bidFormatReply
	}

	bid, err := i.service.PlaceBid(from, lotID, amount)
	switch {
	case err == nil:
		return fmt.Sprintf("Your bid of Rs. %.1f for lot %d has been recorded.", bid.Amount, bid.LotID)
	case errors.Is(err, marketerrors.ErrLotNotFound), errors.Is(err, marketerrors.ErrLotNotOpen):
		return "Lot is not available for bidding."
	case errors.Is(err, marketerrors.ErrBidTooLow):
		if lot, lotErr := i.service.GetLot(lotID); lotErr == nil && lot.MinPrice != nil {
			return fmt.Sprintf("Your bid is too low. Minimum price is Rs. %.1f.", *lot.MinPrice)
		}
		return "Your bid is too low."
	default:
		utils.Error("sms: bid command failed", map[string]any{"from": from, "error": err.Error()})
		return bidFormatReply
	}
}

// handleCollective processes COLLECTIVE <CROP> <QTY> <DISTRICT>. A missing
// district token is a format error, same as a bad number.
func (i *Interpreter) handleCollective(from string, parts []string) string {
	cropType := parts[1]

	quantity, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return collectiveFormatReply
	}
	if len(parts) < 4 {
		return collectiveFormatReply
	}
	district := parts[3]

	lot, joined, err := i.service.JoinCollective(from, cropType, quantity, district)
	if err != nil {
		utils.Error("sms: collective command failed", map[string]any{"from": from, "error": err.Error()})
		return collectiveFormatReply
	}

	if joined {
		return fmt.Sprintf("You have joined the collective lot for %s. Total quantity is now %.1fkg. Collective Lot ID: %d", lot.CropType, lot.QuantityKg, lot.ID)
	}
	return fmt.Sprintf("New collective lot for %s created. Lot ID: %d.", lot.CropType, lot.ID)
}
