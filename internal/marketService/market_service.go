package market

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmer-market/internal/marketerrors"
	"farmer-market/internal/models"
	"farmer-market/internal/pricing"
	"farmer-market/internal/repository"
	"farmer-market/utils"
)

const loginCodeLength = 12

// Notifier is the fire-and-forget message capability used for welcome codes,
// MSP alerts and sale outcomes.
type Notifier interface {
	Notify(to, body string)
}

// Broadcaster pushes events to connected dashboard clients.
type Broadcaster interface {
	Broadcast(event string, payload any)
}

// OpenLot is an open lot together with its derived highest bid
// (0 when no bids exist).
type OpenLot struct {
	Lot        models.Lot
	HighestBid float64
}

// MarketService defines the business logic for the crop marketplace
type MarketService struct {
	repo        repository.MarketDB
	notifier    Notifier
	broadcaster Broadcaster
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB, notifier Notifier, broadcaster Broadcaster) *MarketService {
	return &MarketService{
		repo:        repo,
		notifier:    notifier,
		broadcaster: broadcaster,
	}
}

// GetOrCreateUser looks a user up by phone number, creating the record on
// first contact. New users get a generated login code for the web portal,
// delivered by SMS. The district argument only applies at creation; an
// existing user's district is never overwritten.
func (s *MarketService) GetOrCreateUser(phoneNumber, userType, district string) (models.User, error) {
	if phoneNumber == "" {
		return models.User{}, fmt.Errorf("service: %w - missing phone number", marketerrors.ErrInvalidInput)
	}

	user, err := s.repo.GetUserByPhone(phoneNumber)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to look up user %s: %w", phoneNumber, err)
	}

	user, err = s.repo.CreateUser(models.User{
		PhoneNumber: phoneNumber,
		UserType:    userType,
		District:    district,
		LoginCode:   utils.GenerateLoginCode(loginCodeLength),
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", phoneNumber, err)
	}

	s.notifier.Notify(phoneNumber, fmt.Sprintf("Welcome to Farmer Market! Your login code is %s. Use this for the web portal.", user.LoginCode))
	return user, nil
}

// ListLot registers the caller as a farmer and creates an open lot. When the
// farmer states no minimum price, the crop's MSP is used; unknown crops get
// no floor at all.
func (s *MarketService) ListLot(phoneNumber, cropType string, quantityKg float64, minPrice *float64) (models.Lot, error) {
	if cropType == "" {
		return models.Lot{}, fmt.Errorf("service: %w - missing crop type", marketerrors.ErrInvalidInput)
	}

	if minPrice == nil {
		if msp, ok := pricing.MSP(cropType); ok {
			minPrice = &msp
		}
	}

	user, err := s.GetOrCreateUser(phoneNumber, models.UserTypeFarmer, "")
	if err != nil {
		return models.Lot{}, err
	}

	lot, err := s.repo.CreateLot(models.Lot{
		FarmerID:   user.ID,
		CropType:   cropType,
		QuantityKg: quantityKg,
		MinPrice:   minPrice,
		Status:     models.LotStatusOpen,
	})
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to create lot for %s: %w", phoneNumber, err)
	}
	return lot, nil
}

// GetLot returns a lot by id
func (s *MarketService) GetLot(lotID int64) (models.Lot, error) {
	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to get lot %d: %w", lotID, err)
	}
	return lot, nil
}

// PlaceBid registers the caller as a buyer and records a bid on an open lot.
// The bid is rejected when the lot is missing, not open, or the amount is
// below the lot's minimum price. An accepted bid is broadcast to the
// dashboard; if it is still below the crop's MSP, the lot's farmer gets an
// advisory alert, which never blocks the bid.
func (s *MarketService) PlaceBid(phoneNumber string, lotID int64, amount float64) (models.Bid, error) {
	user, err := s.GetOrCreateUser(phoneNumber, models.UserTypeBuyer, "")
	if err != nil {
		return models.Bid{}, err
	}

	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to get lot %d for bid: %w", lotID, err)
	}
	if lot.Status != models.LotStatusOpen {
		return models.Bid{}, fmt.Errorf("service: %w - lot %d has status %s", marketerrors.ErrLotNotOpen, lotID, lot.Status)
	}
	if lot.MinPrice != nil && amount < *lot.MinPrice {
		return models.Bid{}, fmt.Errorf("service: %w - minimum price is %.1f", marketerrors.ErrBidTooLow, *lot.MinPrice)
	}

	bid := models.Bid{
		BidID:     utils.GenerateID(),
		LotID:     lotID,
		BidderID:  user.ID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.RecordBidForLot(bid); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on lot %d: %w", lotID, err)
	}

	s.broadcaster.Broadcast("bid_update", map[string]any{"lot_id": lotID, "bid_amount": amount})

	if msp, ok := pricing.MSP(strings.ToLower(lot.CropType)); ok && amount < msp {
		if farmer, err := s.repo.GetUserByID(lot.FarmerID); err == nil && farmer.PhoneNumber != "" {
			s.notifier.Notify(farmer.PhoneNumber,
				fmt.Sprintf("ALERT: A bid of Rs. %.1f on your %s lot %d is below the MSP of Rs. %.1f.", amount, lot.CropType, lotID, msp))
		}
	}

	return bid, nil
}

// JoinCollective adds the caller's contribution to the open collective lot
// for a crop, creating one if none exists. The returned bool reports whether
// an existing lot was joined. The stated district is stored on the farmer at
// creation but is not part of the lot match key.
func (s *MarketService) JoinCollective(phoneNumber, cropType string, quantityKg float64, district string) (models.Lot, bool, error) {
	if cropType == "" {
		return models.Lot{}, false, fmt.Errorf("service: %w - missing crop type", marketerrors.ErrInvalidInput)
	}

	user, err := s.GetOrCreateUser(phoneNumber, models.UserTypeFarmer, district)
	if err != nil {
		return models.Lot{}, false, err
	}

	lot, err := s.repo.FindOpenCollectiveLot(cropType)
	if err == nil {
		updated, err := s.repo.AddCollectiveContribution(lot.ID, user.ID, quantityKg)
		if err != nil {
			return models.Lot{}, false, fmt.Errorf("service: failed to join collective lot %d: %w", lot.ID, err)
		}
		return updated, true, nil
	}
	if !errors.Is(err, marketerrors.ErrLotNotFound) {
		return models.Lot{}, false, fmt.Errorf("service: failed to find collective lot for %s: %w", cropType, err)
	}

	created, err := s.repo.CreateLot(models.Lot{
		FarmerID:     user.ID,
		CropType:     cropType,
		QuantityKg:   quantityKg,
		Status:       models.LotStatusOpen,
		IsCollective: true,
		Members:      []int64{user.ID},
	})
	if err != nil {
		return models.Lot{}, false, fmt.Errorf("service: failed to create collective lot for %s: %w", cropType, err)
	}
	return created, false, nil
}

// OpenLots returns all open lots with their derived highest bid
func (s *MarketService) OpenLots() ([]OpenLot, error) {
	lots, err := s.repo.GetOpenLots()
	if err != nil {
		return nil, fmt.Errorf("service: failed to get open lots: %w", err)
	}

	result := make([]OpenLot, 0, len(lots))
	for _, lot := range lots {
		highest, err := s.HighestBidAmount(lot.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, OpenLot{Lot: lot, HighestBid: highest})
	}
	return result, nil
}

// HighestBidAmount returns the highest bid amount for a lot, or 0 when the
// lot has no bids.
func (s *MarketService) HighestBidAmount(lotID int64) (float64, error) {
	highest, err := s.repo.GetHighestBid(lotID)
	if errors.Is(err, marketerrors.ErrNoBids) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("service: failed to get highest bid for lot %d: %w", lotID, err)
	}
	return highest.Amount, nil
}

// ConfirmSale marks a lot as sold to its highest bidder and notifies both
// parties. It fails when the lot is missing or has no bids; the lot's status
// is then left unchanged.
func (s *MarketService) ConfirmSale(lotID int64) error {
	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return fmt.Errorf("service: failed to get lot %d for sale: %w", lotID, err)
	}

	winning, err := s.repo.GetHighestBid(lotID)
	if err != nil {
		return fmt.Errorf("service: failed to resolve winning bid for lot %d: %w", lotID, err)
	}

	if err := s.repo.SetLotStatus(lotID, models.LotStatusSold); err != nil {
		return fmt.Errorf("service: failed to mark lot %d sold: %w", lotID, err)
	}

	if farmer, err := s.repo.GetUserByID(lot.FarmerID); err == nil {
		s.notifier.Notify(farmer.PhoneNumber,
			fmt.Sprintf("CONGRATS! Your %s lot %d has been sold for Rs. %.1f per kg.", lot.CropType, lot.ID, winning.Amount))
	}
	if buyer, err := s.repo.GetUserByID(winning.BidderID); err == nil {
		s.notifier.Notify(buyer.PhoneNumber,
			fmt.Sprintf("SUCCESS! Your bid of Rs. %.1f per kg for lot %d has won the auction. The lot is now closed.", winning.Amount, lot.ID))
	}

	return nil
}

// GenerateContract renders the advance-sale contract text for a lot and its
// current highest bid. It fails when the lot is missing or has no bids.
// Regeneration always reflects the current highest bid.
func (s *MarketService) GenerateContract(lotID int64) (string, error) {
	lot, err := s.repo.GetLot(lotID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get lot %d for contract: %w", lotID, err)
	}

	winning, err := s.repo.GetHighestBid(lotID)
	if err != nil {
		return "", fmt.Errorf("service: failed to resolve winning bid for lot %d: %w", lotID, err)
	}

	farmer, err := s.repo.GetUserByID(lot.FarmerID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get farmer for lot %d: %w", lotID, err)
	}
	buyer, err := s.repo.GetUserByID(winning.BidderID)
	if err != nil {
		return "", fmt.Errorf("service: failed to get buyer for lot %d: %w", lotID, err)
	}

	contract := fmt.Sprintf(`
    --- CONTRACT FOR ADVANCE SALE ---

    This contract is for the advance sale of agricultural produce.

    1. Seller (Farmer): %s
    2. Buyer: %s

    3. Produce Details:
        - Crop Type: %s
        - Quantity: %.1f kg

    4. Price:
        - Agreed Rate: Rs. %.1f per kg
        - Total Amount: Rs. %.1f

    5. Terms:
        - Payment to be made upon delivery.
        - Quality to be verified upon arrival.

    This is a binding agreement.
    `, farmer.PhoneNumber, buyer.PhoneNumber, lot.CropType, lot.QuantityKg, winning.Amount, winning.Amount*lot.QuantityKg)

	return contract, nil
}

// HistoricalPrices returns the recorded price series for a crop in a district
func (s *MarketService) HistoricalPrices(cropType, district string) ([]float64, error) {
	prices, ok := pricing.Historical(strings.ToLower(cropType), strings.ToLower(district))
	if !ok {
		return nil, fmt.Errorf("service: %w - %s/%s", marketerrors.ErrNoHistoricalData, cropType, district)
	}
	return prices, nil
}

// Login authenticates a web-portal user by phone number and login code
func (s *MarketService) Login(phoneNumber, loginCode string) (models.User, error) {
	user, err := s.repo.GetUserByCredentials(phoneNumber, loginCode)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrInvalidCredentials)
	}
	return user, nil
}
