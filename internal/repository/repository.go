package repository

import (
	"fmt"
	"sort"
	"sync"

	"farmer-market/internal/marketerrors"
	model "farmer-market/internal/models"
)

// MarketDB defines the storage interface for users, lots and bids
type MarketDB interface {
	CreateUser(user model.User) (model.User, error)
	GetUserByPhone(phoneNumber string) (model.User, error)
	GetUserByID(id int64) (model.User, error)
	GetUserByCredentials(phoneNumber, loginCode string) (model.User, error)

	CreateLot(lot model.Lot) (model.Lot, error)
	GetLot(id int64) (model.Lot, error)
	GetOpenLots() ([]model.Lot, error)
	FindOpenCollectiveLot(cropType string) (model.Lot, error)
	AddCollectiveContribution(lotID, farmerID int64, quantityKg float64) (model.Lot, error)
	SetLotStatus(lotID int64, status string) error

	RecordBidForLot(bid model.Bid) error
	GetBidsByLot(lotID int64) ([]model.Bid, error)
	GetHighestBid(lotID int64) (model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[int64]model.User   // key: userID -> value: user
	phoneIndex map[string]int64       // key: phone number -> value: userID
	lots       map[int64]model.Lot    // key: lotID -> value: lot
	bids       map[int64][]model.Bid  // key: lotID -> value: bids in insertion order
	nextUserID int64
	nextLotID  int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[int64]model.User),
		phoneIndex: make(map[string]int64),
		lots:       make(map[int64]model.Lot),
		bids:       make(map[int64][]model.Bid),
	}
}

// CreateUser stores a new user and assigns its id. Phone numbers are unique;
// creating a duplicate returns the existing record unchanged.
func (r *MemoryRepo) CreateUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.phoneIndex[user.PhoneNumber]; ok {
		return r.users[id], nil
	}

	r.nextUserID++
	user.ID = r.nextUserID
	r.users[user.ID] = user
	r.phoneIndex[user.PhoneNumber] = user.ID
	return user, nil
}

// GetUserByPhone returns the user registered under a phone number
func (r *MemoryRepo) GetUserByPhone(phoneNumber string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.phoneIndex[phoneNumber]
	if !ok {
		return model.User{}, fmt.Errorf("get user by phone %s: %w", phoneNumber, marketerrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

// GetUserByID returns the user with the given id
func (r *MemoryRepo) GetUserByID(id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", id, marketerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetUserByCredentials returns the user matching both phone number and login code
func (r *MemoryRepo) GetUserByCredentials(phoneNumber, loginCode string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.phoneIndex[phoneNumber]
	if !ok || r.users[id].LoginCode != loginCode || loginCode == "" {
		return model.User{}, fmt.Errorf("get user by credentials %s: %w", phoneNumber, marketerrors.ErrUserNotFound)
	}
	return r.users[id], nil
}

// CreateLot stores a new lot and assigns its id
func (r *MemoryRepo) CreateLot(lot model.Lot) (model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextLotID++
	lot.ID = r.nextLotID
	r.lots[lot.ID] = lot
	return copyLot(lot), nil
}

// GetLot returns the lot with the given id
func (r *MemoryRepo) GetLot(id int64) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lot, ok := r.lots[id]
	if !ok {
		return model.Lot{}, fmt.Errorf("get lot %d: %w", id, marketerrors.ErrLotNotFound)
	}
	return copyLot(lot), nil
}

// GetOpenLots returns all open lots ordered by id
func (r *MemoryRepo) GetOpenLots() ([]model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lots := make([]model.Lot, 0)
	for _, lot := range r.lots {
		if lot.Status == model.LotStatusOpen {
			lots = append(lots, copyLot(lot))
		}
	}
	sort.Slice(lots, func(i, j int) bool { return lots[i].ID < lots[j].ID })
	return lots, nil
}

// FindOpenCollectiveLot returns the lowest-id open collective lot for a crop.
// District is deliberately not part of the match key.
func (r *MemoryRepo) FindOpenCollectiveLot(cropType string) (model.Lot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *model.Lot
	for _, lot := range r.lots {
		if lot.IsCollective && lot.Status == model.LotStatusOpen && lot.CropType == cropType {
			if found == nil || lot.ID < found.ID {
				lot := lot
				found = &lot
			}
		}
	}
	if found == nil {
		return model.Lot{}, fmt.Errorf("find open collective lot for %s: %w", cropType, marketerrors.ErrLotNotFound)
	}
	return copyLot(*found), nil
}

// AddCollectiveContribution appends a farmer to an open collective lot's
// membership and adds their quantity. Membership is append-only.
func (r *MemoryRepo) AddCollectiveContribution(lotID, farmerID int64, quantityKg float64) (model.Lot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return model.Lot{}, fmt.Errorf("add contribution to lot %d: %w", lotID, marketerrors.ErrLotNotFound)
	}
	if !lot.IsCollective || lot.Status != model.LotStatusOpen {
		return model.Lot{}, fmt.Errorf("add contribution to lot %d: %w", lotID, marketerrors.ErrLotNotOpen)
	}

	lot.Members = append(lot.Members, farmerID)
	lot.QuantityKg += quantityKg
	r.lots[lotID] = lot
	return copyLot(lot), nil
}

// SetLotStatus transitions a lot to a new status
func (r *MemoryRepo) SetLotStatus(lotID int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lot, ok := r.lots[lotID]
	if !ok {
		return fmt.Errorf("set status of lot %d: %w", lotID, marketerrors.ErrLotNotFound)
	}
	lot.Status = status
	r.lots[lotID] = lot
	return nil
}

// RecordBidForLot records a buyer's bid on a lot
func (r *MemoryRepo) RecordBidForLot(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lots[bid.LotID]; !ok {
		return fmt.Errorf("record bid for lot %d: %w", bid.LotID, marketerrors.ErrLotNotFound)
	}

	r.bids[bid.LotID] = append(r.bids[bid.LotID], bid)
	return nil
}

// GetBidsByLot returns all bids for a lot in insertion order
func (r *MemoryRepo) GetBidsByLot(lotID int64) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for lot %d: %w", lotID, marketerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetHighestBid returns the highest bid for a lot. Ties keep the
// earliest-recorded bid.
func (r *MemoryRepo) GetHighestBid(lotID int64) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[lotID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for lot %d: %w", lotID, marketerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount {
			highest = b
		}
	}
	return highest, nil
}

// copyLot returns a lot with its own membership slice so callers cannot
// mutate stored state.
func copyLot(lot model.Lot) model.Lot {
	if lot.Members != nil {
		lot.Members = append([]int64(nil), lot.Members...)
	}
	return lot
}
