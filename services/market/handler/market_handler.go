package handler

import (
	"errors"
	"net/http"
	"strconv"

	"farmer-market/internal/marketerrors"
	market "farmer-market/internal/marketService"
	model "farmer-market/internal/models"
	"farmer-market/services/market/helpers"
	"farmer-market/utils"

	"github.com/gin-gonic/gin"
)

type MarketServiceInterface interface {
	OpenLots() ([]market.OpenLot, error)
	HistoricalPrices(cropType, district string) ([]float64, error)
	GenerateContract(lotID int64) (string, error)
	ConfirmSale(lotID int64) error
	Login(phoneNumber, loginCode string) (model.User, error)
}

// SMSInterpreter executes one inbound SMS command and returns the reply text.
type SMSInterpreter interface {
	Handle(from, body string) string
}

type MarketHandler struct {
	service     MarketServiceInterface
	interpreter SMSInterpreter
}

func NewMarketHandler(service MarketServiceInterface, interpreter SMSInterpreter) *MarketHandler {
	return &MarketHandler{service: service, interpreter: interpreter}
}

// IndexHandler handles GET /
func (h *MarketHandler) IndexHandler(c *gin.Context) {
	c.String(http.StatusOK, "Farmer Marketplace Backend is running!")
}

// SMSWebhookHandler handles POST /sms. The provider posts form fields Body
// and From; the response is TwiML carrying the single reply message.
func (h *MarketHandler) SMSWebhookHandler(c *gin.Context) {
	body := c.PostForm("Body")
	from := c.PostForm("From")

	reply := h.interpreter.Handle(from, body)

	helpers.LogSuccess("SMSWebhookHandler", "command handled", map[string]any{
		"from":  from,
		"reply": reply,
	})
	c.XML(http.StatusOK, helpers.TwiML{Message: reply})
}

// GetLotsHandler handles GET /api/v1/lots
func (h *MarketHandler) GetLotsHandler(c *gin.Context) {
	lots, err := h.service.OpenLots()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	resp := make([]helpers.LotResponse, 0, len(lots))
	for _, l := range lots {
		resp = append(resp, helpers.LotResponse{
			ID:         l.Lot.ID,
			CropType:   l.Lot.CropType,
			QuantityKg: l.Lot.QuantityKg,
			MinPrice:   l.Lot.MinPrice,
			HighestBid: l.HighestBid,
		})
	}

	c.JSON(http.StatusOK, resp)
	helpers.LogSuccess("GetLotsHandler", "open lots retrieved", map[string]any{"count": len(resp)})
}

// HistoricalPricesHandler handles GET /api/v1/historical_prices/:crop_type/:district
func (h *MarketHandler) HistoricalPricesHandler(c *gin.Context) {
	cropType := c.Param("crop_type")
	district := c.Param("district")

	prices, err := h.service.HistoricalPrices(cropType, district)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	c.JSON(http.StatusOK, helpers.HistoricalPricesResponse{HistoricalPrices: prices})
	helpers.LogSuccess("HistoricalPricesHandler", "historical prices retrieved", map[string]any{
		"crop_type": cropType,
		"district":  district,
	})
}

// GenerateContractHandler handles GET /api/v1/generate_contract/:lot_id
func (h *MarketHandler) GenerateContractHandler(c *gin.Context) {
	lotID, err := strconv.ParseInt(c.Param("lot_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err, "lot not found")
		return
	}

	contract, err := h.service.GenerateContract(lotID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	c.JSON(http.StatusOK, helpers.ContractResponse{Contract: contract})
	helpers.LogSuccess("GenerateContractHandler", "contract generated", map[string]any{"lot_id": lotID})
}

// ConfirmSaleHandler handles POST /api/v1/confirm_sale/:lot_id
func (h *MarketHandler) ConfirmSaleHandler(c *gin.Context) {
	lotID, err := strconv.ParseInt(c.Param("lot_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err, "lot not found")
		return
	}

	if err := h.service.ConfirmSale(lotID); err != nil {
		// A lot without bids cannot be sold; that is a caller error, not a
		// missing resource.
		if errors.Is(err, marketerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusBadRequest, err, "No bids to confirm sale for this lot.")
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Sale confirmed and notifications sent.")
	helpers.LogSuccess("ConfirmSaleHandler", "sale confirmed", map[string]any{"lot_id": lotID})
}

// LoginHandler handles POST /api/v1/login
func (h *MarketHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, err, "Invalid credentials")
		return
	}

	user, err := h.service.Login(req.PhoneNumber, req.LoginCode)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		return
	}

	c.JSON(http.StatusOK, helpers.LoginResponse{
		Message:  "Login successful",
		UserID:   user.ID,
		UserType: user.UserType,
	})
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{"user_id": user.ID})
}
