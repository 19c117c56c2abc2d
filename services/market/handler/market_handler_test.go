package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	market "farmer-market/internal/marketService"
	"farmer-market/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) Notify(to, body string) {}

type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(event string, payload any) {}

// fakeInterpreter echoes a canned reply so webhook tests only exercise the
// HTTP contract.
type fakeInterpreter struct {
	from, body string
	reply      string
}

func (f *fakeInterpreter) Handle(from, body string) string {
	f.from, f.body = from, body
	return f.reply
}

func setupHandler(interp SMSInterpreter) (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	service := market.NewMarketService(repo, noopNotifier{}, noopBroadcaster{})
	h := NewMarketHandler(service, interp)

	router := gin.New()
	router.POST("/sms", h.SMSWebhookHandler)
	router.GET("/api/v1/generate_contract/:lot_id", h.GenerateContractHandler)
	router.POST("/api/v1/confirm_sale/:lot_id", h.ConfirmSaleHandler)
	router.POST("/api/v1/login", h.LoginHandler)
	return router, repo
}

func TestSMSWebhookHandler_RepliesWithTwiML(t *testing.T) {
	interp := &fakeInterpreter{reply: "Lot listed! Crop: wheat, Quantity: 500.0kg. Lot ID: 1 at your minimum price of Rs. 2275.0."}
	router, _ := setupHandler(interp)

	form := url.Values{}
	form.Set("Body", "LIST wheat 500")
	form.Set("From", "+911111111111")

	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "+911111111111", interp.from)
	require.Equal(t, "LIST wheat 500", interp.body)
	require.Contains(t, w.Body.String(), "<Response>")
	require.Contains(t, w.Body.String(), "<Message>Lot listed! Crop: wheat, Quantity: 500.0kg. Lot ID: 1 at your minimum price of Rs. 2275.0.</Message>")
}

func TestGenerateContractHandler_NonNumericLotID(t *testing.T) {
	router, _ := setupHandler(&fakeInterpreter{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generate_contract/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmSaleHandler_NonNumericLotID(t *testing.T) {
	router, _ := setupHandler(&fakeInterpreter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/confirm_sale/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginHandler_MissingFields(t *testing.T) {
	router, _ := setupHandler(&fakeInterpreter{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(`{"phone_number": "+911111111111"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials")
}
