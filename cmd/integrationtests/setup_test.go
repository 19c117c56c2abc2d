package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	market "farmer-market/internal/marketService"
	"farmer-market/internal/realtime"
	"farmer-market/internal/repository"
	"farmer-market/internal/server"
	"farmer-market/internal/sms"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type notifyCall struct {
	to   string
	body string
}

// recordingNotifier stands in for the SMS provider so tests can assert on
// outbound messages.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

func (n *recordingNotifier) Notify(to, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{to: to, body: body})
}

func (n *recordingNotifier) bodiesContaining(substr string) []notifyCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []notifyCall
	for _, c := range n.calls {
		if strings.Contains(c.body, substr) {
			out = append(out, c)
		}
	}
	return out
}

// SetupTestStack wires the full application against an in-memory repository
// and a recording notifier.
func SetupTestStack() (*gin.Engine, *repository.MemoryRepo, *recordingNotifier) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	notifier := &recordingNotifier{}
	hub := realtime.NewHub()
	service := market.NewMarketService(repo, notifier, hub)
	interpreter := sms.NewInterpreter(service)
	router := server.SetupRouter(service, interpreter, hub)
	return router, repo, notifier
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and decodes the JSON object body.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, target string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, router, method, target, body)
	resp := make(map[string]any)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w
}

// SendSMS posts an inbound message to the webhook and returns the TwiML reply.
func SendSMS(t *testing.T, router *gin.Engine, from, body string) string {
	t.Helper()

	form := url.Values{}
	form.Set("From", from)
	form.Set("Body", body)

	req := httptest.NewRequest(http.MethodPost, "/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

// ListOpenLots fetches and decodes GET /api/v1/lots.
func ListOpenLots(t *testing.T, router *gin.Engine) []map[string]any {
	t.Helper()

	w := ExecuteRequest(t, router, http.MethodGet, "/api/v1/lots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lots []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lots))
	return lots
}
