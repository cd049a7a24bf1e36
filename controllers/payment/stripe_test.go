package paymentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupIntentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/create-payment-intent", CreatePaymentIntentHandler())
	return r
}

func postIntent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/create-payment-intent", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateIntentRejectsAmountBelowMinimum(t *testing.T) {
	r := setupIntentRouter()

	w := postIntent(r, `{"amount": 49, "currency": "usd"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Amount must be at least $0.50", resp["error"])
}

func TestCreateIntentRejectsInvalidBody(t *testing.T) {
	r := setupIntentRouter()

	w := postIntent(r, `{"amount": "not a number"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateIntentProxiesToStripe(t *testing.T) {
	var gotAuth, gotAmount, gotCurrency, gotOrderRef string
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotAmount = r.FormValue("amount")
		gotCurrency = r.FormValue("currency")
		gotOrderRef = r.FormValue("metadata[order_ref]")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_test_123", "client_secret": "pi_test_123_secret_abc"}`))
	}))
	defer fake.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_key")
	old := StripeBaseURL
	StripeBaseURL = fake.URL
	defer func() { StripeBaseURL = old }()

	r := setupIntentRouter()
	w := postIntent(r, `{"amount": 1299, "metadata": {"order_ref": "DL-20260831-001"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.Equal(t, "1299", gotAmount)
	assert.Equal(t, "usd", gotCurrency) // defaulted
	assert.Equal(t, "DL-20260831-001", gotOrderRef)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_test_123_secret_abc", resp["clientSecret"])
	assert.Equal(t, "pi_test_123", resp["paymentIntentId"])
}

func TestCreateIntentSurfacesStripeErrorAsServerError(t *testing.T) {
	fake := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "Your card was declined.", "type": "card_error"}}`))
	}))
	defer fake.Close()

	t.Setenv("STRIPE_SECRET_KEY", "sk_test_key")
	old := StripeBaseURL
	StripeBaseURL = fake.URL
	defer func() { StripeBaseURL = old }()

	r := setupIntentRouter()
	w := postIntent(r, `{"amount": 500, "currency": "eur"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Your card was declined.")
}

func TestCreateIntentFailsWithoutSecretKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	r := setupIntentRouter()
	w := postIntent(r, `{"amount": 500}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/health", HealthHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp["status"])

	_, err := time.Parse(time.RFC3339, resp["timestamp"])
	assert.NoError(t, err)
}
