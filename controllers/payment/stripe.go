package paymentControllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

// MinimumAmount is the smallest chargeable amount in cents.
const MinimumAmount = 50

// StripeBaseURL is overridable so tests can point at a fake processor.
var StripeBaseURL = "https://api.stripe.com"

type CreatePaymentIntentRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Metadata map[string]string `json:"metadata"`
}

type stripeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func getStripeKey() (string, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return "", fmt.Errorf("stripe configuration missing")
	}
	return key, nil
}

// createPaymentIntent calls the Stripe API with form-encoded fields.
func createPaymentIntent(amount int64, currency string, metadata map[string]string) (*stripeIntentResponse, error) {
	secretKey, err := getStripeKey()
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")
	for key, value := range metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	req, err := http.NewRequest("POST", StripeBaseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Stripe: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var intent stripeIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse Stripe response: %v", err)
	}
	if intent.Error != nil {
		return nil, fmt.Errorf("stripe error: %s", intent.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("stripe returned empty client secret")
	}

	return &intent, nil
}

// CreatePaymentIntentHandler proxies payment-intent creation so the secret key
// never reaches the browser.
func CreatePaymentIntentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePaymentIntentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		if req.Amount < MinimumAmount {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be at least $0.50"})
			return
		}
		currency := req.Currency
		if currency == "" {
			currency = "usd"
		}

		intent, err := createPaymentIntent(req.Amount, currency, req.Metadata)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    intent.ClientSecret,
			"paymentIntentId": intent.ID,
		})
	}
}

// HealthHandler reports service liveness.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// StripeWebhookHandler reconciles payment outcomes pushed by Stripe. The
// signature is checked by middleware before this runs.
func StripeWebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read webhook body"})
			return
		}

		var event struct {
			Type string `json:"type"`
			Data struct {
				Object struct {
					ID string `json:"id"`
				} `json:"object"`
			} `json:"data"`
		}
		if err := json.Unmarshal(body, &event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
			return
		}

		var newStatus models.PaymentStatus
		switch event.Type {
		case "payment_intent.succeeded":
			newStatus = models.PaymentStatusSucceeded
		case "payment_intent.payment_failed":
			newStatus = models.PaymentStatusFailed
		case "charge.refunded":
			newStatus = models.PaymentStatusRefunded
		default:
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}

		if event.Data.Object.ID != "" {
			if err := db.Model(&models.Order{}).
				Where("stripe_payment_intent_id = ?", event.Data.Object.ID).
				Update("payment_status", newStatus).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
