package chatControllers

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetdessert/dessert-shop-api/cart"
	"gorm.io/gorm"
)

type ChatStreamRequest struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key"`
}

// ChatStreamHandler is the assistant endpoint. It classifies the message,
// emits any control events (cart updates, checkout redirects, auth prompts),
// then streams the conversational reply.
func ChatStreamHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatStreamRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON in request body"})
			return
		}
		message := strings.TrimSpace(req.Message)
		if message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
			return
		}

		userID := ""
		if userIDVal, exists := c.Get("user_id"); exists {
			userID = userIDVal.(string)
		}
		authenticated := userID != ""

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Status(http.StatusOK)

		out := newSSEWriter(c.Writer)

		intent := DetectIntent(message)
		out.Event(gin.H{
			"type":   "intent_detected",
			"intent": string(intent),
		})

		var matched *chatProduct
		var faqs []faqMatch

		switch intent {
		case IntentListProduct:
			products := ListProducts(db, listFilter(message), 10)
			if len(products) > 0 {
				out.Event(gin.H{
					"type":     "product_list",
					"products": products,
				})
			}

		case IntentFAQ:
			faqs = RelevantFAQs(db, message, 3)
			if len(faqs) > 0 {
				out.Event(gin.H{
					"type": "faq_suggestions",
					"faqs": faqs,
				})
			}

		case IntentCheckout:
			if !authenticated {
				out.Event(gin.H{
					"type":    "auth_required",
					"message": "Please sign in to proceed to checkout",
				})
			} else {
				out.Event(gin.H{"type": "redirect_checkout"})
			}

		case IntentOrder:
			dessert := FindProductInMessage(db, message)
			if dessert == nil {
				break
			}
			if !authenticated {
				out.Event(gin.H{
					"type":    "auth_required",
					"message": "Please sign up or login to place an order",
				})
				break
			}

			engine := cart.NewEngine(cart.NewGormStore(db, userID))
			engine.AddItem(cart.AddInput{
				ProductID: dessert.ID,
				Name:      dessert.Name,
				Price:     dessert.Price,
				Image:     dessert.Image,
				Quantity:  1,
			})

			product := toChatProduct(*dessert)
			product.Quantity = 1
			matched = &product

			out.Event(gin.H{
				"type":           "cart_update",
				"cart":           engine.Items(),
				"added_products": []chatProduct{product},
			})
		}

		apiKey := strings.TrimSpace(req.APIKey)
		if apiKey == "" {
			apiKey = os.Getenv("OPENROUTER_API_KEY")
		}

		if apiKey == "" {
			streamCannedReply(out, intent, matched, faqs)
			return
		}

		relayAssistantReply(c.Request.Context(), out, apiKey, message, intent, matched, faqs, authenticated)
	}
}

func listFilter(message string) string {
	lower := strings.ToLower(message)
	for _, phrase := range []string{"show me all", "show all", "list all", "list me", "show me", "list", "show"} {
		if idx := strings.Index(lower, phrase); idx != -1 {
			rest := strings.TrimSpace(lower[idx+len(phrase):])
			rest = strings.TrimSuffix(rest, "?")
			rest = strings.TrimPrefix(rest, "your ")
			rest = strings.TrimPrefix(rest, "the ")
			if rest == "" || rest == "products" || rest == "desserts" || rest == "menu" {
				return ""
			}
			return strings.TrimSuffix(rest, "s")
		}
	}
	return ""
}
