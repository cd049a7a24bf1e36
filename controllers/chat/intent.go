package chatControllers

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sweetdessert/dessert-shop-api/models"
	"gorm.io/gorm"
)

type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentCheckout    Intent = "checkout"
	IntentOrder       Intent = "order"
	IntentListProduct Intent = "list_products"
	IntentFAQ         Intent = "faq"
	IntentGeneralChat Intent = "general_chat"
)

var (
	orderKeywords    = []string{"order", "buy", "want", "add", "get", "take", "give me", "i'll have"}
	listKeywords     = []string{"show", "list", "what do you have", "menu", "available", "all"}
	checkoutKeywords = []string{"checkout", "payment", "pay now", "proceed", "done ordering"}
	faqKeywords      = []string{"delivery", "hours", "open", "payment method", "accept", "policy", "refund", "cancel"}
	greetingKeywords = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

	// Generic order phrasings that name no product. The assistant should
	// ask which dessert instead of guessing.
	genericOrderPhrases = []string{
		"order a dessert", "order dessert", "order something", "order anything",
		"buy a dessert", "buy dessert", "get a dessert", "get dessert",
		"want a dessert", "want dessert", "want something sweet",
	}
)

func containsAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

// DetectIntent classifies a message with keyword matching. Checkout wins over
// order so "yes, proceed to payment" never re-adds items.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))

	switch {
	case containsAny(lower, greetingKeywords) && len(lower) < 20:
		return IntentGreeting
	case containsAny(lower, checkoutKeywords):
		return IntentCheckout
	case containsAny(lower, orderKeywords):
		if containsAny(lower, genericOrderPhrases) {
			return IntentGeneralChat
		}
		return IntentOrder
	case containsAny(lower, listKeywords):
		return IntentListProduct
	case containsAny(lower, faqKeywords):
		return IntentFAQ
	default:
		return IntentGeneralChat
	}
}

// chatProduct is the wire shape for product events. Price is a string to
// match what the widget renders.
type chatProduct struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity,omitempty"`
}

func toChatProduct(d models.Dessert) chatProduct {
	category := "Dessert"
	if d.Category != nil {
		category = d.Category.Name
	}
	return chatProduct{
		ID:       d.ID,
		Name:     d.Name,
		Price:    strconv.FormatFloat(d.Price, 'f', 2, 64),
		Category: category,
		Image:    d.Image,
	}
}

// FindProductInMessage matches an available dessert mentioned in the message.
// Tries whole-name containment first, then significant-word matching.
func FindProductInMessage(db *gorm.DB, message string) *models.Dessert {
	normalized := strings.ReplaceAll(strings.ToLower(message), "-", " ")

	var desserts []models.Dessert
	if err := db.Preload("Category").Where("available = ?", true).Find(&desserts).Error; err != nil {
		return nil
	}

	for i := range desserts {
		name := strings.ReplaceAll(strings.ToLower(desserts[i].Name), "-", " ")
		if strings.Contains(normalized, name) {
			return &desserts[i]
		}
	}

	stopWords := map[string]bool{"cake": true, "the": true, "and": true, "with": true}
	for i := range desserts {
		name := strings.ReplaceAll(strings.ToLower(desserts[i].Name), "-", " ")
		var significant []string
		for _, word := range strings.Fields(name) {
			if len(word) > 3 && !stopWords[word] {
				significant = append(significant, word)
			}
		}
		if len(significant) < 2 {
			continue
		}
		allFound := true
		for _, word := range significant {
			if !strings.Contains(normalized, word) {
				allFound = false
				break
			}
		}
		if allFound {
			return &desserts[i]
		}
	}

	return nil
}

// ListProducts returns available desserts, optionally narrowed by a category
// or name fragment from the message.
func ListProducts(db *gorm.DB, filter string, limit int) []chatProduct {
	query := db.Preload("Category").Where("available = ?", true)
	if filter != "" {
		like := "%" + strings.ToLower(filter) + "%"
		query = query.
			Joins("LEFT JOIN categories ON categories.id = desserts.category_id").
			Where("LOWER(categories.name) LIKE ? OR LOWER(desserts.name) LIKE ?", like, like)
	}

	var desserts []models.Dessert
	if err := query.Limit(limit).Find(&desserts).Error; err != nil {
		return nil
	}

	products := make([]chatProduct, 0, len(desserts))
	for _, d := range desserts {
		products = append(products, toChatProduct(d))
	}
	return products
}

type faqMatch struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	score    int
}

// RelevantFAQs scores active FAQ entries against the message and returns the
// best few.
func RelevantFAQs(db *gorm.DB, message string, limit int) []faqMatch {
	lower := strings.ToLower(message)
	messageWords := map[string]bool{}
	for _, w := range strings.Fields(lower) {
		messageWords[w] = true
	}

	var items []models.FAQItem
	if err := db.Where("is_active = ?", true).Find(&items).Error; err != nil {
		return nil
	}

	categoryNames := map[uint]string{}
	var categories []models.FAQCategory
	if err := db.Where("is_active = ?", true).Find(&categories).Error; err == nil {
		for _, cat := range categories {
			categoryNames[cat.ID] = cat.Name
		}
	}

	keyPhrases := []string{"delivery", "payment", "order", "cancel", "refund", "hours", "pickup", "custom", "allergy", "vegan"}

	var scored []faqMatch
	for _, item := range items {
		categoryName, active := categoryNames[item.CategoryID]
		if !active {
			continue
		}

		question := strings.ToLower(item.Question)
		answer := strings.ToLower(item.Answer)
		score := 0

		for _, w := range strings.Fields(question) {
			if messageWords[w] {
				score += 2
			}
		}
		for _, phrase := range keyPhrases {
			if strings.Contains(lower, phrase) && (strings.Contains(question, phrase) || strings.Contains(answer, phrase)) {
				score += 3
			}
		}

		if score > 0 {
			scored = append(scored, faqMatch{
				Question: item.Question,
				Answer:   item.Answer,
				Category: categoryName,
				score:    score,
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
