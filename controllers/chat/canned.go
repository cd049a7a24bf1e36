package chatControllers

import (
	"github.com/gin-gonic/gin"
)

// streamCannedReply answers without the language model. Used when no API key
// is configured so the widget still works end to end.
func streamCannedReply(out *sseWriter, intent Intent, matched *chatProduct, faqs []faqMatch) {
	var reply string

	switch intent {
	case IntentGreeting:
		reply = "Hello! Welcome to Sweet Dessert 🍰 How can I help you today?"
	case IntentListProduct:
		reply = "Here are some desserts from our menu. Let me know if anything catches your eye!"
	case IntentFAQ:
		if len(faqs) > 0 {
			reply = faqs[0].Answer
		} else {
			reply = "We deliver daily from 10 AM to 10 PM, with free delivery on orders above Rs. 2500. Anything else I can help with?"
		}
	case IntentCheckout:
		reply = "Taking you to checkout to complete your order."
	case IntentOrder:
		if matched != nil {
			reply = "Great choice! 🎉 I've added " + matched.Name + " to your cart! Would you like to order more items, or shall we proceed to checkout?"
		} else {
			reply = "I'd love to help you order! Which dessert would you like from our menu?"
		}
	default:
		reply = "I can help you with our desserts! What would you like to know?"
	}

	out.Event(gin.H{"content": reply})
	out.Done()
}
