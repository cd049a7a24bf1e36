package chatControllers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// OpenRouterURL is overridable so tests can stand in for the model provider.
var OpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

const openRouterModel = "mistralai/devstral-2512:free"

type upstreamDelta struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func buildSystemPrompt(intent Intent, matched *chatProduct, faqs []faqMatch, authenticated bool) string {
	var b strings.Builder
	b.WriteString("You are a friendly and helpful AI assistant for Sweet Dessert, a premium dessert shop.\n")
	b.WriteString("Be warm, enthusiastic, and professional. Mention prices as Rs. [amount]. Keep replies to 2-3 sentences.\n")

	if authenticated {
		b.WriteString("The customer is logged in.\n")
	} else {
		b.WriteString("The customer is NOT logged in. They must sign in before ordering.\n")
	}

	if matched != nil {
		fmt.Fprintf(&b, "%s (Rs. %s) was just added to the customer's cart. Confirm it happily and ask if they want more items or to proceed to checkout.\n", matched.Name, matched.Price)
	}
	if intent == IntentCheckout {
		b.WriteString("The customer is being taken to the payment page. Confirm this briefly.\n")
	}
	for _, faq := range faqs {
		fmt.Fprintf(&b, "Relevant FAQ - Q: %s A: %s\n", faq.Question, faq.Answer)
	}

	return b.String()
}

// relayAssistantReply streams the upstream model's reply through to the
// widget as content events, ending with [DONE].
func relayAssistantReply(ctx context.Context, out *sseWriter, apiKey, message string, intent Intent, matched *chatProduct, faqs []faqMatch, authenticated bool) {
	payload := gin.H{
		"model": openRouterModel,
		"messages": []gin.H{
			{"role": "system", "content": buildSystemPrompt(intent, matched, faqs, authenticated)},
			{"role": "user", "content": message},
		},
		"stream":      true,
		"temperature": 0.7,
		"max_tokens":  600,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		out.Event(gin.H{"error": "An unexpected error occurred."})
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", OpenRouterURL, bytes.NewReader(body))
	if err != nil {
		out.Event(gin.H{"error": "An unexpected error occurred."})
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("X-Title", "Sweet Dessert Chat Assistant")

	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("⚠️ Model provider request failed: %v", err)
		out.Event(gin.H{"error": "Failed to connect to AI service. Please try again."})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("⚠️ Model provider returned status %d", resp.StatusCode)
		out.Event(gin.H{"error": "Failed to connect to AI service. Please try again."})
		return
	}

	contentReceived := false
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}

		var delta upstreamDelta
		if err := json.Unmarshal([]byte(data), &delta); err != nil {
			continue
		}
		if len(delta.Choices) > 0 && delta.Choices[0].Delta.Content != "" {
			contentReceived = true
			out.Event(gin.H{"content": delta.Choices[0].Delta.Content})
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("⚠️ Model provider stream error: %v", err)
		out.Event(gin.H{"error": "Failed to connect to AI service. Please try again."})
		return
	}

	if !contentReceived {
		out.Event(gin.H{"content": "I can help you with our desserts! What would you like to know?"})
	}
	out.Done()
}
