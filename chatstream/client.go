package chatstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sweetdessert/dessert-shop-api/cart"
)

const (
	// FailureMessage replaces any partially streamed reply when a send fails.
	FailureMessage = "❌ Sorry, I encountered an error. Please try again."

	defaultAuthPrompt = "Please sign in to continue"
	defaultImage      = "/placeholder.jpg"
	defaultCategory   = "Dessert"
)

// ErrBusy is returned when a send is attempted while one is already streaming.
var ErrBusy = errors.New("chatstream: a send is already in progress")

// Notifier surfaces user-visible notifications raised by stream events.
type Notifier interface {
	// CartUpdated fires once per cart_update event, naming every added
	// product in one batched message.
	CartUpdated(productNames []string)
	// CheckoutReady offers navigation to checkout without performing it.
	CheckoutReady()
	// SignInRequired prompts the user to authenticate.
	SignInRequired(message string)
}

// Message is one entry in a conversation.
type Message struct {
	ID        int       `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	Streaming bool      `json:"streaming,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds one conversation's state. A session is single-threaded: one
// send is outstanding at a time and the UI disables input while IsTyping.
type Session struct {
	Messages  []Message
	IsTyping  bool
	HasUnread bool

	open   bool
	nextID int
}

// NewSession starts a conversation with the assistant's greeting.
func NewSession(greeting string) *Session {
	s := &Session{nextID: 1}
	if greeting != "" {
		s.append("assistant", greeting)
	}
	return s
}

// SetOpen tracks whether the consumer surface is visible; opening clears the
// unread flag.
func (s *Session) SetOpen(open bool) {
	s.open = open
	if open {
		s.HasUnread = false
	}
}

func (s *Session) isOpen() bool { return s.open }

func (s *Session) append(role, content string) *Message {
	s.Messages = append(s.Messages, Message{
		ID:        s.nextID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
	s.nextID++
	return &s.Messages[len(s.Messages)-1]
}

// Client consumes the assistant's chunked event stream, renders partial text
// into the session, and applies cart mutations through the cart engine.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Cart       *cart.Engine
	Notifier   Notifier
	APIKey     string
}

type sendRequest struct {
	Message string `json:"message"`
	APIKey  string `json:"api_key,omitempty"`
}

// Send posts the user's message and streams the reply into the session. Any
// failure during send-or-read replaces the in-progress reply with a fixed
// failure string; partial content is discarded, not appended to. The context
// is honored at every read.
func (c *Client) Send(ctx context.Context, session *Session, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if session.IsTyping {
		return ErrBusy
	}

	session.append("user", text)
	session.IsTyping = true
	reply := session.append("assistant", "")
	reply.Streaming = true
	replyIdx := len(session.Messages) - 1

	err := c.stream(ctx, session, replyIdx, text)

	msg := &session.Messages[replyIdx]
	msg.Streaming = false
	session.IsTyping = false
	if err != nil {
		msg.Content = FailureMessage
		return err
	}
	if !session.isOpen() {
		session.HasUnread = true
	}
	return nil
}

func (c *Client) stream(ctx context.Context, session *Session, replyIdx int, text string) error {
	body, err := json.Marshal(sendRequest{Message: text, APIKey: c.APIKey})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/chat/stream/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat stream returned status %d", resp.StatusCode)
	}

	var (
		parser      Parser
		accumulated strings.Builder
		halted      bool
		buf         = make([]byte, 4096)
	)

	dispatch := func(events []Event) error {
		for _, ev := range events {
			if err := c.dispatch(ev, session, replyIdx, &accumulated, &halted); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if err := dispatch(parser.Feed(buf[:n])); err != nil {
				return err
			}
		}
		if parser.Finished() {
			return nil
		}
		if readErr == io.EOF {
			return dispatch(parser.Flush())
		}
		if readErr != nil {
			return readErr
		}
	}
}

// dispatch handles one event. The switch is exhaustive over the closed event
// union; adding a variant without handling it here is a compile-visible gap
// at review, not a silent skip.
func (c *Client) dispatch(ev Event, session *Session, replyIdx int, accumulated *strings.Builder, halted *bool) error {
	msg := &session.Messages[replyIdx]

	switch e := ev.(type) {
	case TextDelta:
		if *halted {
			return nil
		}
		accumulated.WriteString(e.Content)
		msg.Content = accumulated.String()

	case CartUpdate:
		if c.Cart == nil || len(e.AddedProducts) == 0 {
			return nil
		}
		names := make([]string, 0, len(e.AddedProducts))
		for _, p := range e.AddedProducts {
			image := p.Image
			if image == "" {
				image = defaultImage
			}
			qty := p.Quantity
			if qty <= 0 {
				qty = 1
			}
			customizations := map[string]string{"category": p.Category}
			if p.Category == "" {
				customizations["category"] = defaultCategory
			}
			c.Cart.AddItem(cart.AddInput{
				ProductID:      p.ID,
				Name:           p.Name,
				Price:          float64(p.Price),
				Image:          image,
				Quantity:       qty,
				Customizations: customizations,
			})
			names = append(names, p.Name)
		}
		if c.Notifier != nil {
			c.Notifier.CartUpdated(names)
		}

	case RedirectCheckout:
		session.IsTyping = false
		msg.Streaming = false
		if c.Notifier != nil {
			c.Notifier.CheckoutReady()
		}

	case AuthRequired:
		session.IsTyping = false
		msg.Streaming = false
		prompt := e.Message
		if prompt == "" {
			prompt = defaultAuthPrompt
		}
		msg.Content = prompt
		*halted = true
		if c.Notifier != nil {
			c.Notifier.SignInRequired(prompt)
		}

	case IntentDetected:
		// Classification echo from the backend; nothing to render.

	case ProductList:
		// Reserved for the full chat page; the compact widget ignores it.

	case Done:
		msg.Streaming = false

	case StreamError:
		return errors.New(e.Message)
	}
	return nil
}
