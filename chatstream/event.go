package chatstream

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Event is one decoded unit from the assistant's event stream. The set of
// implementations is closed; Dispatch switches over all of them.
type Event interface {
	isEvent()
}

// TextDelta is an incremental fragment of the assistant's reply.
type TextDelta struct {
	Content string
}

// IntentDetected echoes the backend's classification of the message. It is
// informational; no widget surface reacts to it.
type IntentDetected struct {
	Intent string
}

// CartUpdate instructs the client to add products to the cart. One update can
// carry several products; the client raises a single batched notification.
type CartUpdate struct {
	AddedProducts []AddedProduct
}

// RedirectCheckout offers navigation to checkout. The client never navigates
// automatically.
type RedirectCheckout struct{}

// AuthRequired ends the in-progress reply with a sign-in prompt.
type AuthRequired struct {
	Message string
}

// ProductList carries product suggestions for the full chat page. The compact
// widget surface ignores it.
type ProductList struct {
	Products []AddedProduct
}

// Done marks protocol-level stream completion (the [DONE] sentinel).
type Done struct{}

// StreamError is an in-band error from the backend; it aborts the send.
type StreamError struct {
	Message string
}

func (TextDelta) isEvent()        {}
func (IntentDetected) isEvent()   {}
func (CartUpdate) isEvent()       {}
func (RedirectCheckout) isEvent() {}
func (AuthRequired) isEvent()     {}
func (ProductList) isEvent()      {}
func (Done) isEvent()             {}
func (StreamError) isEvent()      {}

// AddedProduct is one product inside a cart_update or product_list payload.
type AddedProduct struct {
	ID       uint   `json:"id,omitempty"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Category string `json:"category,omitempty"`
}

// Price tolerates both JSON numbers and string-formatted numbers on the wire.
// Unparseable values decode to 0.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = Price(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}
