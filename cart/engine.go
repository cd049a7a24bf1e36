package cart

import (
	"log"

	"github.com/google/uuid"
)

// LineItem is one entry in the cart: a dessert plus chosen customizations and
// a quantity. CartID identifies the line, not the product; the same product
// with different customizations is a separate line.
type LineItem struct {
	CartID         string            `json:"cart_id"`
	ProductID      uint              `json:"product_id"`
	Name           string            `json:"name"`
	Image          string            `json:"image"`
	UnitPrice      float64           `json:"unit_price"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations,omitempty"`
}

// AddInput is the add-to-cart request. Quantity defaults to 1.
type AddInput struct {
	ProductID      uint
	Name           string
	Price          float64
	Image          string
	Quantity       int
	Customizations map[string]string
}

// Store persists cart lines between sessions. Writes are best-effort: a
// failed save is logged and never fails the in-memory operation.
type Store interface {
	Load() ([]LineItem, error)
	Save(items []LineItem) error
}

// Engine owns the authoritative line items for one session and computes the
// money values checkout consumes. It is not safe for concurrent use; each
// session gets its own engine.
type Engine struct {
	items []LineItem
	store Store
}

// NewEngine rehydrates the cart from the store. A nil store gives a purely
// in-memory cart.
func NewEngine(store Store) *Engine {
	e := &Engine{store: store}
	if store != nil {
		items, err := store.Load()
		if err != nil {
			log.Printf("⚠️ Failed to load cart from store: %v", err)
		} else {
			e.items = items
		}
	}
	return e
}

// AddItem merges into an existing line when the product and customizations
// match exactly, otherwise appends a new line with a fresh CartID. It returns
// the affected line.
func (e *Engine) AddItem(in AddInput) LineItem {
	qty := in.Quantity
	if qty <= 0 {
		qty = 1
	}

	for i := range e.items {
		// Name participates so products arriving without an ID still get
		// distinct lines.
		if e.items[i].ProductID == in.ProductID && e.items[i].Name == in.Name && sameCustomizations(e.items[i].Customizations, in.Customizations) {
			e.items[i].Quantity += qty
			e.persist()
			return e.items[i]
		}
	}

	line := LineItem{
		CartID:         uuid.NewString(),
		ProductID:      in.ProductID,
		Name:           in.Name,
		Image:          in.Image,
		UnitPrice:      NormalizePrice(in.Price),
		Quantity:       qty,
		Customizations: copyCustomizations(in.Customizations),
	}
	e.items = append(e.items, line)
	e.persist()
	return line
}

// RemoveItem deletes the line with the given CartID. Unknown IDs are a no-op.
func (e *Engine) RemoveItem(cartID string) {
	for i := range e.items {
		if e.items[i].CartID == cartID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			e.persist()
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or below
// removes the line; quantities are never stored at or below zero.
func (e *Engine) UpdateQuantity(cartID string, quantity int) {
	if quantity <= 0 {
		e.RemoveItem(cartID)
		return
	}
	for i := range e.items {
		if e.items[i].CartID == cartID {
			e.items[i].Quantity = quantity
			e.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (e *Engine) Clear() {
	e.items = nil
	e.persist()
}

// Items returns the lines in insertion order. The slice is a copy; mutation
// goes through the engine's operations only.
func (e *Engine) Items() []LineItem {
	out := make([]LineItem, len(e.items))
	copy(out, e.items)
	return out
}

// TotalItems is the sum of all line quantities.
func (e *Engine) TotalItems() int {
	total := 0
	for _, item := range e.items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity across all lines.
func (e *Engine) Subtotal() float64 {
	var total float64
	for _, item := range e.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Totals is the full checkout breakdown derived from the current lines.
type Totals struct {
	ItemCount   int     `json:"item_count"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	GrandTotal  float64 `json:"grand_total"`
}

func (e *Engine) Totals() Totals {
	subtotal := e.Subtotal()
	return Totals{
		ItemCount:   e.TotalItems(),
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee(subtotal),
		Tax:         Tax(subtotal),
		GrandTotal:  GrandTotal(subtotal),
	}
}

func (e *Engine) persist() {
	if e.store == nil {
		return
	}
	if err := e.store.Save(e.items); err != nil {
		log.Printf("⚠️ Failed to persist cart: %v", err)
	}
}

func sameCustomizations(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func copyCustomizations(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
