package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesIdenticalLines(t *testing.T) {
	e := NewEngine(nil)

	e.AddItem(AddInput{ProductID: 1, Name: "Chocolate Cake", Price: 399})
	e.AddItem(AddInput{ProductID: 1, Name: "Chocolate Cake", Price: 399, Quantity: 2})

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, e.TotalItems())
	assert.Equal(t, 1197.0, e.Subtotal())
}

func TestAddItemMergesOnMatchingCustomizations(t *testing.T) {
	e := NewEngine(nil)
	custom := map[string]string{"size": "large", "frosting": "vanilla"}

	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 500, Customizations: custom})
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 500, Customizations: map[string]string{"frosting": "vanilla", "size": "large"}})

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddItemDoesNotMergeDifferentCustomizations(t *testing.T) {
	e := NewEngine(nil)

	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 500, Customizations: map[string]string{"size": "large"}})
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 500, Customizations: map[string]string{"size": "small"}})
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 500})

	items := e.Items()
	require.Len(t, items, 3)
	assert.NotEqual(t, items[0].CartID, items[1].CartID)
	assert.NotEqual(t, items[1].CartID, items[2].CartID)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	e := NewEngine(nil)

	line := e.AddItem(AddInput{ProductID: 7, Name: "Brownie", Price: 250})
	assert.Equal(t, 1, line.Quantity)

	line = e.AddItem(AddInput{ProductID: 8, Name: "Donut", Price: 150, Quantity: -3})
	assert.Equal(t, 1, line.Quantity)
}

func TestAddItemCoercesInvalidPriceToZero(t *testing.T) {
	e := NewEngine(nil)

	line := e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: -50})
	assert.Equal(t, 0.0, line.UnitPrice)
	assert.Equal(t, 0.0, e.Subtotal())
}

func TestUpdateQuantityReplacesAtomically(t *testing.T) {
	e := NewEngine(nil)
	line := e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100, Quantity: 2})

	e.UpdateQuantity(line.CartID, 5)

	items := e.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityZeroOrBelowRemovesLine(t *testing.T) {
	e := NewEngine(nil)
	keep := e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100, Quantity: 2})
	gone := e.AddItem(AddInput{ProductID: 2, Name: "Donut", Price: 50, Quantity: 3})

	before := e.TotalItems()
	e.UpdateQuantity(gone.CartID, 0)

	assert.Equal(t, before-3, e.TotalItems())
	require.Len(t, e.Items(), 1)
	assert.Equal(t, keep.CartID, e.Items()[0].CartID)

	e.UpdateQuantity(keep.CartID, -1)
	assert.Empty(t, e.Items())
}

func TestRemoveItemUnknownIDIsNoOp(t *testing.T) {
	e := NewEngine(nil)
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100})

	e.RemoveItem("does-not-exist")
	assert.Len(t, e.Items(), 1)
}

func TestClearEmptiesCart(t *testing.T) {
	e := NewEngine(nil)
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100})
	e.AddItem(AddInput{ProductID: 2, Name: "Donut", Price: 50})

	e.Clear()

	assert.Empty(t, e.Items())
	assert.Equal(t, 0, e.TotalItems())
	assert.Equal(t, 0.0, e.Subtotal())
}

func TestTotalsConsistency(t *testing.T) {
	e := NewEngine(nil)
	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 399, Quantity: 3})
	e.AddItem(AddInput{ProductID: 2, Name: "Brownie", Price: 250, Quantity: 2})

	totals := e.Totals()
	assert.Equal(t, 5, totals.ItemCount)
	assert.Equal(t, 1697.0, totals.Subtotal)
	assert.Equal(t, DeliveryFee(totals.Subtotal), totals.DeliveryFee)
	assert.Equal(t, Tax(totals.Subtotal), totals.Tax)
	assert.Equal(t, totals.Subtotal+totals.DeliveryFee+totals.Tax, totals.GrandTotal)
}

type recordingStore struct {
	loaded []LineItem
	saves  int
	fail   bool
}

func (s *recordingStore) Load() ([]LineItem, error) { return s.loaded, nil }

func (s *recordingStore) Save(items []LineItem) error {
	s.saves++
	if s.fail {
		return errors.New("disk full")
	}
	return nil
}

func TestEngineRehydratesFromStore(t *testing.T) {
	store := &recordingStore{loaded: []LineItem{
		{CartID: "line-1", ProductID: 9, Name: "Tiramisu", UnitPrice: 650, Quantity: 2},
	}}

	e := NewEngine(store)

	require.Len(t, e.Items(), 1)
	assert.Equal(t, 2, e.TotalItems())
	assert.Equal(t, 1300.0, e.Subtotal())
}

func TestEveryMutationPersists(t *testing.T) {
	store := &recordingStore{}
	e := NewEngine(store)

	line := e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100})
	e.UpdateQuantity(line.CartID, 4)
	e.RemoveItem(line.CartID)
	e.Clear()

	assert.Equal(t, 4, store.saves)
}

func TestStoreFailureDoesNotFailOperation(t *testing.T) {
	store := &recordingStore{fail: true}
	e := NewEngine(store)

	e.AddItem(AddInput{ProductID: 1, Name: "Cake", Price: 100})

	// In-memory state survives the persistence error.
	assert.Len(t, e.Items(), 1)
}
