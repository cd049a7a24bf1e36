package chatstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweetdessert/dessert-shop-api/cart"
)

type fakeNotifier struct {
	cartUpdates [][]string
	checkouts   int
	signIns     []string
}

func (n *fakeNotifier) CartUpdated(names []string) {
	n.cartUpdates = append(n.cartUpdates, names)
}

func (n *fakeNotifier) CheckoutReady() {
	n.checkouts++
}

func (n *fakeNotifier) SignInRequired(message string) {
	n.signIns = append(n.signIns, message)
}

func streamServer(t *testing.T, lines ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "text/event-stream")
		flusher := w.(http.Flusher)
		for _, line := range lines {
			_, _ = w.Write([]byte(line))
			flusher.Flush()
		}
	}))
}

func newClient(srv *httptest.Server, engine *cart.Engine, notifier Notifier) *Client {
	return &Client{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Cart:       engine,
		Notifier:   notifier,
	}
}

func TestSendAccumulatesTextDeltas(t *testing.T) {
	srv := streamServer(t,
		"data: {\"content\":\"We have \"}\n",
		"data: {\"content\":\"chocolate cake!\"}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	session := NewSession("Hi! How can I help?")
	client := newClient(srv, cart.NewEngine(nil), &fakeNotifier{})

	err := client.Send(context.Background(), session, "what cakes do you have?")
	require.NoError(t, err)

	require.Len(t, session.Messages, 3) // greeting, user, assistant
	reply := session.Messages[2]
	assert.Equal(t, "assistant", reply.Role)
	assert.Equal(t, "We have chocolate cake!", reply.Content)
	assert.False(t, reply.Streaming)
	assert.False(t, session.IsTyping)
}

func TestSendCartUpdateScenario(t *testing.T) {
	srv := streamServer(t,
		"data: {\"type\":\"cart_update\",\"added_products\":[{\"name\":\"Brownie\",\"price\":\"250\",\"quantity\":2}]}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	engine := cart.NewEngine(nil)
	notifier := &fakeNotifier{}
	client := newClient(srv, engine, notifier)
	session := NewSession("")

	err := client.Send(context.Background(), session, "add two brownies")
	require.NoError(t, err)

	items := engine.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Brownie", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 250.0, items[0].UnitPrice)

	// Exactly one batched notification for the whole update.
	require.Len(t, notifier.cartUpdates, 1)
	assert.Equal(t, []string{"Brownie"}, notifier.cartUpdates[0])
}

func TestSendBatchesMultiProductCartUpdate(t *testing.T) {
	srv := streamServer(t,
		"data: {\"type\":\"cart_update\",\"added_products\":[{\"name\":\"Brownie\",\"price\":250},{\"name\":\"Donut\",\"price\":150}]}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	engine := cart.NewEngine(nil)
	notifier := &fakeNotifier{}
	client := newClient(srv, engine, notifier)

	err := client.Send(context.Background(), NewSession(""), "brownie and donut please")
	require.NoError(t, err)

	assert.Equal(t, 2, engine.TotalItems())
	require.Len(t, notifier.cartUpdates, 1)
	assert.Equal(t, []string{"Brownie", "Donut"}, notifier.cartUpdates[0])
}

func TestSendRedirectCheckout(t *testing.T) {
	srv := streamServer(t,
		"data: {\"type\":\"redirect_checkout\"}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	notifier := &fakeNotifier{}
	client := newClient(srv, cart.NewEngine(nil), notifier)

	err := client.Send(context.Background(), NewSession(""), "checkout")
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.checkouts)
}

func TestSendAuthRequiredStopsAccumulating(t *testing.T) {
	srv := streamServer(t,
		"data: {\"content\":\"Sure, \"}\n",
		"data: {\"type\":\"auth_required\",\"message\":\"Please sign in to place orders\"}\n",
		"data: {\"content\":\"ignored tail\"}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	notifier := &fakeNotifier{}
	client := newClient(srv, cart.NewEngine(nil), notifier)
	session := NewSession("")

	err := client.Send(context.Background(), session, "order a cake")
	require.NoError(t, err)

	reply := session.Messages[len(session.Messages)-1]
	assert.Equal(t, "Please sign in to place orders", reply.Content)
	assert.Equal(t, []string{"Please sign in to place orders"}, notifier.signIns)
}

func TestSendStreamErrorReplacesPartialContent(t *testing.T) {
	srv := streamServer(t,
		"data: {\"content\":\"partial answer\"}\n",
		"data: {\"error\":\"upstream timeout\"}\n",
	)
	defer srv.Close()

	client := newClient(srv, cart.NewEngine(nil), &fakeNotifier{})
	session := NewSession("")

	err := client.Send(context.Background(), session, "hello")
	require.Error(t, err)

	reply := session.Messages[len(session.Messages)-1]
	assert.Equal(t, FailureMessage, reply.Content)
	assert.False(t, reply.Streaming)
	assert.False(t, session.IsTyping)
}

func TestSendNonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := newClient(srv, cart.NewEngine(nil), &fakeNotifier{})
	session := NewSession("")

	err := client.Send(context.Background(), session, "hello")
	require.Error(t, err)
	assert.Equal(t, FailureMessage, session.Messages[len(session.Messages)-1].Content)
}

func TestSendRejectsConcurrentSend(t *testing.T) {
	client := &Client{}
	session := NewSession("")
	session.IsTyping = true

	err := client.Send(context.Background(), session, "hello")
	assert.ErrorIs(t, err, ErrBusy)
}

func TestSendHonorsContextCancellation(t *testing.T) {
	srv := streamServer(t, "data: {\"content\":\"never finishes\"}\n")
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newClient(srv, cart.NewEngine(nil), &fakeNotifier{})
	err := client.Send(ctx, NewSession(""), "hello")
	require.Error(t, err)
}

func TestUnreadFlagWhenSessionClosed(t *testing.T) {
	srv := streamServer(t,
		"data: {\"content\":\"hi\"}\n",
		"data: [DONE]\n",
	)
	defer srv.Close()

	client := newClient(srv, cart.NewEngine(nil), &fakeNotifier{})

	closed := NewSession("")
	require.NoError(t, client.Send(context.Background(), closed, "hello"))
	assert.True(t, closed.HasUnread)

	open := NewSession("")
	open.SetOpen(true)
	require.NoError(t, client.Send(context.Background(), open, "hello"))
	assert.False(t, open.HasUnread)
}
