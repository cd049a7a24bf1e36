package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetdessert/dessert-shop-api/models"
)

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Pending")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, status)

	status, err = mapOrderStatus("DELIVERED")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	status, err := mapPaymentStatus("succeeded")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSucceeded, status)

	_, err = mapPaymentStatus("maybe")
	assert.Error(t, err)
}

func TestMapOrderType(t *testing.T) {
	orderType, err := mapOrderType("Delivery")
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeDelivery, orderType)

	orderType, err = mapOrderType("takeaway")
	require.NoError(t, err)
	assert.Equal(t, models.OrderTypeTakeaway, orderType)

	_, err = mapOrderType("teleport")
	assert.Error(t, err)
}

func TestOwnerIDPrefersUserOverGuest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/orders/place", nil)
	c.Request.Header.Set("X-Session-ID", "guest_abc")
	c.Set("user_id", "user-7")

	owner, userID, ok := ownerID(c)
	require.True(t, ok)
	assert.Equal(t, "user-7", owner)
	assert.Equal(t, "user-7", userID)
}

func TestOwnerIDFallsBackToGuestSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/orders/place", nil)
	c.Request.Header.Set("X-Session-ID", "guest_abc")

	owner, userID, ok := ownerID(c)
	require.True(t, ok)
	assert.Equal(t, "guest:guest_abc", owner)
	assert.Empty(t, userID)
}

func TestOwnerIDRequiresSomeIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/orders/place", nil)

	_, _, ok := ownerID(c)
	assert.False(t, ok)
}
