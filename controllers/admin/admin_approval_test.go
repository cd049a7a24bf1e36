package adminController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminEmailRequestNormalized(t *testing.T) {
	assert.Equal(t, "chef@sweetdessert.com", adminEmailRequest{Email: "  Chef@SweetDessert.com "}.normalized())
	assert.Equal(t, "", adminEmailRequest{Email: "   "}.normalized())
}
