package dessertController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sweetdessert/dessert-shop-api/models"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "chocolate-fudge-cake", Slugify("Chocolate Fudge Cake"))
	assert.Equal(t, "red-velvet", Slugify("  Red   Velvet  "))
	assert.Equal(t, "dark-choc-bar", Slugify("Dark_Choc Bar"))
}

func TestSlugifyStripsUnsafe(t *testing.T) {
	assert.Equal(t, "mams-special-50-off", Slugify("Mam's Special (50% off)"))
	assert.Equal(t, "tiramisu", Slugify("Tiramisu!"))
	assert.Equal(t, "", Slugify("???"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, models.StringList{"flour", "eggs", "sugar"}, splitList("flour, eggs , sugar"))
	assert.Equal(t, models.StringList{"nuts"}, splitList(",nuts,,"))
	assert.Nil(t, splitList(""))
}
