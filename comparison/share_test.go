package comparison

import (
	"testing"

	"comparehubapi/models"

	"gotest.tools/assert"
)

func TestEncodeDecodeIds(t *testing.T) {
	assert.Equal(t, "1,2,3", EncodeIds([]int{1, 2, 3}))
	assert.Equal(t, "", EncodeIds(nil))

	// round-trip for positive id sequences
	ids := []int{42, 7, 19, 3}
	decoded := DecodeIds(EncodeIds(ids))
	assert.Equal(t, len(ids), len(decoded))
	for i := range ids {
		assert.Equal(t, ids[i], decoded[i])
	}

	// non-numeric and non-positive tokens are dropped silently
	decoded = DecodeIds("1,abc,-5,0,2, 3 ,")
	assert.Equal(t, 3, len(decoded))
	assert.Equal(t, 1, decoded[0])
	assert.Equal(t, 2, decoded[1])
	assert.Equal(t, 3, decoded[2])

	assert.Equal(t, 0, len(DecodeIds("")))
	assert.Equal(t, 0, len(DecodeIds("a,b,c")))
}

func TestDeriveHighlights(t *testing.T) {
	// nothing to compare
	highlights := DeriveHighlights(nil)
	assert.Equal(t, true, highlights.CheapestId == nil)
	assert.Equal(t, true, highlights.HighestRatedId == nil)
	assert.Equal(t, true, highlights.HighestDiscountId == nil)

	products := []models.Product{
		{Id: 1, Price: 25.5, Rating: 4.2, DiscountPercentage: 5},
		{Id: 2, Price: 9.99, Rating: 4.7, DiscountPercentage: 15},
		{Id: 3, Price: 80, Rating: 3.9, DiscountPercentage: 20},
	}

	highlights = DeriveHighlights(products)
	assert.Equal(t, 2, *highlights.CheapestId)
	assert.Equal(t, 2, *highlights.HighestRatedId)
	assert.Equal(t, 3, *highlights.HighestDiscountId)

	// ties keep the first product, matching insertion order
	products = []models.Product{
		{Id: 5, Price: 10, Rating: 4, DiscountPercentage: 1},
		{Id: 6, Price: 10, Rating: 4, DiscountPercentage: 1},
	}
	highlights = DeriveHighlights(products)
	assert.Equal(t, 5, *highlights.CheapestId)
	assert.Equal(t, 5, *highlights.HighestRatedId)
	assert.Equal(t, 5, *highlights.HighestDiscountId)
}
