package purefn_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/on-the-ground/oneliners_go/purefn"
	"github.com/stretchr/testify/assert"
)

func getMoney(price string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimPrefix(price, "$"), 64)
	return v
}

func getPercent(percent string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSuffix(percent, "%"), 64)
	return v * 0.01
}

func TestBox_DiscountPrice(t *testing.T) {
	discounted := purefn.Fold(purefn.BoxOf("$6.00"), func(price string) float64 {
		cents := getMoney(price)
		return purefn.Fold(
			purefn.Next(purefn.BoxOf("20%"), getPercent),
			func(save float64) float64 { return cents - cents*save },
		)
	})
	assert.InDelta(t, 4.8, discounted, 1e-9)
}

func TestBox_Then(t *testing.T) {
	b := purefn.BoxOf(2).Then(func(x int) int { return x + 1 }).Then(func(x int) int { return x * 10 })
	assert.Equal(t, 30, b.Value())
}

func TestIsFunction(t *testing.T) {
	assert.True(t, purefn.IsFunction(func() {}))
	assert.True(t, purefn.IsFunction(strings.ToUpper))
	assert.False(t, purefn.IsFunction("func"))
	assert.False(t, purefn.IsFunction(nil))
}
