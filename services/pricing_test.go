package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePricingTier(t *testing.T) {
	cases := []struct {
		target uint
		tier   string
		price  int
	}{
		{1, "free", 0},
		{1000, "free", 0},
		{2500, "free", 0},
		{2501, "starter", 49},
		{5000, "starter", 49},
		{5001, "growth", 79},
		{10000, "growth", 79},
		{10001, "impact", 119},
		{25000, "impact", 119},
		{25001, "large", 149},
		{50000, "large", 149},
		{50001, "mass", 199},
		{100000, "mass", 199},
		{100001, "enterprise", 299},
		{5000000, "enterprise", 299},
	}

	for _, tc := range cases {
		got := CalculatePricingTier(tc.target)
		assert.Equal(t, tc.tier, got.Tier, "target %d", tc.target)
		assert.Equal(t, tc.price, got.Price, "target %d", tc.target)
	}
}
