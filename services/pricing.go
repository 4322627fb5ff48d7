package services

import "github.com/Brahim-Amzil/3arida-sub000/models"

type pricingBreakpoint struct {
	maxTarget uint
	tier      string
	price     int
}

// pricingTable is the canonical signature-count breakpoint table. Boundary
// values resolve to the lower tier inclusive.
var pricingTable = []pricingBreakpoint{
	{2500, "free", 0},
	{5000, "starter", 49},
	{10000, "growth", 79},
	{25000, "impact", 119},
	{50000, "large", 149},
	{100000, "mass", 199},
}

const (
	enterpriseTier  = "enterprise"
	enterprisePrice = 299
)

// CalculatePricingTier maps a signature target to its tier and price.
func CalculatePricingTier(targetSignatures uint) models.PricingInfo {
	for _, bp := range pricingTable {
		if targetSignatures <= bp.maxTarget {
			return models.PricingInfo{Tier: bp.tier, Price: bp.price}
		}
	}
	return models.PricingInfo{Tier: enterpriseTier, Price: enterprisePrice}
}
