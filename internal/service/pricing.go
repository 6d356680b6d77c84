package service

import (
	"math"

	"flysolo/internal/domain"
)

// Estimate is the output of a pricing policy.
type Estimate struct {
	Duration int // minutes
	Price    float64
}

// PricingParams carries the trip parameters a pricing policy may consider.
type PricingParams struct {
	TripType       domain.TripType
	PassengerCount int
	CargoWeight    float64
}

// PricingPolicy derives a trip's duration and price from its distance.
// Two formulas exist in the product; the active one is chosen explicitly
// via configuration rather than merged.
type PricingPolicy interface {
	Estimate(distance float64, params PricingParams) Estimate
}

// Policy names accepted by NewPricingPolicy.
const (
	PricingPolicyStandard = "standard"
	PricingPolicyLegacy   = "legacy"
)

// NewPricingPolicy returns the policy registered under the given name,
// falling back to the standard policy for unknown names.
func NewPricingPolicy(name string) PricingPolicy {
	if name == PricingPolicyLegacy {
		return LegacyPricing{}
	}
	return StandardPricing{}
}

// StandardPricing is the canonical policy used by trip creation: a flat
// 2 minutes and 100 credits per distance unit, with a 1.5x cargo surcharge.
// A zero-distance trip costs nothing; there is no minimum price.
type StandardPricing struct{}

// Estimate implements PricingPolicy.
func (StandardPricing) Estimate(distance float64, params PricingParams) Estimate {
	duration := int(math.Ceil(distance * 2))

	price := distance * 100
	if params.TripType == domain.TripTypeCargo {
		price *= 1.5
	}

	return Estimate{Duration: duration, Price: price}
}

// LegacyPricing is the richer formula from the original fare calculator.
// It scales with passenger count or cargo weight, adds a heavy-cargo
// premium, enforces a 50-credit minimum, and models hyperspace travel as a
// 10x speedup beyond a 50-unit threshold.
type LegacyPricing struct{}

const (
	legacyBaseRate        = 10.0 // credits per distance unit
	legacyPassengerFactor = 1.5
	legacyCargoRate       = 0.8 // per ton
	legacyHeavyCargoLimit = 100.0
	legacyHeavyPremium    = 1.3
	legacyMinimumPrice    = 50.0

	hyperspaceThreshold = 50.0 // units travelled at base speed before jumping
	hyperspaceSpeedup   = 10.0
)

// Estimate implements PricingPolicy.
func (LegacyPricing) Estimate(distance float64, params PricingParams) Estimate {
	price := distance * legacyBaseRate

	switch params.TripType {
	case domain.TripTypeCargo:
		weight := params.CargoWeight
		if weight <= 0 {
			weight = 1
		}
		price *= weight * legacyCargoRate
		if weight > legacyHeavyCargoLimit {
			price *= legacyHeavyPremium
		}
	default:
		passengers := params.PassengerCount
		if passengers <= 0 {
			passengers = 1
		}
		price *= float64(passengers) * legacyPassengerFactor
	}

	if price < legacyMinimumPrice {
		price = legacyMinimumPrice
	}

	return Estimate{Duration: legacyDuration(distance), Price: price}
}

// legacyDuration assumes 1 unit per minute at base speed; anything past the
// hyperspace threshold moves 10x faster.
func legacyDuration(distance float64) int {
	if distance <= hyperspaceThreshold {
		return int(math.Ceil(distance))
	}
	hyper := distance - hyperspaceThreshold
	return int(math.Ceil(hyperspaceThreshold + hyper/hyperspaceSpeedup))
}
