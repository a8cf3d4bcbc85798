// Package engine implements the pricing computation over data already
// loaded from the catalog: per-night rule resolution, stay-constraint
// validation, add-on aggregation and final assembly. Everything here is a
// pure function so the core tests run without a database.
package engine

import (
	"math"
	"time"

	"github.com/bwmarrin/snowflake"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
)

// DefaultMaxStayNights caps the per-night loop (~5 years) so a malformed
// request cannot make it unbounded.
const DefaultMaxStayNights = 1830

// Nights returns the whole-day night count of [checkIn, checkOut).
func Nights(checkIn, checkOut time.Time) int {
	return int(dateOnly(checkOut).Sub(dateOnly(checkIn)).Hours() / 24)
}

// NightlyRates is the outcome of per-night rule resolution.
type NightlyRates struct {
	// RoomTotal is the unrounded sum of all nightly rates.
	RoomTotal float64
	// Rates holds one resolved rate per night, check-in order.
	Rates []float64
	// Flagged are the matched rules carrying a min or max stay bound, in
	// first-match order, each at most once.
	Flagged []pricingruledomain.PricingRule
}

// ResolveNightlyRates walks every night of [checkIn, checkOut) and selects
// the first applicable rule per night. Rules must arrive newest-first (the
// loader's order); that order is the tie-break for nights covered by more
// than one rule. A rule applies to night d when it targets the room type
// (or the whole property) and d is inside [start_date, end_date) — the end
// date itself is never priced by the rule.
func ResolveNightlyRates(
	basePrice float64,
	roomTypeID snowflake.ID,
	rules []pricingruledomain.PricingRule,
	checkIn, checkOut time.Time,
) NightlyRates {
	nights := Nights(checkIn, checkOut)
	out := NightlyRates{Rates: make([]float64, 0, nights)}
	flagged := make(map[snowflake.ID]struct{}, len(rules))

	for d := dateOnly(checkIn); d.Before(dateOnly(checkOut)); d = d.AddDate(0, 0, 1) {
		rate := basePrice

		for i := range rules {
			rule := &rules[i]
			if !ruleApplies(rule, roomTypeID, d) {
				continue
			}

			if rule.BasePriceOverride != nil {
				rate = *rule.BasePriceOverride
			} else if rule.PriceModifier != nil {
				rate = basePrice * *rule.PriceModifier
			}

			if rule.MinStay != nil || rule.MaxStay != nil {
				if _, seen := flagged[rule.ID]; !seen {
					flagged[rule.ID] = struct{}{}
					out.Flagged = append(out.Flagged, *rule)
				}
			}
			break
		}

		out.RoomTotal += rate
		out.Rates = append(out.Rates, rate)
	}

	return out
}

func ruleApplies(rule *pricingruledomain.PricingRule, roomTypeID snowflake.ID, night time.Time) bool {
	if rule.RoomTypeID != nil && *rule.RoomTypeID != roomTypeID {
		return false
	}
	start := dateOnly(rule.StartDate)
	end := dateOnly(rule.EndDate)
	return !night.Before(start) && night.Before(end)
}

// ValidateStayConstraints checks the night count against every flagged
// rule, in flag order, and reports the first violation.
func ValidateStayConstraints(flagged []pricingruledomain.PricingRule, nights int) error {
	for i := range flagged {
		rule := &flagged[i]
		if rule.MinStay != nil && nights < *rule.MinStay {
			return quotedomain.ErrMinStayViolation
		}
		if rule.MaxStay != nil && nights > *rule.MaxStay {
			return quotedomain.ErrMaxStayViolation
		}
	}
	return nil
}

// AggregateAddonCost sums add-on charges. Per-person and per-day
// multipliers compose: a 10.00 per-person per-day add-on costs 60.00 for
// two guests over three nights.
func AggregateAddonCost(addons []addondomain.Addon, guests, nights int) float64 {
	var total float64
	for i := range addons {
		cost := addons[i].Price
		if addons[i].PerPerson {
			cost *= float64(guests)
		}
		if addons[i].PerDay {
			cost *= float64(nights)
		}
		total += cost
	}
	return total
}

// Totals is the assembled money pair of a quote, rounded half-up to two
// decimals. The nightly average excludes add-on costs.
type Totals struct {
	TotalAmount   float64
	PricePerNight float64
}

func Assemble(roomTotal, addonTotal float64, nights int) Totals {
	return Totals{
		TotalAmount:   roundMoney(roomTotal + addonTotal),
		PricePerNight: roundMoney(roomTotal / float64(nights)),
	}
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
