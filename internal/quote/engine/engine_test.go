package engine

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	addondomain "github.com/lodgewise/lodgewise/internal/addon/domain"
	pricingruledomain "github.com/lodgewise/lodgewise/internal/pricingrule/domain"
	quotedomain "github.com/lodgewise/lodgewise/internal/quote/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrID(v snowflake.ID) *snowflake.ID {
	return &v
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2025, 12, 23), date(2025, 12, 26)))
	assert.Equal(t, 1, Nights(date(2025, 12, 23), date(2025, 12, 24)))
	assert.Equal(t, 0, Nights(date(2025, 12, 23), date(2025, 12, 23)))
	assert.Equal(t, -1, Nights(date(2025, 12, 24), date(2025, 12, 23)))
}

func TestResolveNightlyRates_NoRules(t *testing.T) {
	got := ResolveNightlyRates(200, 10, nil, date(2026, 3, 1), date(2026, 3, 4))

	assert.Equal(t, 600.0, got.RoomTotal)
	assert.Equal(t, []float64{200, 200, 200}, got.Rates)
	assert.Empty(t, got.Flagged)
}

func TestResolveNightlyRates_OverrideWins(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:                1,
		RoomTypeID:        ptrID(10),
		StartDate:         date(2026, 3, 1),
		EndDate:           date(2026, 3, 10),
		BasePriceOverride: ptrFloat(300),
		PriceModifier:     ptrFloat(2.0),
	}}

	got := ResolveNightlyRates(200, 10, rules, date(2026, 3, 1), date(2026, 3, 3))

	// Override is authoritative even when a modifier is also set.
	assert.Equal(t, []float64{300, 300}, got.Rates)
	assert.Equal(t, 600.0, got.RoomTotal)
}

func TestResolveNightlyRates_ModifierScalesBase(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:            1,
		StartDate:     date(2026, 7, 2),
		EndDate:       date(2026, 7, 4),
		PriceModifier: ptrFloat(1.5),
	}}

	got := ResolveNightlyRates(100, 10, rules, date(2026, 7, 1), date(2026, 7, 5))

	// Nights 1 and 4 fall outside the window and keep the base rate.
	assert.Equal(t, []float64{100, 150, 150, 100}, got.Rates)
	assert.Equal(t, 500.0, got.RoomTotal)
}

func TestResolveNightlyRates_EndDateExclusive(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:                1,
		StartDate:         date(2026, 3, 1),
		EndDate:           date(2026, 3, 3),
		BasePriceOverride: ptrFloat(500),
	}}

	got := ResolveNightlyRates(200, 10, rules, date(2026, 3, 2), date(2026, 3, 4))

	// The night of March 3 starts on the rule's end date and is not priced by it.
	assert.Equal(t, []float64{500, 200}, got.Rates)
}

func TestResolveNightlyRates_PropertyWideRuleAppliesEverywhere(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:                1,
		RoomTypeID:        nil,
		StartDate:         date(2026, 3, 1),
		EndDate:           date(2026, 3, 10),
		BasePriceOverride: ptrFloat(99),
	}}

	for _, roomTypeID := range []snowflake.ID{10, 11, 12} {
		got := ResolveNightlyRates(200, roomTypeID, rules, date(2026, 3, 1), date(2026, 3, 2))
		assert.Equal(t, []float64{99}, got.Rates)
	}
}

func TestResolveNightlyRates_ScopedRuleNeverCrossApplies(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:                1,
		RoomTypeID:        ptrID(10),
		StartDate:         date(2026, 3, 1),
		EndDate:           date(2026, 3, 10),
		BasePriceOverride: ptrFloat(99),
	}}

	got := ResolveNightlyRates(200, 11, rules, date(2026, 3, 1), date(2026, 3, 2))

	assert.Equal(t, []float64{200}, got.Rates)
	assert.Empty(t, got.Flagged)
}

func TestResolveNightlyRates_FirstMatchTieBreak(t *testing.T) {
	// Newest-first input order: the first entry wins every contested night.
	rules := []pricingruledomain.PricingRule{
		{
			ID:                2,
			StartDate:         date(2026, 3, 1),
			EndDate:           date(2026, 3, 10),
			BasePriceOverride: ptrFloat(300),
		},
		{
			ID:                1,
			StartDate:         date(2026, 3, 1),
			EndDate:           date(2026, 3, 10),
			BasePriceOverride: ptrFloat(250),
		},
	}

	got := ResolveNightlyRates(200, 10, rules, date(2026, 3, 1), date(2026, 3, 3))

	assert.Equal(t, []float64{300, 300}, got.Rates)
}

func TestResolveNightlyRates_FlagsConstraintRuleOnce(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:            1,
		StartDate:     date(2026, 3, 1),
		EndDate:       date(2026, 3, 10),
		PriceModifier: ptrFloat(1.2),
		MinStay:       ptrInt(3),
	}}

	got := ResolveNightlyRates(100, 10, rules, date(2026, 3, 1), date(2026, 3, 5))

	require.Len(t, got.Flagged, 1)
	assert.Equal(t, snowflake.ID(1), got.Flagged[0].ID)
}

func TestValidateStayConstraints(t *testing.T) {
	minThree := []pricingruledomain.PricingRule{{ID: 1, MinStay: ptrInt(3)}}

	assert.ErrorIs(t, ValidateStayConstraints(minThree, 2), quotedomain.ErrMinStayViolation)
	assert.NoError(t, ValidateStayConstraints(minThree, 3))
	assert.NoError(t, ValidateStayConstraints(minThree, 4))

	maxFive := []pricingruledomain.PricingRule{{ID: 2, MaxStay: ptrInt(5)}}
	assert.ErrorIs(t, ValidateStayConstraints(maxFive, 6), quotedomain.ErrMaxStayViolation)
	assert.NoError(t, ValidateStayConstraints(maxFive, 5))
}

func TestValidateStayConstraints_FirstViolationWins(t *testing.T) {
	flagged := []pricingruledomain.PricingRule{
		{ID: 1, MinStay: ptrInt(3), MaxStay: ptrInt(1)},
		{ID: 2, MaxStay: ptrInt(1)},
	}

	// Two nights violate both bounds of the first rule; min is checked first.
	assert.ErrorIs(t, ValidateStayConstraints(flagged, 2), quotedomain.ErrMinStayViolation)
}

func TestAggregateAddonCost(t *testing.T) {
	perPersonPerDay := addondomain.Addon{Price: 10, PerPerson: true, PerDay: true}
	flat := addondomain.Addon{Price: 25}
	perPerson := addondomain.Addon{Price: 30, PerPerson: true}
	perDay := addondomain.Addon{Price: 5, PerDay: true}

	assert.Equal(t, 60.0, AggregateAddonCost([]addondomain.Addon{perPersonPerDay}, 2, 3))
	assert.Equal(t, 25.0, AggregateAddonCost([]addondomain.Addon{flat}, 2, 3))
	assert.Equal(t, 60.0, AggregateAddonCost([]addondomain.Addon{perPerson}, 2, 3))
	assert.Equal(t, 15.0, AggregateAddonCost([]addondomain.Addon{perDay}, 2, 3))
	assert.Equal(t, 0.0, AggregateAddonCost(nil, 2, 3))
}

func TestAssemble_Rounding(t *testing.T) {
	// 0.125 is exactly representable, so this pins half-up behavior.
	got := Assemble(0.125, 0, 1)
	assert.Equal(t, 0.13, got.TotalAmount)

	got = Assemble(100, 0, 3)
	assert.Equal(t, 33.33, got.PricePerNight)
}

// A December 23-26 stay: the first night at the 200 base, two nights scaled
// by a 1.3 holiday modifier, plus a 20 per-person per-day breakfast for two
// guests.
func TestQuoteEndToEnd(t *testing.T) {
	rules := []pricingruledomain.PricingRule{{
		ID:            1,
		StartDate:     date(2025, 12, 24),
		EndDate:       date(2025, 12, 26),
		PriceModifier: ptrFloat(1.3),
	}}
	addons := []addondomain.Addon{{Price: 20, PerPerson: true, PerDay: true}}

	checkIn := date(2025, 12, 23)
	checkOut := date(2025, 12, 26)
	nights := Nights(checkIn, checkOut)
	require.Equal(t, 3, nights)

	resolved := ResolveNightlyRates(200, 10, rules, checkIn, checkOut)
	require.Equal(t, []float64{200, 260, 260}, resolved.Rates)
	require.Equal(t, 720.0, resolved.RoomTotal)

	require.NoError(t, ValidateStayConstraints(resolved.Flagged, nights))

	addonTotal := AggregateAddonCost(addons, 2, nights)
	require.Equal(t, 120.0, addonTotal)

	totals := Assemble(resolved.RoomTotal, addonTotal, nights)
	assert.Equal(t, 840.0, totals.TotalAmount)
	assert.Equal(t, 240.0, totals.PricePerNight)
}
