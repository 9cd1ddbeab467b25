package fees

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimateFees_BaselineSuburban(t *testing.T) {
	t.Parallel()

	// Suburban, complexity 50, no urgency: location and urgency multipliers
	// are 1.0 and the complexity factor is 0.5 + 0.75 = 1.25.
	got := EstimateFees(Params{CaseType: "divorce", CaseComplexity: 50, Location: "suburban"})

	require.Equal(t, Range{Low: 200, Average: 375, High: 563}, got.HourlyRateEstimate)
	require.Equal(t, Range{Low: 1500, Average: 3750, High: 9375}, got.FlatFeeEstimate)
	require.Equal(t, 25, got.TimeEstimate.Hours)
	require.Equal(t, "3-6 months", got.TimeEstimate.Timeframe)
	require.Equal(t, 0, got.ContingencyEstimate.Percentage)
}

func TestEstimateFees_LocationMultipliers(t *testing.T) {
	t.Parallel()

	urban := EstimateFees(Params{CaseType: "divorce", CaseComplexity: 50, Location: "urban"})
	rural := EstimateFees(Params{CaseType: "divorce", CaseComplexity: 50, Location: "rural"})

	// Low end is scaled by location only: 200 * 1.3 and 200 * 0.8.
	require.Equal(t, 260, urban.HourlyRateEstimate.Low)
	require.Equal(t, 160, rural.HourlyRateEstimate.Low)
}

func TestEstimateFees_UrgencyShortensTimeframe(t *testing.T) {
	t.Parallel()

	got := EstimateFees(Params{CaseType: "divorce", CaseComplexity: 50, Location: "suburban", Urgency: true})

	// ceil(3*0.7)=3, ceil(6*0.7)=5
	require.Equal(t, "3-5 months", got.TimeEstimate.Timeframe)
	// High end picks up the 1.5 urgency multiplier: round(450*1.25*1.5).
	require.Equal(t, 844, got.HourlyRateEstimate.High)
}

func TestEstimateFees_ContingencyAdjustments(t *testing.T) {
	t.Parallel()

	// personal-injury carries a 33% contingency on a $50k settlement.
	low := EstimateFees(Params{CaseType: "personal-injury", CaseComplexity: 20, Location: "suburban"})
	require.Equal(t, 33, low.ContingencyEstimate.Percentage)
	require.Equal(t, 35000, low.ContingencyEstimate.EstimatedSettlement) // * 0.7
	require.Equal(t, 11550, low.ContingencyEstimate.EstimatedFee)

	high := EstimateFees(Params{CaseType: "personal-injury", CaseComplexity: 80, Location: "suburban"})
	require.Equal(t, 38, high.ContingencyEstimate.Percentage) // +5, capped at 40
	require.Equal(t, 75000, high.ContingencyEstimate.EstimatedSettlement)
}

func TestEstimateFees_UnknownTypeFallsBack(t *testing.T) {
	t.Parallel()

	got := EstimateFees(Params{CaseType: "maritime-salvage", CaseComplexity: 50, Location: "suburban"})
	require.Equal(t, Range{Low: 200, Average: 438, High: 625}, got.HourlyRateEstimate)
	require.Equal(t, 30, got.ContingencyEstimate.Percentage)
}

func TestEstimateFees_Deterministic(t *testing.T) {
	t.Parallel()

	p := Params{CaseType: "criminal-defense", CaseComplexity: 73, Location: "urban", Urgency: true}
	require.Equal(t, EstimateFees(p), EstimateFees(p))
}

func TestCaseTypes_SortedAndComplete(t *testing.T) {
	t.Parallel()

	got := CaseTypes()
	require.Equal(t, []string{
		"business-formation",
		"criminal-defense",
		"divorce",
		"estate-planning",
		"immigration",
		"intellectual-property",
		"personal-injury",
		"real-estate",
	}, got)
}
