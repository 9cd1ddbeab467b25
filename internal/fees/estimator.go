package fees

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Fee estimation is deterministic: a base-rate table per case type, adjusted
// by location, complexity and urgency multipliers. Amounts are whole dollars.

type Params struct {
	CaseType       string `json:"caseType"`
	CaseComplexity int    `json:"caseComplexity"` // 0-100
	Location       string `json:"location"`       // urban, suburban or rural
	Urgency        bool   `json:"urgency"`
}

type Range struct {
	Low     int `json:"low"`
	Average int `json:"average"`
	High    int `json:"high"`
}

type ContingencyEstimate struct {
	Percentage          int `json:"percentage"`
	EstimatedSettlement int `json:"estimatedSettlement"`
	EstimatedFee        int `json:"estimatedFee"`
}

type TimeEstimate struct {
	Hours     int    `json:"hours"`
	Timeframe string `json:"timeframe"`
}

type AdditionalCost struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

type Estimate struct {
	HourlyRateEstimate  Range               `json:"hourlyRateEstimate"`
	FlatFeeEstimate     Range               `json:"flatFeeEstimate"`
	ContingencyEstimate ContingencyEstimate `json:"contingencyEstimate"`
	TimeEstimate        TimeEstimate        `json:"timeEstimate"`
	AdditionalCosts     []AdditionalCost    `json:"additionalCosts"`
	Recommendations     []string            `json:"recommendations"`
}

type baseRate struct {
	hourly, flat          Range
	contingencyPercentage int
	settlement            int
	hours                 int
	timeframe             string
	additionalCosts       []AdditionalCost
	recommendations       []string
}

var baseRates = map[string]baseRate{
	"divorce": {
		hourly:    Range{200, 300, 450},
		flat:      Range{1500, 3000, 7500},
		hours:     20,
		timeframe: "3-6 months",
		additionalCosts: []AdditionalCost{
			{"Filing Fees", 300},
			{"Process Server", 100},
			{"Mediation", 1500},
		},
		recommendations: []string{
			"Consider mediation to reduce costs and time",
			"Prepare detailed financial documents before your first meeting",
			"Discuss fee structure options with your attorney",
		},
	},
	"personal-injury": {
		hourly:                Range{200, 350, 500},
		flat:                  Range{0, 0, 0},
		contingencyPercentage: 33,
		settlement:            50000,
		hours:                 30,
		timeframe:             "6-18 months",
		additionalCosts: []AdditionalCost{
			{"Medical Record Fees", 200},
			{"Expert Witnesses", 2500},
			{"Court Reporter", 800},
		},
		recommendations: []string{
			"Most personal injury cases are handled on contingency basis",
			"Keep detailed records of all medical treatments and expenses",
			"Discuss how case expenses will be handled if you don't win",
		},
	},
	"estate-planning": {
		hourly:    Range{250, 350, 500},
		flat:      Range{800, 2000, 5000},
		hours:     8,
		timeframe: "2-4 weeks",
		additionalCosts: []AdditionalCost{
			{"Document Filing Fees", 100},
			{"Notary Services", 50},
		},
		recommendations: []string{
			"Flat fee arrangements are common for basic estate planning",
			"Prepare an inventory of assets before meeting with an attorney",
			"Review and update your estate plan every 3-5 years",
		},
	},
	"business-formation": {
		hourly:    Range{250, 400, 600},
		flat:      Range{500, 1500, 3500},
		hours:     10,
		timeframe: "2-6 weeks",
		additionalCosts: []AdditionalCost{
			{"State Filing Fees", 300},
			{"Registered Agent Fee", 150},
			{"EIN Application", 0},
		},
		recommendations: []string{
			"Compare LLC vs. Corporation structures for tax implications",
			"Consider ongoing compliance requirements when choosing a structure",
			"Ask about package deals that include initial year of registered agent service",
		},
	},
	"criminal-defense": {
		hourly:    Range{200, 350, 700},
		flat:      Range{2500, 5000, 15000},
		hours:     40,
		timeframe: "3-12 months",
		additionalCosts: []AdditionalCost{
			{"Expert Witnesses", 3000},
			{"Investigator", 2000},
			{"Court Costs", 500},
		},
		recommendations: []string{
			"Most criminal defense attorneys charge flat fees by case stage",
			"Ask about payment plans if the total fee is difficult to pay upfront",
			"Ensure you understand what's included in the quoted fee",
		},
	},
	"real-estate": {
		hourly:    Range{200, 300, 450},
		flat:      Range{800, 1500, 3000},
		hours:     8,
		timeframe: "2-4 weeks",
		additionalCosts: []AdditionalCost{
			{"Title Search", 400},
			{"Recording Fees", 150},
			{"Survey", 500},
		},
		recommendations: []string{
			"Flat fees are common for residential real estate transactions",
			"Ask about title insurance options and costs",
			"Ensure all property disclosures are properly reviewed",
		},
	},
	"immigration": {
		hourly:    Range{200, 300, 450},
		flat:      Range{1000, 3000, 7500},
		hours:     15,
		timeframe: "3-24 months",
		additionalCosts: []AdditionalCost{
			{"USCIS Filing Fees", 1500},
			{"Biometrics Fee", 85},
			{"Translation Services", 300},
		},
		recommendations: []string{
			"Most immigration matters are handled on a flat fee basis",
			"Government filing fees are separate from attorney fees",
			"Ask about the attorney's experience with your specific visa type",
		},
	},
	"intellectual-property": {
		hourly:    Range{300, 450, 700},
		flat:      Range{2000, 5000, 10000},
		hours:     25,
		timeframe: "6-18 months",
		additionalCosts: []AdditionalCost{
			{"USPTO Filing Fees", 1000},
			{"Search Fees", 800},
			{"Drawings/Illustrations", 500},
		},
		recommendations: []string{
			"Patent applications typically cost more than trademarks",
			"Consider provisional patent applications for cost savings",
			"Discuss international protection options and costs",
		},
	},
}

var defaultRate = baseRate{
	hourly:                Range{200, 350, 500},
	flat:                  Range{1000, 2500, 5000},
	contingencyPercentage: 30,
	settlement:            50000,
	hours:                 20,
	timeframe:             "3-6 months",
	additionalCosts: []AdditionalCost{
		{"Filing Fees", 300},
		{"Administrative Costs", 200},
	},
	recommendations: []string{
		"Discuss fee structure options with your attorney",
		"Ask for a written fee agreement before proceeding",
		"Inquire about potential additional costs not included in the estimate",
	},
}

var timeframeRangeRe = regexp.MustCompile(`(\d+)-(\d+)`)

// EstimateFees produces the adjusted fee breakdown for the given parameters.
func EstimateFees(p Params) Estimate {
	base, ok := baseRates[p.CaseType]
	if !ok {
		base = defaultRate
	}

	locationMultiplier := 1.0
	switch p.Location {
	case "urban":
		locationMultiplier = 1.3
	case "rural":
		locationMultiplier = 0.8
	}

	complexityFactor := 0.5 + (float64(p.CaseComplexity)/100)*1.5

	urgencyMultiplier := 1.0
	if p.Urgency {
		urgencyMultiplier = 1.5
	}

	adjust := func(r Range) Range {
		return Range{
			Low:     round(float64(r.Low) * locationMultiplier),
			Average: round(float64(r.Average) * locationMultiplier * complexityFactor),
			High:    round(float64(r.High) * locationMultiplier * complexityFactor * urgencyMultiplier),
		}
	}

	contingencyPercentage := base.contingencyPercentage
	if contingencyPercentage > 0 && p.CaseComplexity > 70 {
		contingencyPercentage = min(40, contingencyPercentage+5)
	}

	settlement := float64(base.settlement)
	if p.CaseComplexity > 70 {
		settlement *= 1.5
	} else if p.CaseComplexity < 30 {
		settlement *= 0.7
	}

	timeframe := base.timeframe
	if p.Urgency {
		timeframe = timeframeRangeRe.ReplaceAllStringFunc(timeframe, func(m string) string {
			parts := timeframeRangeRe.FindStringSubmatch(m)
			lo, _ := strconv.Atoi(parts[1])
			hi, _ := strconv.Atoi(parts[2])
			return fmt.Sprintf("%d-%d",
				int(math.Ceil(float64(lo)*0.7)),
				int(math.Ceil(float64(hi)*0.7)))
		})
	}

	return Estimate{
		HourlyRateEstimate: adjust(base.hourly),
		FlatFeeEstimate:    adjust(base.flat),
		ContingencyEstimate: ContingencyEstimate{
			Percentage:          contingencyPercentage,
			EstimatedSettlement: round(settlement),
			EstimatedFee:        round(settlement * float64(contingencyPercentage) / 100),
		},
		TimeEstimate: TimeEstimate{
			Hours:     round(float64(base.hours) * complexityFactor),
			Timeframe: timeframe,
		},
		AdditionalCosts: base.additionalCosts,
		Recommendations: base.recommendations,
	}
}

// CaseTypes lists the case types with dedicated base rates, sorted.
func CaseTypes() []string {
	out := make([]string, 0, len(baseRates))
	for k := range baseRates {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}

func normalizeLocation(loc string) string {
	return strings.ToLower(strings.TrimSpace(loc))
}
