package analyzer

// Document analysis is a stubbed collaborator: the API contract is real, the
// content is canned. A production implementation would extract text from the
// upload and run it through a model behind the same Result shape.

type Summary struct {
	Title         string   `json:"title"`
	Type          string   `json:"type"`
	Parties       []string `json:"parties"`
	EffectiveDate string   `json:"effectiveDate"`
	KeyPoints     []string `json:"keyPoints"`
}

type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Importance string `json:"importance"`
	Section    string `json:"section"`
}

type Risk struct {
	Issue          string `json:"issue"`
	Severity       string `json:"severity"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type Result struct {
	Summary  Summary   `json:"summary"`
	KeyTerms []KeyTerm `json:"keyTerms"`
	Risks    []Risk    `json:"risks"`
}

// Analyze returns the canned analysis for any uploaded document.
func Analyze(filename string) *Result {
	_ = filename
	return &Result{
		Summary: Summary{
			Title:         "Service Agreement",
			Type:          "Contract",
			Parties:       []string{"Acme Corporation", "XYZ Consulting LLC"},
			EffectiveDate: "January 15, 2025",
			KeyPoints: []string{
				"Initial term of 24 months with automatic renewal",
				"Payment terms: Net 30 days from invoice date",
				"Confidentiality provisions extend 3 years beyond termination",
				"Limited liability capped at fees paid in previous 12 months",
				"Governing law: State of Delaware",
			},
		},
		KeyTerms: []KeyTerm{
			{
				Term:       "Intellectual Property Rights",
				Definition: "All rights in patents, copyrights, trademarks, trade secrets, and other proprietary rights.",
				Importance: "high",
				Section:    "Section 8.2",
			},
			{
				Term:       "Force Majeure",
				Definition: "Unforeseeable circumstances that prevent fulfillment of contract obligations.",
				Importance: "medium",
				Section:    "Section 12.4",
			},
			{
				Term:       "Indemnification",
				Definition: "Protection against legal liability for another party's actions.",
				Importance: "high",
				Section:    "Section 10.1",
			},
			{
				Term:       "Termination for Convenience",
				Definition: "Right to terminate the agreement without cause with 60 days notice.",
				Importance: "medium",
				Section:    "Section 14.3",
			},
			{
				Term:       "Acceptance Criteria",
				Definition: "Standards that deliverables must meet to be considered complete.",
				Importance: "medium",
				Section:    "Section 5.2",
			},
		},
		Risks: []Risk{
			{
				Issue:          "Ambiguous Acceptance Process",
				Severity:       "high",
				Description:    "The acceptance criteria lack specific timelines and objective standards.",
				Recommendation: "Define clear acceptance criteria with specific metrics and timeframes.",
			},
			{
				Issue:          "One-sided Indemnification",
				Severity:       "high",
				Description:    "Indemnification obligations are not mutual and place excessive burden on one party.",
				Recommendation: "Negotiate mutual indemnification provisions with reasonable limitations.",
			},
			{
				Issue:          "Vague Service Level Agreements",
				Severity:       "medium",
				Description:    "SLAs lack specific performance metrics and remedies for non-compliance.",
				Recommendation: "Include quantifiable metrics and clear remedies for SLA violations.",
			},
			{
				Issue:          "Limited Termination Rights",
				Severity:       "medium",
				Description:    "Termination rights are restricted and may lock parties into unfavorable terms.",
				Recommendation: "Add termination for convenience with reasonable notice period.",
			},
			{
				Issue:          "Broad Confidentiality Obligations",
				Severity:       "low",
				Description:    "Confidentiality provisions may be overly broad in scope and duration.",
				Recommendation: "Limit confidentiality to truly sensitive information with reasonable time limits.",
			},
		},
	}
}
