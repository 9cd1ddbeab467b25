package defense

// Argument is one potential defense: what it is, why it matters, and how it
// maps onto the facts the user supplied.
type Argument struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	RelevantCases     []string `json:"relevantCases,omitempty"`
	ApplicationToCase string   `json:"applicationToCase"`
}

// PrecedentGroup is a titled flat list of citations.
type PrecedentGroup struct {
	Title string   `json:"title"`
	Cases []string `json:"cases"`
}

// Arguments is the full structure consumed by the document renderer. The four
// category slices plus RecommendedActions must all be non-nil; the renderer
// refuses to build a document from a partial structure.
type Arguments struct {
	ConstitutionalViolations []Argument       `json:"constitutionalViolations"`
	ProceduralDefenses       []Argument       `json:"proceduralDefenses"`
	FactualDefenses          []Argument       `json:"factualDefenses"`
	LegalPrecedents          []PrecedentGroup `json:"legalPrecedents"`
	RecommendedActions       []string         `json:"recommendedActions"`
}
