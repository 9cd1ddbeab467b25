package defense

import (
	"errors"
	"fmt"
	"time"

	"github.com/hemanthreddy-komma/Legal-IT/internal/cases"
)

// The renderer is split in two: buildPlan turns the inputs into an ordered,
// fully resolved list of sections and blocks (all suppression and fallback
// rules live here), and Render paints that plan into a PDF. The plan layer is
// pure, so every structural rule is testable without parsing PDF bytes.

const (
	disclaimerText  = "DISCLAIMER: This document is generated for informational purposes only and does not constitute legal advice. Consult with a qualified attorney for legal representation."
	finalNoticeText = "This document provides potential legal defenses based on the information you provided. The success of these defenses depends on the specific facts and circumstances of your case. This document is not a substitute for legal representation. You should consult with a qualified attorney who can provide personalized legal advice and representation."
)

var ErrIncompleteArguments = errors.New("defense arguments structure is incomplete")

// RenderData is the full renderer input. Output depends only on these fields;
// GeneratedAt is supplied by the caller so a fixed timestamp yields
// byte-identical documents.
type RenderData struct {
	Case        *cases.Case
	Arguments   *Arguments
	CaseID      string
	GeneratedAt time.Time
}

type blockKind int

const (
	blockTitle      blockKind = iota // document title, large, centered
	blockCentered                    // centered plain line
	blockCenteredBold
	blockDisclaimer // centered, small italic boilerplate
	blockField      // "Label:" + value on one line
	blockSubheading // category heading inside a section
	blockArgTitle   // individual defense title
	blockParagraph
	blockItalicLabel
	blockBullets
	blockBoldLabel
)

type block struct {
	kind  blockKind
	label string
	text  string
	items []string
}

type section struct {
	title  string // "" renders without a heading or rule line
	blocks []block
}

func field(label, value string) block { return block{kind: blockField, label: label, text: value} }
func paragraph(text string) block     { return block{kind: blockParagraph, text: text} }
func bullets(items []string) block    { return block{kind: blockBullets, items: items} }
func subheading(text string) block    { return block{kind: blockSubheading, text: text} }

// buildPlan assembles the document structure top to bottom. It fails before
// emitting anything if the argument structure is missing a category, so a
// partial document can never be produced.
func buildPlan(data RenderData) ([]section, error) {
	if data.Case == nil {
		return nil, fmt.Errorf("%w: missing case record", ErrIncompleteArguments)
	}
	if err := validateArguments(data.Arguments); err != nil {
		return nil, err
	}

	c := data.Case
	args := data.Arguments

	var plan []section

	// Title block and fixed disclaimer.
	plan = append(plan, section{blocks: []block{
		{kind: blockTitle, text: "LEGAL DEFENSE DOCUMENT"},
		{kind: blockCentered, text: "Generated on: " + data.GeneratedAt.Format("January 2, 2006")},
		{kind: blockCentered, text: "Case ID: " + data.CaseID},
		{kind: blockDisclaimer, text: disclaimerText},
	}})

	plan = append(plan, section{title: "PERSONAL INFORMATION", blocks: []block{
		field("Full Name:", c.FullName),
		field("Date of Birth:", c.DateOfBirth),
		field("Address:", c.Address),
		field("Phone:", c.Phone),
		field("Email:", c.Email),
	}})

	caseNumber := c.CaseNumber
	if caseNumber == "" {
		caseNumber = "Not provided"
	}
	caseDetails := []block{
		field("Case Number:", caseNumber),
		field("Case Type:", c.CaseType),
		field("Court:", c.CourtName),
		field("Date of Charge:", c.ChargeDate),
	}
	if c.ArrestDate != "" {
		caseDetails = append(caseDetails, field("Date of Arrest:", c.ArrestDate))
	}
	plan = append(plan, section{title: "CASE DETAILS", blocks: caseDetails})

	plan = append(plan, section{title: "CHARGES AND CIRCUMSTANCES", blocks: []block{
		field("Charges:", c.Charges),
		field("Circumstances:", c.Circumstances),
	}})

	// The whole section disappears when the three primary defense inputs are
	// blank; otherwise each sub-field is suppressed independently.
	if c.Alibi != "" || c.Witnesses != "" || c.Evidence != "" {
		var blocks []block
		for _, f := range []struct{ label, value string }{
			{"Alibi:", c.Alibi},
			{"Witnesses:", c.Witnesses},
			{"Evidence:", c.Evidence},
			{"Prior Record:", c.PriorRecord},
			{"Additional Information:", c.AdditionalInfo},
		} {
			if f.value != "" {
				blocks = append(blocks, field(f.label, f.value))
			}
		}
		plan = append(plan, section{title: "DEFENSE INFORMATION", blocks: blocks})
	}

	defenses := section{title: "POTENTIAL LEGAL DEFENSES"}
	defenses.blocks = append(defenses.blocks, subheading("Constitutional Defenses:"))
	defenses.blocks = append(defenses.blocks, argumentBlocks(args.ConstitutionalViolations)...)
	defenses.blocks = append(defenses.blocks, subheading("Procedural Defenses:"))
	defenses.blocks = append(defenses.blocks, argumentBlocks(args.ProceduralDefenses)...)
	defenses.blocks = append(defenses.blocks, subheading("Factual Defenses:"))
	defenses.blocks = append(defenses.blocks, argumentBlocks(args.FactualDefenses)...)
	defenses.blocks = append(defenses.blocks, subheading("Important Legal Precedents:"))
	for _, group := range args.LegalPrecedents {
		defenses.blocks = append(defenses.blocks, bullets(group.Cases))
	}
	defenses.blocks = append(defenses.blocks, subheading("Recommended Actions:"))
	defenses.blocks = append(defenses.blocks, bullets(args.RecommendedActions))
	plan = append(plan, defenses)

	plan = append(plan, section{blocks: []block{
		{kind: blockCenteredBold, text: "IMPORTANT NOTICE:"},
		{kind: blockCentered, text: finalNoticeText},
	}})

	return plan, nil
}

// argumentBlocks renders defenses in the order supplied, never resorting.
func argumentBlocks(list []Argument) []block {
	var out []block
	for _, d := range list {
		out = append(out, block{kind: blockArgTitle, text: d.Title})
		out = append(out, paragraph(d.Description))
		if len(d.RelevantCases) > 0 {
			out = append(out, block{kind: blockItalicLabel, text: "Relevant Cases:"})
			out = append(out, bullets(d.RelevantCases))
		}
		out = append(out, block{kind: blockBoldLabel, text: "Application to Your Case:"})
		out = append(out, paragraph(d.ApplicationToCase))
	}
	return out
}

func validateArguments(args *Arguments) error {
	if args == nil {
		return fmt.Errorf("%w: nil structure", ErrIncompleteArguments)
	}
	switch {
	case args.ConstitutionalViolations == nil:
		return fmt.Errorf("%w: constitutional violations missing", ErrIncompleteArguments)
	case args.ProceduralDefenses == nil:
		return fmt.Errorf("%w: procedural defenses missing", ErrIncompleteArguments)
	case args.FactualDefenses == nil:
		return fmt.Errorf("%w: factual defenses missing", ErrIncompleteArguments)
	case args.LegalPrecedents == nil:
		return fmt.Errorf("%w: legal precedents missing", ErrIncompleteArguments)
	case args.RecommendedActions == nil:
		return fmt.Errorf("%w: recommended actions missing", ErrIncompleteArguments)
	}
	return nil
}
