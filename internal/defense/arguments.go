package defense

import "github.com/hemanthreddy-komma/Legal-IT/internal/cases"

// GenerateArguments derives the defense-argument structure for an intake
// record. The content is a fixed knowledge base; only the alibi-based factual
// defense varies with the input. Swapping this for a model-backed generator
// would not change the renderer contract.
func GenerateArguments(c *cases.Case) *Arguments {
	alibiDescription := "Consider if you have evidence placing you elsewhere during the incident."
	alibiApplication := "Gather evidence such as receipts, witness statements, or electronic records that can confirm your location."
	if c.Alibi != "" {
		alibiDescription = "You were elsewhere when the alleged crime occurred."
		alibiApplication = c.Alibi
	}

	return &Arguments{
		ConstitutionalViolations: []Argument{
			{
				Title:       "Fourth Amendment - Unlawful Search and Seizure",
				Description: "The search conducted was without probable cause or a valid warrant, violating your Fourth Amendment rights.",
				RelevantCases: []string{
					"Mapp v. Ohio (1961) - Evidence obtained through unconstitutional searches is inadmissible",
					"Terry v. Ohio (1968) - Police must have reasonable suspicion for a stop and frisk",
				},
				ApplicationToCase: "Based on the circumstances you described, the officer did not have reasonable suspicion to conduct the search that led to the discovery of evidence.",
			},
			{
				Title:       "Fifth Amendment - Miranda Rights Violation",
				Description: "You were not properly informed of your Miranda rights before questioning.",
				RelevantCases: []string{
					"Miranda v. Arizona (1966) - Suspects must be informed of their rights before custodial interrogation",
					"Berghuis v. Thompkins (2010) - Suspects must unambiguously invoke their right to remain silent",
				},
				ApplicationToCase: "According to your account, you were questioned before being informed of your rights to remain silent and to have an attorney present.",
			},
		},
		ProceduralDefenses: []Argument{
			{
				Title:       "Chain of Custody Issues",
				Description: "There may be issues with how evidence was collected, stored, and processed.",
				RelevantCases: []string{
					"United States v. Rawlinson (2008) - Evidence must have proper chain of custody documentation",
				},
				ApplicationToCase: "Request documentation of the chain of custody for all physical evidence to identify potential mishandling.",
			},
			{
				Title:       "Statute of Limitations",
				Description: "The time limit for bringing charges may have expired.",
				RelevantCases: []string{
					"Stogner v. California (2003) - Extending a statute of limitations cannot revive an expired prosecution",
				},
				ApplicationToCase: "Verify when the alleged offense occurred and compare with the applicable statute of limitations for this type of charge.",
			},
		},
		FactualDefenses: []Argument{
			{
				Title:             "Alibi Defense",
				Description:       alibiDescription,
				ApplicationToCase: alibiApplication,
			},
			{
				Title:       "Mistaken Identity",
				Description: "You may have been misidentified as the perpetrator.",
				RelevantCases: []string{
					"United States v. Wade (1967) - Established guidelines for lineup identifications",
				},
				ApplicationToCase: "Challenge any eyewitness identifications, particularly if they occurred under suggestive circumstances.",
			},
		},
		LegalPrecedents: []PrecedentGroup{
			{
				Title: "Relevant Case Law",
				Cases: []string{
					"In re Winship (1970) - Prosecution must prove all elements beyond reasonable doubt",
					"Brady v. Maryland (1963) - Prosecution must disclose exculpatory evidence",
					"Kyles v. Whitley (1995) - Materiality of evidence is considered cumulatively, not item by item",
				},
			},
		},
		RecommendedActions: []string{
			"Request all discovery materials from the prosecution",
			"File a motion to suppress evidence obtained through potentially unlawful search",
			"Challenge the admissibility of any statements made before Miranda warnings",
			"Gather and preserve alibi evidence and witness statements",
			"Consider expert witnesses if technical or scientific evidence is involved",
			"Prepare for preliminary hearing to challenge probable cause",
		},
	}
}
