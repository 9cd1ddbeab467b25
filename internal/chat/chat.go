package chat

import "strings"

// Role tags a chat message as coming from the user or the assistant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Valid reports whether the role is one of the two known variants.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Canned answers keyed by topic keyword. The first keyword found in the query
// wins; order matters, so keep this as a slice rather than a map.
var topics = []struct {
	keyword string
	answer  string
}{
	{
		keyword: "divorce",
		answer:  "Divorce laws vary by state, but generally involve the legal dissolution of a marriage. The process typically includes division of assets and debts, determination of spousal support, and if applicable, child custody and support arrangements.\n\nMost states now offer 'no-fault' divorce options, which don't require proving wrongdoing by either spouse. However, the waiting periods, residency requirements, and specific procedures differ significantly between jurisdictions.\n\nI recommend consulting with a family law attorney who practices in your state for specific guidance tailored to your situation.",
	},
	{
		keyword: "contract",
		answer:  "Contracts are legally binding agreements between parties. For a contract to be valid, it generally needs to include: an offer, acceptance of that offer, consideration (something of value exchanged), legal capacity of the parties, and lawful purpose.\n\nIf you're reviewing a contract, pay special attention to key terms like payment provisions, termination clauses, liability limitations, and dispute resolution mechanisms.\n\nBefore signing any important contract, it's advisable to have it reviewed by an attorney who can identify potential issues and suggest modifications to protect your interests.",
	},
	{
		keyword: "will",
		answer:  "A will is a legal document that outlines how you want your assets distributed after death and can also name guardians for minor children. Without a will, your assets will be distributed according to your state's intestacy laws, which may not align with your wishes.\n\nTo create a valid will, you generally need to be of legal age and sound mind, put the will in writing, sign it, and have it witnessed according to your state's requirements. Some states recognize handwritten (holographic) wills, but they're often subject to additional scrutiny.\n\nWhile simple wills can sometimes be created using online templates, complex estates or family situations often benefit from professional legal guidance.",
	},
	{
		keyword: "landlord",
		answer:  "Landlord-tenant relationships are governed by both state laws and the terms of your lease agreement. Common legal protections for tenants include the right to habitable living conditions, proper notice before landlord entry, and specific procedures for security deposit handling.\n\nIf you're having issues with your landlord, first review your lease agreement to understand your rights and obligations. Document all communications and problems with dates, times, and photographs if relevant.\n\nMany areas have tenant advocacy organizations that can provide guidance specific to local laws. For serious disputes, consulting with a tenant rights attorney may be necessary.",
	},
	{
		keyword: "copyright",
		answer:  "Copyright protection automatically applies to original works of authorship (like writing, music, art, or software) once they're fixed in a tangible medium. Registration with the U.S. Copyright Office isn't required for protection but is necessary before filing an infringement lawsuit and provides additional benefits.\n\nCopyright generally lasts for the author's lifetime plus 70 years. It gives the owner exclusive rights to reproduce, distribute, display, perform, and create derivative works.\n\n'Fair use' allows limited use of copyrighted material without permission for purposes like criticism, commentary, news reporting, teaching, or research, but this is a complex determination based on several factors.",
	},
}

const defaultAnswer = "Thank you for your question about legal matters. To provide the most helpful information, I'd need to know more specifics about your situation.\n\nLegal frameworks can vary significantly between jurisdictions, and the application of laws often depends on the specific details of each case.\n\nWhile I can provide general information about legal concepts, remember that this isn't legal advice. For guidance on your specific situation, I'd recommend consulting with a qualified attorney who practices in the relevant area of law."

// Respond picks the canned answer matching the first topic keyword found in
// the query. History is accepted for interface compatibility; the stub does
// not use it.
func Respond(query string, history []Message) string {
	_ = history
	q := strings.ToLower(query)
	for _, t := range topics {
		if strings.Contains(q, t.keyword) {
			return t.answer
		}
	}
	return defaultAnswer
}
