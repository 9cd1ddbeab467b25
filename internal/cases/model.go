package cases

import (
	"strings"
	"time"
)

// Case is a persisted intake form submission. It is written once; only the
// pdf_generated fields change afterwards, when a document has been rendered.
type Case struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"user_id"`
	FullName       string     `db:"full_name" json:"full_name"`
	DateOfBirth    string     `db:"date_of_birth" json:"date_of_birth"`
	Address        string     `db:"address" json:"address"`
	Phone          string     `db:"phone" json:"phone"`
	Email          string     `db:"email" json:"email"`
	CaseNumber     string     `db:"case_number" json:"case_number,omitempty"`
	CaseType       string     `db:"case_type" json:"case_type"`
	CourtName      string     `db:"court_name" json:"court_name"`
	ChargeDate     string     `db:"charge_date" json:"charge_date"`
	ArrestDate     string     `db:"arrest_date" json:"arrest_date,omitempty"`
	Charges        string     `db:"charges" json:"charges"`
	Circumstances  string     `db:"circumstances" json:"circumstances"`
	Alibi          string     `db:"alibi" json:"alibi,omitempty"`
	Witnesses      string     `db:"witnesses" json:"witnesses,omitempty"`
	Evidence       string     `db:"evidence" json:"evidence,omitempty"`
	PriorRecord    string     `db:"prior_record" json:"prior_record,omitempty"`
	AdditionalInfo string     `db:"additional_info" json:"additional_info,omitempty"`
	PDFGenerated   bool       `db:"pdf_generated" json:"pdf_generated"`
	PDFGeneratedAt *time.Time `db:"pdf_generated_at" json:"pdf_generated_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

// IntakeRequest is the defense-generator form payload.
type IntakeRequest struct {
	FullName       string `json:"fullName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	CaseNumber     string `json:"caseNumber"`
	CaseType       string `json:"caseType"`
	CourtName      string `json:"courtName"`
	ChargeDate     string `json:"chargeDate"`
	ArrestDate     string `json:"arrestDate"`
	Charges        string `json:"charges"`
	Circumstances  string `json:"circumstances"`
	Alibi          string `json:"alibi"`
	Witnesses      string `json:"witnesses"`
	Evidence       string `json:"evidence"`
	PriorRecord    string `json:"priorRecord"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Validate trims every field and reports whether all required fields are
// present. Case number, arrest date and the five defense-support fields are
// optional; everything else is mandatory.
func (r *IntakeRequest) Validate() bool {
	r.FullName = strings.TrimSpace(r.FullName)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.CaseNumber = strings.TrimSpace(r.CaseNumber)
	r.CaseType = strings.TrimSpace(r.CaseType)
	r.CourtName = strings.TrimSpace(r.CourtName)
	r.ChargeDate = strings.TrimSpace(r.ChargeDate)
	r.ArrestDate = strings.TrimSpace(r.ArrestDate)
	r.Charges = strings.TrimSpace(r.Charges)
	r.Circumstances = strings.TrimSpace(r.Circumstances)
	r.Alibi = strings.TrimSpace(r.Alibi)
	r.Witnesses = strings.TrimSpace(r.Witnesses)
	r.Evidence = strings.TrimSpace(r.Evidence)
	r.PriorRecord = strings.TrimSpace(r.PriorRecord)
	r.AdditionalInfo = strings.TrimSpace(r.AdditionalInfo)

	required := []string{
		r.FullName, r.DateOfBirth, r.Address, r.Phone, r.Email,
		r.CaseType, r.CourtName, r.ChargeDate, r.Charges, r.Circumstances,
	}
	for _, f := range required {
		if f == "" {
			return false
		}
	}
	return true
}

// ToCase builds the record to persist for the given owner.
func (r *IntakeRequest) ToCase(userID string) *Case {
	return &Case{
		UserID:         userID,
		FullName:       r.FullName,
		DateOfBirth:    r.DateOfBirth,
		Address:        r.Address,
		Phone:          r.Phone,
		Email:          r.Email,
		CaseNumber:     r.CaseNumber,
		CaseType:       r.CaseType,
		CourtName:      r.CourtName,
		ChargeDate:     r.ChargeDate,
		ArrestDate:     r.ArrestDate,
		Charges:        r.Charges,
		Circumstances:  r.Circumstances,
		Alibi:          r.Alibi,
		Witnesses:      r.Witnesses,
		Evidence:       r.Evidence,
		PriorRecord:    r.PriorRecord,
		AdditionalInfo: r.AdditionalInfo,
	}
}
