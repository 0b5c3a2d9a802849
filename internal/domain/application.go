package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of a vendor application.
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "under_review"
	StatusApproved    Status = "approved"
	StatusDeclined    Status = "declined"
)

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDeclined
}

// Event represents an admin decision that triggers a state transition.
type Event string

const (
	EventReview  Event = "review"
	EventApprove Event = "approve"
	EventDecline Event = "decline"
)

// Transition defines a valid state change: an event moves an application from Src to Dst.
type Transition struct {
	Event Event
	Src   Status
	Dst   Status
}

// Transitions defines all valid state changes in the application lifecycle.
// This is domain knowledge consumed by the FSM adapter. Approved and
// declined are terminal: no event leads out of them.
var Transitions = []Transition{
	{Event: EventReview, Src: StatusPending, Dst: StatusUnderReview},
	{Event: EventApprove, Src: StatusPending, Dst: StatusApproved},
	{Event: EventApprove, Src: StatusUnderReview, Dst: StatusApproved},
	{Event: EventDecline, Src: StatusPending, Dst: StatusDeclined},
	{Event: EventDecline, Src: StatusUnderReview, Dst: StatusDeclined},
}

// Plan is the subscription tier requested by an applicant.
type Plan string

const (
	PlanBasic      Plan = "basic"
	PlanPremium    Plan = "premium"
	PlanEnterprise Plan = "enterprise"
)

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanPremium || p == PlanEnterprise
}

// Address is a full business address. All fields are required.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// SocialLinks holds optional social media profile URLs.
type SocialLinks struct {
	Facebook  string
	Instagram string
	Twitter   string
	LinkedIn  string
}

// BankDetails holds the payout account for a business. All fields are required.
type BankDetails struct {
	BankName      string
	AccountNumber string
	RoutingNumber string
	HolderName    string
}

// Document is a reference to an uploaded supporting document.
// Storage of the file itself is an external concern.
type Document struct {
	Name       string
	URL        string
	UploadedAt time.Time
}

// BusinessProfile carries the business identity shared by an application
// and the vendor it becomes. It is copied onto the Vendor at approval
// time and independently editable afterwards.
type BusinessProfile struct {
	Name               string
	Description        string
	Address            Address
	Phone              string
	Email              string
	RegistrationNumber string
	TaxID              string
	LicenseURL         string
	Website            string
	Social             SocialLinks
	Bank               BankDetails
}

// Application is a user's request to become a marketplace seller.
// A user may hold at most one application at any time, regardless of
// status. Approved and declined applications are retained as audit
// records, never deleted.
type Application struct {
	ID                     string
	UserID                 string
	Business               BusinessProfile
	Plan                   Plan
	ExpectedMonthlyRevenue decimal.Decimal
	ProductCategories      []string
	SubmissionNotes        string
	Documents              []Document

	Status     Status
	AdminNotes string
	ReviewedBy string
	ReviewedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewApplication creates an application in the initial "pending" state.
// An empty plan defaults to basic.
func NewApplication(id, userID string, business BusinessProfile, plan Plan, revenue decimal.Decimal, categories []string, notes string, documents []Document) Application {
	if plan == "" {
		plan = PlanBasic
	}
	now := time.Now().UTC()
	return Application{
		ID:                     id,
		UserID:                 userID,
		Business:               business,
		Plan:                   plan,
		ExpectedMonthlyRevenue: revenue,
		ProductCategories:      categories,
		SubmissionNotes:        notes,
		Documents:              documents,
		Status:                 StatusPending,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// Validate checks that all required business and banking fields are
// present and the plan is known. It returns a *ValidationError naming
// every missing or invalid field.
func (a Application) Validate() error {
	var fields []string

	require := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			fields = append(fields, name)
		}
	}

	b := a.Business
	require("businessName", b.Name)
	require("businessDescription", b.Description)
	require("address.street", b.Address.Street)
	require("address.city", b.Address.City)
	require("address.state", b.Address.State)
	require("address.zipCode", b.Address.ZipCode)
	require("address.country", b.Address.Country)
	require("businessPhone", b.Phone)
	require("businessEmail", b.Email)
	require("registrationNumber", b.RegistrationNumber)
	require("taxId", b.TaxID)
	require("licenseUrl", b.LicenseURL)
	require("bank.bankName", b.Bank.BankName)
	require("bank.accountNumber", b.Bank.AccountNumber)
	require("bank.routingNumber", b.Bank.RoutingNumber)
	require("bank.holderName", b.Bank.HolderName)

	if !a.Plan.Valid() {
		fields = append(fields, "plan")
	}
	if a.ExpectedMonthlyRevenue.IsNegative() {
		fields = append(fields, "expectedMonthlyRevenue")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ApplicationPatch is a partial update of an application's business
// payload. A nil field leaves the stored value unchanged; a non-nil
// field replaces it, which makes clearing an optional field possible
// (required fields are re-validated after the patch is applied).
type ApplicationPatch struct {
	BusinessName           *string
	BusinessDescription    *string
	Address                *Address
	Phone                  *string
	Email                  *string
	RegistrationNumber     *string
	TaxID                  *string
	LicenseURL             *string
	Plan                   *Plan
	ExpectedMonthlyRevenue *decimal.Decimal
	ProductCategories      []string
	Website                *string
	Social                 *SocialLinks
	Bank                   *BankDetails
	SubmissionNotes        *string
	Documents              []Document
}

// ApplyPatch overwrites the fields provided in the patch and bumps
// UpdatedAt. Lifecycle fields are never touched here.
func (a *Application) ApplyPatch(p ApplicationPatch) {
	if p.BusinessName != nil {
		a.Business.Name = *p.BusinessName
	}
	if p.BusinessDescription != nil {
		a.Business.Description = *p.BusinessDescription
	}
	if p.Address != nil {
		a.Business.Address = *p.Address
	}
	if p.Phone != nil {
		a.Business.Phone = *p.Phone
	}
	if p.Email != nil {
		a.Business.Email = *p.Email
	}
	if p.RegistrationNumber != nil {
		a.Business.RegistrationNumber = *p.RegistrationNumber
	}
	if p.TaxID != nil {
		a.Business.TaxID = *p.TaxID
	}
	if p.LicenseURL != nil {
		a.Business.LicenseURL = *p.LicenseURL
	}
	if p.Plan != nil {
		a.Plan = *p.Plan
	}
	if p.ExpectedMonthlyRevenue != nil {
		a.ExpectedMonthlyRevenue = *p.ExpectedMonthlyRevenue
	}
	if p.ProductCategories != nil {
		a.ProductCategories = p.ProductCategories
	}
	if p.Website != nil {
		a.Business.Website = *p.Website
	}
	if p.Social != nil {
		a.Business.Social = *p.Social
	}
	if p.Bank != nil {
		a.Business.Bank = *p.Bank
	}
	if p.SubmissionNotes != nil {
		a.SubmissionNotes = *p.SubmissionNotes
	}
	if p.Documents != nil {
		a.Documents = p.Documents
	}
	a.UpdatedAt = time.Now().UTC()
}
