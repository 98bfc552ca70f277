package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time-of-day component, serialized as
// "2006-01-02". The wizard exchanges dates in this format and generated
// documents print them in UK order.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) Date {
	t = t.UTC()

	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}

		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("could not parse date %q: %w", s, err)
	}

	*d = Date{t}

	return nil
}

// RentPeriod is the billing period of the rent.
type RentPeriod string

const (
	RentPeriodWeekly  RentPeriod = "weekly"
	RentPeriodMonthly RentPeriod = "monthly"
)

// TenancyType distinguishes assured shorthold tenancies from everything else.
// Section 21 is only available for ASTs.
type TenancyType string

const (
	TenancyTypeAST   TenancyType = "ast"
	TenancyTypeOther TenancyType = "other"
)

// LandlordCapacity is the capacity in which notices are signed.
type LandlordCapacity string

const (
	CapacityLandlord       LandlordCapacity = "landlord"
	CapacityJointLandlords LandlordCapacity = "joint_landlords"
	CapacityAgent          LandlordCapacity = "agent"
)

// CaseFacts is everything the wizard collects about a case, grouped by topic.
// Groups arrive incrementally; a nil group means the wizard has not reached
// that topic yet. Unanswered questions within a group use pointer fields so
// "no" can be told apart from "not asked".
type CaseFacts struct {
	Landlord   *LandlordFacts   `json:"landlord,omitempty"`
	Tenant     *TenantFacts     `json:"tenant,omitempty"`
	Property   *PropertyFacts   `json:"property,omitempty"`
	Tenancy    *TenancyFacts    `json:"tenancy,omitempty"`
	Compliance *ComplianceFacts `json:"compliance,omitempty"`
	Arrears    *ArrearsFacts    `json:"arrears,omitempty"`
	Conduct    *ConductFacts    `json:"conduct,omitempty"`
	Goals      *GoalsFacts      `json:"goals,omitempty"`
}

// Merge overlays the non-nil groups of updates onto f. Groups are replaced
// wholesale; the wizard always submits a full group when any field in it
// changes.
func (f CaseFacts) Merge(updates CaseFacts) CaseFacts {
	if updates.Landlord != nil {
		f.Landlord = updates.Landlord
	}
	if updates.Tenant != nil {
		f.Tenant = updates.Tenant
	}
	if updates.Property != nil {
		f.Property = updates.Property
	}
	if updates.Tenancy != nil {
		f.Tenancy = updates.Tenancy
	}
	if updates.Compliance != nil {
		f.Compliance = updates.Compliance
	}
	if updates.Arrears != nil {
		f.Arrears = updates.Arrears
	}
	if updates.Conduct != nil {
		f.Conduct = updates.Conduct
	}
	if updates.Goals != nil {
		f.Goals = updates.Goals
	}

	return f
}

// LandlordFacts identifies the landlord (or agent) serving notices.
type LandlordFacts struct {
	Name         string           `json:"name,omitempty"`
	AddressLines []string         `json:"addressLines,omitempty"`
	Postcode     string           `json:"postcode,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Email        string           `json:"email,omitempty"`
	Capacity     LandlordCapacity `json:"capacity,omitempty"`
}

// TenantFacts identifies the tenant(s) the notices are addressed to.
type TenantFacts struct {
	// Names lists all tenants; joint tenants are all named on notices.
	Names []string `json:"names,omitempty"`
}

// PropertyFacts describes the let property.
type PropertyFacts struct {
	AddressLines []string `json:"addressLines,omitempty"`
	Postcode     string   `json:"postcode,omitempty"`
}

// TenancyFacts describes the tenancy agreement in force.
type TenancyFacts struct {
	Type      TenancyType `json:"type,omitempty"`
	StartDate Date        `json:"startDate,omitzero"`
	// FixedTermEnd is the end of the fixed term, zero for periodic tenancies.
	FixedTermEnd Date       `json:"fixedTermEnd,omitzero"`
	RentPence    int64      `json:"rentPence,omitempty"`
	RentPeriod   RentPeriod `json:"rentPeriod,omitempty"`

	DepositPence int64 `json:"depositPence,omitempty"`
	// DepositProtected says whether the deposit is held in a government
	// approved scheme. Required for Section 21 when a deposit was taken.
	DepositProtected *bool  `json:"depositProtected,omitempty"`
	DepositScheme    string `json:"depositScheme,omitempty"`
	// PrescribedInfoGiven says whether the deposit's prescribed information
	// was served on the tenant.
	PrescribedInfoGiven *bool `json:"prescribedInfoGiven,omitempty"`
}

// MonthlyRentPence converts the rent to a monthly equivalent. Weekly rents
// use the 52-week year convention.
func (t *TenancyFacts) MonthlyRentPence() int64 {
	if t == nil || t.RentPence <= 0 {
		return 0
	}
	if t.RentPeriod == RentPeriodWeekly {
		return t.RentPence * 52 / 12
	}

	return t.RentPence
}

// ComplianceFacts covers the statutory prerequisites checked before a
// Section 21 notice can be served.
type ComplianceFacts struct {
	GasCertificateGiven *bool `json:"gasCertificateGiven,omitempty"`
	EPCGiven            *bool `json:"epcGiven,omitempty"`
	HowToRentGiven      *bool `json:"howToRentGiven,omitempty"`
	LicenceRequired     *bool `json:"licenceRequired,omitempty"`
	LicenceHeld         *bool `json:"licenceHeld,omitempty"`
}

// ArrearsItem is one rent period in the arrears schedule.
type ArrearsItem struct {
	PeriodStart Date  `json:"periodStart,omitzero"`
	PeriodEnd   Date  `json:"periodEnd,omitzero"`
	DuePence    int64 `json:"duePence,omitempty"`
	PaidPence   int64 `json:"paidPence,omitempty"`
}

// ArrearsFacts describes unpaid rent.
type ArrearsFacts struct {
	TotalPence      int64 `json:"totalPence,omitempty"`
	FirstMissedDate Date  `json:"firstMissedDate,omitzero"`
	// PersistentDelay says whether the tenant has persistently paid late,
	// beyond the periods currently owed.
	PersistentDelay *bool         `json:"persistentDelay,omitempty"`
	Items           []ArrearsItem `json:"items,omitempty"`
}

// ConductFacts covers tenant behaviour grounds.
type ConductFacts struct {
	Antisocial        *bool  `json:"antisocial,omitempty"`
	AntisocialDetails string `json:"antisocialDetails,omitempty"`
	Breach            *bool  `json:"breach,omitempty"`
	BreachDetails     string `json:"breachDetails,omitempty"`
}

// GoalsFacts captures what the landlord wants out of the case.
type GoalsFacts struct {
	WantsPossession *bool `json:"wantsPossession,omitempty"`
	WantsMoney      *bool `json:"wantsMoney,omitempty"`
}
