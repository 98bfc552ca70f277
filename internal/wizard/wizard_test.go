package wizard_test

import (
	"testing"
	"time"

	"landlordheaven/internal/wizard"
	"landlordheaven/pkg/domain"

	"github.com/stretchr/testify/require"
)

var analyzeNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func boolPtr(b bool) *bool { return &b }

// fullEvictionFacts is a case with two months of arrears on a compliant AST,
// so both the mandatory arrears ground and Section 21 are open.
func fullEvictionFacts() domain.CaseFacts {
	return domain.CaseFacts{
		Landlord: &domain.LandlordFacts{
			Name:     "Tariq Mohammed",
			Capacity: domain.CapacityLandlord,
		},
		Tenant: &domain.TenantFacts{Names: []string{"Sonia Shezadi"}},
		Property: &domain.PropertyFacts{
			AddressLines: []string{"35 Woodhall Park Avenue", "Pudsey"},
			Postcode:     "LS28 7HF",
		},
		Tenancy: &domain.TenancyFacts{
			Type:                domain.TenancyTypeAST,
			StartDate:           domain.NewDate(2024, time.June, 1),
			RentPence:           150000,
			RentPeriod:          domain.RentPeriodMonthly,
			DepositPence:        173000,
			DepositProtected:    boolPtr(true),
			DepositScheme:       "DPS",
			PrescribedInfoGiven: boolPtr(true),
		},
		Compliance: &domain.ComplianceFacts{
			GasCertificateGiven: boolPtr(true),
			EPCGiven:            boolPtr(true),
			HowToRentGiven:      boolPtr(true),
			LicenceRequired:     boolPtr(false),
		},
		Arrears: &domain.ArrearsFacts{
			TotalPence:      300000,
			FirstMissedDate: domain.NewDate(2025, time.October, 1),
			PersistentDelay: boolPtr(true),
		},
		Goals: &domain.GoalsFacts{
			WantsPossession: boolPtr(true),
			WantsMoney:      boolPtr(true),
		},
	}
}

func findGround(t *testing.T, a domain.Assessment, code string) domain.GroundFinding {
	t.Helper()
	for _, g := range a.Grounds {
		if g.Code == code {
			return g
		}
	}
	t.Fatalf("ground %s not present in assessment", code)

	return domain.GroundFinding{}
}

func hasBlocker(el domain.RouteEligibility, code string) bool {
	for _, b := range el.Blockers {
		if b.Code == code {
			return true
		}
	}

	return false
}

func TestAnalyze_dualRouteWhenGround8AndSection21(t *testing.T) {
	a := wizard.Analyze(domain.CaseTypeEviction, fullEvictionFacts(), analyzeNow)

	require.Equal(t, domain.RouteDual, a.Route)
	require.Equal(t, domain.ProductEvictionPack, a.Product)
	require.Contains(t, a.SecondaryRoutes, domain.RouteMoneyClaim)

	require.True(t, a.Section8.Eligible)
	require.Equal(t, 14, a.Section8.NoticeDays)
	require.True(t, a.Section21.Eligible)
	require.Empty(t, a.Section21.Blockers)
	require.Equal(t, 2, a.Section21.NoticeMonths)

	require.Equal(t, []string{"8", "10", "11"}, a.MetGrounds())
	g8 := findGround(t, a, "8")
	require.True(t, g8.Mandatory)
	require.Contains(t, g8.Reason, "£3,000.00")

	require.InDelta(t, 2.0, a.ArrearsMonths, 0.001)
	require.Equal(t, analyzeNow, a.GeneratedAt)
}

func TestAnalyze_section8WhenSection21Blocked(t *testing.T) {
	facts := fullEvictionFacts()
	facts.Compliance.GasCertificateGiven = boolPtr(false)

	a := wizard.Analyze(domain.CaseTypeEviction, facts, analyzeNow)

	require.Equal(t, domain.RouteSection8, a.Route)
	require.Equal(t, domain.ProductSection8Notice, a.Product)
	require.Contains(t, a.SecondaryRoutes, domain.RouteMoneyClaim)
	require.False(t, a.Section21.Eligible)
	require.True(t, hasBlocker(a.Section21, "gas_certificate_missing"))
}

func TestAnalyze_section21WhenNoArrears(t *testing.T) {
	facts := fullEvictionFacts()
	facts.Arrears = nil
	facts.Conduct = nil

	a := wizard.Analyze(domain.CaseTypeEviction, facts, analyzeNow)

	require.Equal(t, domain.RouteSection21, a.Route)
	require.Equal(t, domain.ProductSection21Notice, a.Product)
	require.Empty(t, a.SecondaryRoutes)
	require.False(t, a.Section8.Eligible)
	require.True(t, hasBlocker(a.Section8, "no_grounds"))
	require.Zero(t, a.ArrearsMonths)
}

func TestAnalyze_moneyClaimCaseType(t *testing.T) {
	facts := fullEvictionFacts()
	facts.Goals = nil

	a := wizard.Analyze(domain.CaseTypeMoneyClaim, facts, analyzeNow)

	require.Equal(t, domain.RouteMoneyClaim, a.Route)
	require.Equal(t, domain.ProductMoneyClaimPack, a.Product)
	require.Empty(t, a.SecondaryRoutes)
}

func TestAnalyze_moneyOnlyGoalOnEvictionCase(t *testing.T) {
	facts := fullEvictionFacts()
	facts.Goals = &domain.GoalsFacts{
		WantsPossession: boolPtr(false),
		WantsMoney:      boolPtr(true),
	}

	a := wizard.Analyze(domain.CaseTypeEviction, facts, analyzeNow)

	require.Equal(t, domain.RouteMoneyClaim, a.Route)
	require.Equal(t, domain.ProductMoneyClaimPack, a.Product)
}

func TestAnalyze_tenancyAgreementCase(t *testing.T) {
	a := wizard.Analyze(domain.CaseTypeTenancyAgreement, domain.CaseFacts{}, analyzeNow)

	require.Equal(t, domain.RouteTenancyAgreement, a.Route)
	require.Equal(t, domain.ProductTenancyAgreement, a.Product)
}

func TestAnalyze_emptyFacts(t *testing.T) {
	a := wizard.Analyze(domain.CaseTypeEviction, domain.CaseFacts{}, analyzeNow)

	require.Equal(t, domain.RouteNone, a.Route)
	require.Empty(t, a.Product)
	require.Empty(t, a.MetGrounds())
	require.Len(t, a.Grounds, 5)
	for _, g := range a.Grounds {
		require.False(t, g.Met)
		require.NotEmpty(t, g.Reason)
	}
	require.False(t, a.Section21.Eligible)
	require.True(t, hasBlocker(a.Section21, "tenancy_details_missing"))
	require.Zero(t, a.ArrearsMonths)
}

func TestAnalyze_arrearsStillOfferMoneyClaimWhenNoRouteIsOpen(t *testing.T) {
	// One month of arrears on a non-AST tenancy: ground 8 is short of its
	// threshold and Section 21 is blocked, but the arrears are still worth a
	// money claim alongside the possession goal.
	facts := fullEvictionFacts()
	facts.Tenancy.Type = domain.TenancyTypeOther
	facts.Arrears.TotalPence = 150000
	facts.Arrears.PersistentDelay = boolPtr(false)

	a := wizard.Analyze(domain.CaseTypeEviction, facts, analyzeNow)

	require.Equal(t, domain.RouteNone, a.Route)
	require.Empty(t, a.Product)
	require.Contains(t, a.SecondaryRoutes, domain.RouteMoneyClaim)
}

func TestAnalyze_discretionaryGroundsAloneRecommendNothing(t *testing.T) {
	// Antisocial behaviour on a non-AST tenancy: ground 14 is met but there
	// is no mandatory ground and no Section 21, so nothing is recommended.
	facts := domain.CaseFacts{
		Tenancy: &domain.TenancyFacts{Type: domain.TenancyTypeOther},
		Conduct: &domain.ConductFacts{
			Antisocial:        boolPtr(true),
			AntisocialDetails: "repeated noise complaints from neighbours",
		},
	}

	a := wizard.Analyze(domain.CaseTypeEviction, facts, analyzeNow)

	require.Equal(t, domain.RouteNone, a.Route)
	require.True(t, a.Section8.Eligible)
	require.Equal(t, 0, a.Section8.NoticeDays)
	g14 := findGround(t, a, "14")
	require.True(t, g14.Met)
	require.Contains(t, g14.Reason, "noise complaints")
	require.True(t, hasBlocker(a.Section21, "not_ast"))
}
