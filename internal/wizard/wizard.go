// Package wizard is the decision engine behind the intake wizard. Analyze is
// a pure function from collected case facts to an assessment; it performs no
// I/O and never fails, so partially filled fact sets simply produce unmet
// findings and blockers instead of errors.
package wizard

import (
	"math"
	"time"

	"landlordheaven/pkg/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var assessments = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "wizard_assessments_total",
	Help: "Number of assessments produced, labeled by recommended route.",
}, []string{"route"})

// Analyze evaluates the collected facts for a case and recommends a legal
// route with the catalog product that fulfills it. The same engine runs for
// anonymous wizard sessions and for persisted cases; now is the reference
// time for tenancy-age checks.
func Analyze(caseType domain.CaseType, facts domain.CaseFacts, now time.Time) domain.Assessment {
	assessment := domain.Assessment{
		Grounds:       evalGrounds(facts),
		Section21:     evalSection21(facts, now),
		ArrearsMonths: arrearsMonths(facts),
		GeneratedAt:   now.UTC(),
	}
	assessment.Section8 = summarizeSection8(assessment.Grounds)

	pickRoute(caseType, facts, &assessment)
	assessments.WithLabelValues(string(assessment.Route)).Inc()

	return assessment
}

// pickRoute applies the recommendation ladder. Ground 8 dominates because it
// is mandatory; Section 21 alone is the fallback for possession without
// fault; arrears without a possession goal become a money claim.
func pickRoute(caseType domain.CaseType, facts domain.CaseFacts, a *domain.Assessment) {
	if caseType == domain.CaseTypeTenancyAgreement {
		a.Route = domain.RouteTenancyAgreement
		a.Product = domain.ProductTenancyAgreement

		return
	}

	arrears := totalArrearsPence(facts)
	ground8Met := false
	for _, g := range a.Grounds {
		if g.Code == ground8Code && g.Met {
			ground8Met = true
		}
	}

	if !wantsPossession(caseType, facts) {
		if arrears > 0 {
			a.Route = domain.RouteMoneyClaim
			a.Product = domain.ProductMoneyClaimPack

			return
		}
		a.Route = domain.RouteNone

		return
	}

	switch {
	case ground8Met && a.Section21.Eligible:
		a.Route = domain.RouteDual
		a.Product = domain.ProductEvictionPack
	case ground8Met:
		a.Route = domain.RouteSection8
		a.Product = domain.ProductSection8Notice
	case a.Section21.Eligible:
		a.Route = domain.RouteSection21
		a.Product = domain.ProductSection21Notice
	default:
		a.Route = domain.RouteNone
	}

	// arrears alongside a possession goal are worth a parallel money claim,
	// even when no possession route is open yet
	if arrears > 0 {
		a.SecondaryRoutes = append(a.SecondaryRoutes, domain.RouteMoneyClaim)
	}
}

// wantsPossession resolves the landlord's goal, defaulting by case type when
// the goals group has not been answered.
func wantsPossession(caseType domain.CaseType, facts domain.CaseFacts) bool {
	if facts.Goals != nil && facts.Goals.WantsPossession != nil {
		return *facts.Goals.WantsPossession
	}

	return caseType != domain.CaseTypeMoneyClaim
}

func totalArrearsPence(facts domain.CaseFacts) int64 {
	if facts.Arrears == nil {
		return 0
	}

	return facts.Arrears.TotalPence
}

// arrearsMonths expresses the arrears in months of rent, rounded to two
// decimals. Unknown rent or arrears yield zero rather than a division error.
func arrearsMonths(facts domain.CaseFacts) float64 {
	monthly := facts.Tenancy.MonthlyRentPence()
	arrears := totalArrearsPence(facts)
	if monthly <= 0 || arrears <= 0 {
		return 0
	}

	return math.Round(float64(arrears)/float64(monthly)*100) / 100
}
