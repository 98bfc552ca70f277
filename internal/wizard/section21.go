package wizard

import (
	"time"

	"landlordheaven/pkg/domain"
)

// Section 21 statutory timings: two months' notice, no service within the
// first four months of the tenancy, and the served notice stays reliable for
// six months (the documents layer prints the reliance window).
const (
	section21NoticeMonths  = 2
	section21MinTenancyAge = 4 // months since the tenancy started
)

// evalSection21 checks the no-fault route. Every unmet prerequisite becomes a
// blocker; unanswered compliance questions block too, since a notice served
// without them is invalid.
func evalSection21(facts domain.CaseFacts, now time.Time) domain.RouteEligibility {
	out := domain.RouteEligibility{NoticeMonths: section21NoticeMonths}

	t := facts.Tenancy
	if t == nil {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "tenancy_details_missing",
			Detail: "tenancy details have not been provided",
		})

		return out
	}

	if t.Type != domain.TenancyTypeAST {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "not_ast",
			Detail: "section 21 is only available for assured shorthold tenancies",
		})
	}

	if t.DepositPence > 0 {
		if !boolFact(t.DepositProtected) {
			out.Blockers = append(out.Blockers, domain.Blocker{
				Code:   "deposit_unprotected",
				Detail: "the deposit is not confirmed as protected in an approved scheme",
			})
		} else if !boolFact(t.PrescribedInfoGiven) {
			out.Blockers = append(out.Blockers, domain.Blocker{
				Code:   "prescribed_info_missing",
				Detail: "the deposit's prescribed information is not confirmed as served",
			})
		}
	}

	c := facts.Compliance
	if c == nil {
		c = &domain.ComplianceFacts{}
	}
	if !boolFact(c.GasCertificateGiven) {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "gas_certificate_missing",
			Detail: "a current gas safety certificate is not confirmed as given to the tenant",
		})
	}
	if !boolFact(c.EPCGiven) {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "epc_missing",
			Detail: "an energy performance certificate is not confirmed as given to the tenant",
		})
	}
	if !boolFact(c.HowToRentGiven) {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "how_to_rent_missing",
			Detail: "the 'How to Rent' guide is not confirmed as given to the tenant",
		})
	}
	if boolFact(c.LicenceRequired) && !boolFact(c.LicenceHeld) {
		out.Blockers = append(out.Blockers, domain.Blocker{
			Code:   "licence_missing",
			Detail: "the property requires a licence which is not confirmed as held",
		})
	}

	if !t.StartDate.IsZero() {
		earliest := t.StartDate.AddDate(0, section21MinTenancyAge, 0)
		if now.Before(earliest) {
			out.Blockers = append(out.Blockers, domain.Blocker{
				Code:   "too_early",
				Detail: "a section 21 notice cannot be served in the first four months of the tenancy",
			})
		}
	}

	out.Eligible = len(out.Blockers) == 0

	return out
}

// boolFact reads an optional yes/no answer; unanswered counts as no.
func boolFact(p *bool) bool {
	return p != nil && *p
}
