package wizard

import (
	"fmt"

	"landlordheaven/pkg/domain"
)

// Schedule 2 ground numbers the engine evaluates.
const (
	ground8Code  = "8"
	ground10Code = "10"
	ground11Code = "11"
	ground12Code = "12"
	ground14Code = "14"
)

// Notice periods per Housing Act 1988 s.8(4B): 14 days for the rent and
// breach grounds, none for antisocial behaviour (ground 14).
const (
	rentGroundNoticeDays       = 14
	antisocialGroundNoticeDays = 0
)

// weeksPerMonthThreshold: ground 8 counts two months for monthly rents and
// eight weeks for weekly rents.
const (
	ground8ArrearsMonths = 2
	ground8ArrearsWeeks  = 8
)

// evalGrounds produces one finding per Section 8 ground considered, in
// statutory order. Missing fact groups leave the affected grounds unmet.
func evalGrounds(facts domain.CaseFacts) []domain.GroundFinding {
	return []domain.GroundFinding{
		evalGround8(facts),
		evalGround10(facts),
		evalGround11(facts),
		evalGround12(facts),
		evalGround14(facts),
	}
}

// evalGround8 checks the mandatory serious-arrears ground: at least two
// months' rent unpaid for monthly tenancies, at least eight weeks' for
// weekly ones.
func evalGround8(facts domain.CaseFacts) domain.GroundFinding {
	finding := domain.GroundFinding{
		Code:       ground8Code,
		Mandatory:  true,
		NoticeDays: rentGroundNoticeDays,
	}

	arrears := totalArrearsPence(facts)
	if arrears <= 0 {
		finding.Reason = "no rent arrears provided"

		return finding
	}
	if facts.Tenancy == nil || facts.Tenancy.RentPence <= 0 {
		finding.Reason = "rent amount not provided"

		return finding
	}

	var threshold int64
	var thresholdLabel string
	if facts.Tenancy.RentPeriod == domain.RentPeriodWeekly {
		threshold = facts.Tenancy.RentPence * ground8ArrearsWeeks
		thresholdLabel = "eight weeks'"
	} else {
		threshold = facts.Tenancy.RentPence * ground8ArrearsMonths
		thresholdLabel = "two months'"
	}

	if arrears >= threshold {
		finding.Met = true
		finding.Reason = fmt.Sprintf("arrears of %s are at least %s rent",
			domain.FormatGBP(arrears), thresholdLabel)
	} else {
		finding.Reason = fmt.Sprintf("arrears of %s are below %s rent (%s)",
			domain.FormatGBP(arrears), thresholdLabel, domain.FormatGBP(threshold))
	}

	return finding
}

// evalGround10 checks the discretionary some-arrears ground.
func evalGround10(facts domain.CaseFacts) domain.GroundFinding {
	finding := domain.GroundFinding{
		Code:       ground10Code,
		NoticeDays: rentGroundNoticeDays,
	}

	if arrears := totalArrearsPence(facts); arrears > 0 {
		finding.Met = true
		finding.Reason = fmt.Sprintf("rent lawfully due of %s is unpaid", domain.FormatGBP(arrears))
	} else {
		finding.Reason = "no rent arrears provided"
	}

	return finding
}

// evalGround11 checks persistent delay in paying rent, independent of the
// amount currently owed.
func evalGround11(facts domain.CaseFacts) domain.GroundFinding {
	finding := domain.GroundFinding{
		Code:       ground11Code,
		NoticeDays: rentGroundNoticeDays,
	}

	if facts.Arrears != nil && facts.Arrears.PersistentDelay != nil && *facts.Arrears.PersistentDelay {
		finding.Met = true
		finding.Reason = "the tenant has persistently delayed paying rent"
	} else {
		finding.Reason = "persistent delay in paying rent not reported"
	}

	return finding
}

// evalGround12 checks breach of a tenancy obligation other than rent.
func evalGround12(facts domain.CaseFacts) domain.GroundFinding {
	finding := domain.GroundFinding{
		Code:       ground12Code,
		NoticeDays: rentGroundNoticeDays,
	}

	if facts.Conduct != nil && facts.Conduct.Breach != nil && *facts.Conduct.Breach {
		finding.Met = true
		finding.Reason = "an obligation of the tenancy has been broken"
		if facts.Conduct.BreachDetails != "" {
			finding.Reason += ": " + facts.Conduct.BreachDetails
		}
	} else {
		finding.Reason = "no breach of the tenancy reported"
	}

	return finding
}

// evalGround14 checks nuisance or antisocial behaviour. Proceedings may begin
// as soon as the notice is served, so the notice period is zero.
func evalGround14(facts domain.CaseFacts) domain.GroundFinding {
	finding := domain.GroundFinding{
		Code:       ground14Code,
		NoticeDays: antisocialGroundNoticeDays,
	}

	if facts.Conduct != nil && facts.Conduct.Antisocial != nil && *facts.Conduct.Antisocial {
		finding.Met = true
		finding.Reason = "the tenant has caused nuisance or annoyance"
		if facts.Conduct.AntisocialDetails != "" {
			finding.Reason += ": " + facts.Conduct.AntisocialDetails
		}
	} else {
		finding.Reason = "no nuisance or antisocial behaviour reported"
	}

	return finding
}

// summarizeSection8 folds the findings into a route eligibility: open when
// any ground is met, with the longest notice period among the met grounds.
func summarizeSection8(grounds []domain.GroundFinding) domain.RouteEligibility {
	out := domain.RouteEligibility{}
	for _, g := range grounds {
		if !g.Met {
			continue
		}
		out.Eligible = true
		if g.NoticeDays > out.NoticeDays {
			out.NoticeDays = g.NoticeDays
		}
	}

	if !out.Eligible {
		out.Blockers = []domain.Blocker{{
			Code:   "no_grounds",
			Detail: "none of the section 8 grounds are supported by the facts provided",
		}}
	}

	return out
}
