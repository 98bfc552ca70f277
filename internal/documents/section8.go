package documents

import (
	"fmt"
	"time"

	"landlordheaven/pkg/domain"
)

// groundText is the Schedule 2 wording printed for each ground relied on, in
// the abbreviated form the official Form 3 guidance uses.
var groundText = map[string]string{ //nolint: gochecknoglobals
	"8": "Ground 8: Both at the date of the service of this notice and at the date of the hearing, " +
		"at least two months' rent is unpaid (where rent is payable monthly) or at least eight weeks' " +
		"rent is unpaid (where rent is payable weekly).",
	"10": "Ground 10: Some rent lawfully due from the tenant is unpaid on the date on which the " +
		"proceedings for possession are begun and was in arrears at the date of the service of this notice.",
	"11": "Ground 11: Whether or not any rent is in arrears on the date on which proceedings for " +
		"possession are begun, the tenant has persistently delayed paying rent which has become lawfully due.",
	"12": "Ground 12: Any obligation of the tenancy (other than one related to the payment of rent) " +
		"has been broken or not performed.",
	"14": "Ground 14: The tenant or a person residing in or visiting the dwelling-house has been " +
		"guilty of conduct causing or likely to cause a nuisance or annoyance, or has been convicted of " +
		"using the dwelling-house for immoral or illegal purposes.",
}

var noticeCapacityLabels = map[domain.LandlordCapacity]string{ //nolint: gochecknoglobals
	domain.CapacityLandlord:       "Landlord",
	domain.CapacityJointLandlords: "Joint landlords",
	domain.CapacityAgent:          "Landlord's agent",
}

// renderSection8 produces Form 3, the notice seeking possession under Housing
// Act 1988 section 8, filled from the case facts and the grounds the
// assessment found to be met.
func renderSection8(facts domain.CaseFacts,
	assessment domain.Assessment,
	now time.Time,
	preview bool) ([]byte, error) {
	r := newRenderer("Notice Seeking Possession (Form 3)", preview)

	r.formHeader("FORM 3",
		"Housing Act 1988 section 8 as amended by section 151 of the Housing Act 1996",
		"Notice seeking possession of a property let on an Assured Tenancy "+
			"or an Assured Agricultural Occupancy",
		"",
		"")

	r.section("1. To:")
	r.boxedValue(joinNames(facts.Tenant.Names))

	r.section("2. Your landlord intends to apply to the court for an order requiring you " +
		"to give up possession of:")
	r.boxedValue(addressLine(facts.Property.AddressLines, facts.Property.Postcode))

	r.section("3. Your landlord intends to seek possession on the following ground(s) in " +
		"Schedule 2 to the Housing Act 1988, as amended:")
	for _, g := range assessment.Grounds {
		if !g.Met {
			continue
		}
		if text, ok := groundText[g.Code]; ok {
			r.paragraph(text)
		}
	}

	r.section("4. Particulars of each ground:")
	r.paragraph(groundParticulars(facts, assessment))

	r.section("5. The court proceedings will not begin until after:")
	r.boxedValue(ukDate(earliestProceedings(now, assessment.Section8.NoticeDays)))
	r.paragraph("Court proceedings cannot begin earlier than the date shown above and " +
		"must begin within twelve months of the service of this notice. After this time " +
		"the notice will lapse and a new notice must be served before possession can be " +
		"sought.")

	r.signatureBlock("6. Name and address of landlord:",
		"To be signed and dated by the landlord or the landlord's agent (someone acting "+
			"for the landlord). If there are joint landlords each landlord or the agent "+
			"must sign unless one signs on behalf of the rest with their agreement.",
		facts.Landlord, noticeCapacityLabels, ukDate(now))

	r.servedFooter(ukDate(now))

	return r.bytes()
}

// groundParticulars writes the factual story supporting the grounds: the
// arrears position, persistent delay, breaches and antisocial conduct as far
// as the facts cover them.
func groundParticulars(facts domain.CaseFacts, assessment domain.Assessment) string {
	var parts []string

	if a := facts.Arrears; a != nil && a.TotalPence > 0 {
		line := fmt.Sprintf("As at the date of this notice the rent account is in arrears "+
			"in the sum of %s", domain.FormatGBP(a.TotalPence))
		if assessment.ArrearsMonths > 0 {
			line += fmt.Sprintf(", equivalent to %.2f months' rent", assessment.ArrearsMonths)
		}
		if !a.FirstMissedDate.IsZero() {
			line += fmt.Sprintf(". Rent has been unpaid since %s", ukDate(a.FirstMissedDate.Time))
		}
		parts = append(parts, line+".")

		for _, item := range a.Items {
			parts = append(parts, fmt.Sprintf("Period %s to %s: rent due %s, paid %s.",
				ukDate(item.PeriodStart.Time), ukDate(item.PeriodEnd.Time),
				domain.FormatGBP(item.DuePence), domain.FormatGBP(item.PaidPence)))
		}
	}

	if a := facts.Arrears; a != nil && a.PersistentDelay != nil && *a.PersistentDelay {
		parts = append(parts, "The tenant has persistently delayed paying rent which has "+
			"become lawfully due.")
	}

	if c := facts.Conduct; c != nil {
		if c.Breach != nil && *c.Breach {
			detail := c.BreachDetails
			if detail == "" {
				detail = "An obligation of the tenancy other than the payment of rent has been broken."
			}
			parts = append(parts, detail)
		}
		if c.Antisocial != nil && *c.Antisocial {
			detail := c.AntisocialDetails
			if detail == "" {
				detail = "The tenant has been guilty of conduct causing or likely to cause a " +
					"nuisance or annoyance."
			}
			parts = append(parts, detail)
		}
	}

	if len(parts) == 0 {
		return "See the grounds set out above."
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += "\n" + p
	}

	return out
}
