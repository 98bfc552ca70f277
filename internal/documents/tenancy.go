package documents

import (
	"fmt"
	"time"

	"landlordheaven/pkg/domain"
)

// renderTenancyAgreement drafts an assured shorthold tenancy agreement from
// the collected facts: parties, property, term, rent and deposit, followed by
// the standard obligations.
func renderTenancyAgreement(facts domain.CaseFacts, now time.Time, preview bool) ([]byte, error) {
	r := newRenderer("Assured Shorthold Tenancy Agreement", preview)
	tenancy := facts.Tenancy

	r.formHeader("ASSURED SHORTHOLD TENANCY AGREEMENT",
		"Housing Act 1988 (as amended by the Housing Act 1996)",
		"This agreement creates an assured shorthold tenancy within Part 1 "+
			"Chapter 2 of the Housing Act 1988",
		"",
		"")

	r.section("1. The parties")
	r.fieldRow("Landlord:", facts.Landlord.Name)
	r.fieldRow("Address:", addressLine(facts.Landlord.AddressLines, facts.Landlord.Postcode))
	r.pdf.Ln(2)
	r.fieldRow("Tenant(s):", joinNames(facts.Tenant.Names))
	r.pdf.Ln(2)

	r.section("2. The property")
	r.boxedValue(addressLine(facts.Property.AddressLines, facts.Property.Postcode))

	r.section("3. The term")
	r.paragraph(termClause(tenancy, now))

	r.section("4. The rent")
	r.paragraph(fmt.Sprintf("The rent is %s per %s, payable in advance on the first day "+
		"of each rental period, without deduction or set-off.",
		domain.FormatGBP(tenancy.RentPence), periodNoun(tenancy.RentPeriod)))

	r.section("5. The deposit")
	r.paragraph(depositClause(tenancy))

	r.section("6. Tenant's obligations")
	for _, clause := range []string{
		"To pay the rent on the days and in the manner set out above.",
		"To keep the interior of the property in good and clean condition and not to " +
			"cause damage beyond fair wear and tear.",
		"Not to cause a nuisance or annoyance to neighbours or to use the property for " +
			"any illegal or immoral purpose.",
		"Not to assign, sublet or part with possession of the whole or any part of the " +
			"property without the landlord's prior written consent.",
		"To allow the landlord or the landlord's agent access at reasonable times, on at " +
			"least 24 hours' written notice, to inspect the property or carry out repairs.",
		"To notify the landlord promptly of any disrepair or defect the landlord is " +
			"responsible for.",
	} {
		r.paragraph("- " + clause)
	}

	r.section("7. Landlord's obligations")
	for _, clause := range []string{
		"To keep in repair the structure and exterior of the property and the " +
			"installations for the supply of water, gas, electricity, sanitation and " +
			"heating, as required by section 11 of the Landlord and Tenant Act 1985.",
		"To allow the tenant quiet enjoyment of the property during the tenancy.",
		"To insure the building and to comply with the gas safety, electrical safety and " +
			"energy performance requirements that apply to the tenancy.",
	} {
		r.paragraph("- " + clause)
	}

	r.section("8. Ending the tenancy")
	r.paragraph("The landlord may recover possession in accordance with the Housing Act " +
		"1988, including under section 21 after any fixed term has ended and under " +
		"section 8 where a ground in Schedule 2 applies. The tenant may end a periodic " +
		"tenancy by giving at least one month's written notice expiring at the end of a " +
		"rental period.")

	r.rule()
	r.section("Signatures")
	r.fieldRow("Signed (landlord):", "[Signed]")
	r.fieldRow("Name:", facts.Landlord.Name)
	r.fieldRow("Date:", ukDate(now))
	r.pdf.Ln(4)
	for _, name := range facts.Tenant.Names {
		r.fieldRow("Signed (tenant):", "[Signed]")
		r.fieldRow("Name:", name)
		r.fieldRow("Date:", ukDate(now))
		r.pdf.Ln(2)
	}

	return r.bytes()
}

// termClause describes the term: fixed when an end date is known, otherwise a
// periodic tenancy from the start date.
func termClause(tenancy *domain.TenancyFacts, now time.Time) string {
	start := now
	if !tenancy.StartDate.IsZero() {
		start = tenancy.StartDate.Time
	}

	if !tenancy.FixedTermEnd.IsZero() {
		return fmt.Sprintf("The tenancy is granted for a fixed term beginning on %s and "+
			"ending on %s. If the tenant remains in occupation after the fixed term a "+
			"statutory periodic tenancy arises on the same terms.",
			ukDate(start), ukDate(tenancy.FixedTermEnd.Time))
	}

	return fmt.Sprintf("The tenancy is a %s periodic tenancy beginning on %s and "+
		"continuing from period to period until ended in accordance with this agreement "+
		"or by law.", periodAdjective(tenancy.RentPeriod), ukDate(start))
}

// depositClause describes the deposit and its protection, or records that no
// deposit was taken.
func depositClause(tenancy *domain.TenancyFacts) string {
	if tenancy.DepositPence <= 0 {
		return "No deposit is payable under this agreement."
	}

	clause := fmt.Sprintf("A deposit of %s is payable on or before the start of the "+
		"tenancy. The deposit will be protected in a government authorised tenancy "+
		"deposit scheme within 30 days and the prescribed information served on the "+
		"tenant.", domain.FormatGBP(tenancy.DepositPence))
	if tenancy.DepositScheme != "" {
		clause += " The scheme used is " + tenancy.DepositScheme + "."
	}

	return clause
}

func periodNoun(p domain.RentPeriod) string {
	if p == domain.RentPeriodWeekly {
		return "week"
	}

	return "month"
}

func periodAdjective(p domain.RentPeriod) string {
	if p == domain.RentPeriodWeekly {
		return "weekly"
	}

	return "monthly"
}
