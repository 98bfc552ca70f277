package documents

import (
	"time"

	"landlordheaven/pkg/domain"
)

// renderSection21 produces Form 6A, the no-fault notice under Housing Act
// 1988 section 21. The required-to-leave date is two months from service or
// the end of the fixed term, whichever is later.
func renderSection21(facts domain.CaseFacts, now time.Time, preview bool) ([]byte, error) {
	r := newRenderer("Notice Seeking Possession (Form 6A)", preview)

	r.formHeader("FORM 6A",
		"Housing Act 1988 section 21(1) and (4) as amended",
		"Notice seeking possession of a property let on an Assured Shorthold Tenancy",
		"",
		"")

	r.section("1. To:")
	r.boxedValue(joinNames(facts.Tenant.Names))

	r.section("2. You are required to leave the below address after:")
	r.boxedValue(ukDate(section21Expiry(now, facts.Tenancy)))
	r.paragraph("If you do not leave, your landlord may apply to the court for an order " +
		"under section 21(1) or (4) of the Housing Act 1988 requiring you to give up " +
		"possession.")

	r.section("3. Address of the premises:")
	r.boxedValue(addressLine(facts.Property.AddressLines, facts.Property.Postcode))

	r.section("4. Notes:")
	r.paragraph("The date specified in section 2 must be at least two months after this " +
		"notice is given, and cannot be earlier than the end of any fixed term of the " +
		"tenancy.")
	r.paragraph("An application for a possession order under section 21 may not be made " +
		"more than six months after this notice is given. After that the notice will " +
		"lapse and a new notice must be given.")

	r.signatureBlock("5. Name and address of landlord:",
		"To be signed and dated by the landlord or the landlord's agent (someone acting "+
			"for the landlord). If there are joint landlords each landlord or the agent "+
			"must sign unless one signs on behalf of the rest with their agreement.",
		facts.Landlord, noticeCapacityLabels, ukDate(now))

	r.servedFooter(ukDate(now))

	return r.bytes()
}
