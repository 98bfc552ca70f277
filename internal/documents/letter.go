package documents

import (
	"fmt"
	"time"

	"landlordheaven/pkg/domain"
)

// responseDays is how long the pre-action protocol gives the tenant to reply
// before court proceedings are issued.
const responseDays = 14

// renderLetterBeforeClaim produces the pre-action letter for rent arrears,
// including the arrears schedule, as required by the Pre-Action Protocol for
// Debt Claims.
func renderLetterBeforeClaim(facts domain.CaseFacts, now time.Time, preview bool) ([]byte, error) {
	r := newRenderer("Letter Before Claim", preview)
	pdf := r.pdf

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5.5, r.tr(addressLine(facts.Landlord.AddressLines, facts.Landlord.Postcode)), "", "R", false)
	pdf.CellFormat(0, 5.5, r.tr(ukDate(now)), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.MultiCell(0, 5.5, r.tr(joinNames(facts.Tenant.Names)+"\n"+
		addressLine(facts.Property.AddressLines, facts.Property.Postcode)), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.MultiCell(0, 6, r.tr("LETTER BEFORE CLAIM - UNPAID RENT"), "", "L", false)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, r.tr(fmt.Sprintf("Re: %s",
		addressLine(facts.Property.AddressLines, facts.Property.Postcode))), "", "L", false)
	pdf.Ln(2)

	r.paragraph(fmt.Sprintf("Dear %s,", joinNames(facts.Tenant.Names)))
	r.paragraph(fmt.Sprintf("We write concerning the rent account for the above property. "+
		"As at the date of this letter the account is in arrears in the sum of %s. "+
		"This letter is sent in accordance with the Pre-Action Protocol for Debt Claims.",
		domain.FormatGBP(facts.Arrears.TotalPence)))

	if len(facts.Arrears.Items) > 0 {
		r.section("Schedule of arrears")
		arrearsTable(r, facts.Arrears.Items)
	}

	r.paragraph(fmt.Sprintf("You must pay the sum of %s, or contact us to propose a "+
		"repayment arrangement, within %d days of the date of this letter. An information "+
		"sheet and reply form as prescribed by the protocol should accompany this letter.",
		domain.FormatGBP(facts.Arrears.TotalPence), responseDays))
	r.paragraph(fmt.Sprintf("If we do not receive payment or a completed reply form by %s, "+
		"court proceedings may be issued against you without further notice. Court fees, "+
		"legal costs and interest under section 69 of the County Courts Act 1984 may be "+
		"added to the amount claimed.", ukDate(now.AddDate(0, 0, responseDays))))
	r.paragraph("If you are having difficulty paying you should seek free, independent " +
		"debt advice, for example from Citizens Advice, StepChange or National Debtline.")

	pdf.Ln(4)
	r.paragraph("Yours sincerely,")
	pdf.Ln(6)
	r.fieldRow("Name:", facts.Landlord.Name)
	r.fieldRow("Address:", addressLine(facts.Landlord.AddressLines, facts.Landlord.Postcode))
	if facts.Landlord.Phone != "" {
		r.fieldRow("Telephone:", facts.Landlord.Phone)
	}
	if facts.Landlord.Email != "" {
		r.fieldRow("Email:", facts.Landlord.Email)
	}

	return r.bytes()
}

// arrearsTable prints the period-by-period schedule with due, paid and
// outstanding columns, closed by a total row.
func arrearsTable(r *renderer, items []domain.ArrearsItem) {
	pdf := r.pdf
	widths := []float64{60, 38, 38, 38}
	headers := []string{"Period", "Rent due", "Rent paid", "Outstanding"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, r.tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	var totalDue, totalPaid int64
	for _, item := range items {
		period := ukDate(item.PeriodStart.Time) + " - " + ukDate(item.PeriodEnd.Time)
		pdf.CellFormat(widths[0], 7, r.tr(period), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, r.tr(domain.FormatGBP(item.DuePence)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, r.tr(domain.FormatGBP(item.PaidPence)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, r.tr(domain.FormatGBP(item.DuePence-item.PaidPence)), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)

		totalDue += item.DuePence
		totalPaid += item.PaidPence
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(widths[0], 7, r.tr("Total"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(widths[1], 7, r.tr(domain.FormatGBP(totalDue)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[2], 7, r.tr(domain.FormatGBP(totalPaid)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(widths[3], 7, r.tr(domain.FormatGBP(totalDue-totalPaid)), "1", 0, "R", true, 0, "")
	pdf.Ln(-1)
	pdf.Ln(3)
}
