package documents

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"landlordheaven/pkg/domain"

	"github.com/go-pdf/fpdf"
)

const contentTypePDF = "application/pdf"

// renderer wraps an fpdf document with the house layout shared by all
// generated documents: A4 portrait, Helvetica, centred form headers, boxed
// field values and a diagonal PREVIEW watermark under the content of every
// page when rendering previews.
type renderer struct {
	pdf *fpdf.Fpdf
	// tr maps UTF-8 strings onto the core-font codepage so currency symbols
	// survive the render.
	tr func(string) string
}

func newRenderer(title string, preview bool) *renderer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("Landlord Heaven", true)
	pdf.SetMargins(18, 16, 18)
	pdf.SetAutoPageBreak(true, 20)

	r := &renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if preview {
		pdf.SetHeaderFunc(r.watermark)
	}
	pdf.AddPage()

	return r
}

// watermark runs as the page header so every page carries it, drawn before
// the content so the text stays readable on top of it.
func (r *renderer) watermark() {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 80)
	pdf.SetTextColor(225, 225, 225)

	w, h := pdf.GetPageSize()
	tw := pdf.GetStringWidth("PREVIEW")
	pdf.TransformBegin()
	pdf.TransformRotate(45, w/2, h/2)
	pdf.Text((w-tw)/2, h/2, "PREVIEW")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// formHeader draws the centred header block of an official form: form
// number, statute line, title and the tenancy-kind line, closed by a rule.
func (r *renderer) formHeader(formNo, statute, title, subtitle, letLine string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, r.tr(formNo), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, r.tr(statute), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, r.tr(title), "", "C", false)
	if subtitle != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 6, r.tr(subtitle), "", 1, "C", false, 0, "")
	}
	if letLine != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, r.tr(letLine), "", 1, "C", false, 0, "")
	}
	r.rule()
}

// rule draws a horizontal line across the text area.
func (r *renderer) rule() {
	pdf := r.pdf
	pdf.Ln(2)
	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.4)
	pdf.Line(left, pdf.GetY(), w-right, pdf.GetY())
	pdf.Ln(4)
}

// section prints a bold numbered-section label.
func (r *renderer) section(label string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, r.tr(label), "", "L", false)
	pdf.Ln(1)
}

// boxedValue prints a filled, bordered value box, the way completed fields
// appear on the official forms.
func (r *renderer) boxedValue(text string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(160, 160, 160)
	pdf.MultiCell(0, 6, r.tr(text), "1", "L", true)
	pdf.Ln(3)
}

func (r *renderer) paragraph(text string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5.5, r.tr(text), "", "L", false)
	pdf.Ln(2)
}

// fieldRow prints a bold label with its value on one line.
func (r *renderer) fieldRow(label, value string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(35, 6, r.tr(label), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, r.tr(value), "", "L", false)
}

// capacityTicks renders the capacity checkboxes of the signature block with
// the matching option ticked.
func (r *renderer) capacityTicks(capacity domain.LandlordCapacity, labels map[domain.LandlordCapacity]string) {
	pdf := r.pdf
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, r.tr("Capacity (please tick):"), "", 1, "L", false, 0, "")

	order := []domain.LandlordCapacity{
		domain.CapacityLandlord,
		domain.CapacityJointLandlords,
		domain.CapacityAgent,
	}
	var parts []string
	for _, c := range order {
		box := "[ ]"
		if c == capacity {
			box = "[X]"
		}
		parts = append(parts, box+" "+labels[c])
	}

	pdf.SetFont("Courier", "", 10)
	pdf.CellFormat(0, 6, r.tr(strings.Join(parts, "    ")), "", 1, "L", false, 0, "")
	pdf.Ln(2)
}

// signatureBlock draws the closing block of a notice: heading, completion
// note, the signer's details, capacity ticks and the date.
func (r *renderer) signatureBlock(heading, note string,
	landlord *domain.LandlordFacts,
	labels map[domain.LandlordCapacity]string,
	date string) {
	r.rule()
	r.section(heading)
	r.paragraph(note)

	r.fieldRow("Signed:", "[Signed]")
	r.fieldRow("Name:", landlord.Name)
	r.fieldRow("Address:", addressLine(landlord.AddressLines, landlord.Postcode))
	if landlord.Phone != "" {
		r.fieldRow("Telephone:", landlord.Phone)
	}
	r.pdf.Ln(3)

	capacity := landlord.Capacity
	if capacity == "" {
		capacity = domain.CapacityLandlord
	}
	r.capacityTicks(capacity, labels)

	r.fieldRow("Date:", date)
}

// servedFooter closes a notice with the centred service line.
func (r *renderer) servedFooter(date string) {
	r.rule()
	pdf := r.pdf
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 6, r.tr("This notice was served on: "+date), "", 1, "C", false, 0, "")
}

func (r *renderer) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// ukDate formats a date the way the official forms expect it.
func ukDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// joinNames joins person names into prose: "A", "A and B", "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}

	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}

// addressLine flattens address lines and postcode into one comma-separated
// line.
func addressLine(lines []string, postcode string) string {
	parts := make([]string, 0, len(lines)+1)
	for _, l := range lines {
		if l != "" {
			parts = append(parts, l)
		}
	}
	if postcode != "" {
		parts = append(parts, postcode)
	}

	return strings.Join(parts, ", ")
}

// section21Expiry is the date after which the tenant is required to leave:
// two months from service, or the end of the fixed term when that is later.
func section21Expiry(now time.Time, tenancy *domain.TenancyFacts) time.Time {
	expiry := now.AddDate(0, 2, 0)
	if tenancy != nil && !tenancy.FixedTermEnd.IsZero() && tenancy.FixedTermEnd.Time.After(expiry) {
		expiry = tenancy.FixedTermEnd.Time
	}

	return expiry
}

// earliestProceedings is the first day court proceedings may begin: service
// plus the longest notice period among the grounds relied on.
func earliestProceedings(now time.Time, noticeDays int) time.Time {
	return now.AddDate(0, 0, noticeDays)
}
