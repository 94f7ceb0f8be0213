package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Receipt carries the resolved fields rendered onto an approval receipt.
// No business logic lives here; callers pass fully resolved, display-ready
// values (the government ID arrives already masked).
type Receipt struct {
	ParticipantName    string
	TeamName           string // empty for solo registrations
	EventName          string
	GovernmentIDType   string
	MaskedGovernmentID string
	ApprovedAt         time.Time
}

const (
	receiptTitle    = "Calcutta Youth Meet – Chapter 9"
	receiptDates    = "26th & 27th September"
	receiptVenue    = "Venue: Gyan Manch"
	receiptFarewell = "Thank you for registering!"
)

// RenderReceipt produces the single-page approval receipt with its fixed
// textual layout and returns the PDF bytes.
func RenderReceipt(r *Receipt) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	doc.SetFont("Helvetica", "", 16)
	doc.Text(20, 20, tr(receiptTitle))

	doc.SetFont("Helvetica", "", 12)
	doc.Text(20, 30, receiptDates)
	doc.Text(20, 36, receiptVenue)
	doc.Text(20, 46, "Approval Confirmation")
	doc.Text(20, 56, fmt.Sprintf("Approval Date: %s", r.ApprovedAt.Format("02 Jan 2006 15:04")))
	doc.Text(20, 66, "Participant/Team Details:")
	doc.Text(20, 76, tr(fmt.Sprintf("Name: %s", r.ParticipantName)))
	y := 86.0
	if r.TeamName != "" {
		doc.Text(20, y, tr(fmt.Sprintf("Team Name: %s", r.TeamName)))
		y += 10
	}
	doc.Text(20, y, tr(fmt.Sprintf("Event: %s", r.EventName)))
	doc.Text(20, y+10, fmt.Sprintf("Govt ID Type: %s", r.GovernmentIDType))
	doc.Text(20, y+20, fmt.Sprintf("Govt ID Number: %s", r.MaskedGovernmentID))
	doc.Text(20, y+40, receiptFarewell)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
