package pdf_test

import (
	"testing"
	"time"

	"event-registration-backend/internal/pdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceipt() *pdf.Receipt {
	return &pdf.Receipt{
		ParticipantName:    "Asha Sen",
		EventName:          "Kathak Solo",
		GovernmentIDType:   "AADHAAR",
		MaskedGovernmentID: "********9012",
		ApprovedAt:         time.Date(2025, 9, 20, 14, 30, 0, 0, time.UTC),
	}
}

// TestRenderReceipt renders a solo receipt and checks the PDF header
func TestRenderReceipt(t *testing.T) {
	content, err := pdf.RenderReceipt(sampleReceipt())
	require.NoError(t, err)
	require.True(t, len(content) > 4)
	assert.Equal(t, "%PDF", string(content[:4]))
}

// TestRenderReceiptWithTeam renders a team receipt; the extra team line must
// not break rendering
func TestRenderReceiptWithTeam(t *testing.T) {
	receipt := sampleReceipt()
	receipt.TeamName = "Nritya Crew"
	receipt.EventName = "Group Dance"

	content, err := pdf.RenderReceipt(receipt)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

// TestRenderReceiptEmptyFields renders with zero values; the layout is fixed
// and must tolerate missing data
func TestRenderReceiptEmptyFields(t *testing.T) {
	content, err := pdf.RenderReceipt(&pdf.Receipt{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(content[:4]))
}

// TestRenderReceiptDeterministicSize successive renders of the same receipt
// produce output of identical length
func TestRenderReceiptDeterministicSize(t *testing.T) {
	first, err := pdf.RenderReceipt(sampleReceipt())
	require.NoError(t, err)
	second, err := pdf.RenderReceipt(sampleReceipt())
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}
