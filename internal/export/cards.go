package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/tcocompare/internal/model"
)

// CardInfo holds the data encoded into each vendor card's QR code, so a
// printed handout can be scanned back into the figures it shows.
type CardInfo struct {
	ScenarioID     string  `json:"scenario"`
	VendorID       string  `json:"vendor"`
	VendorName     string  `json:"name"`
	Rank           int     `json:"rank"`
	Devices        int     `json:"devices"`
	Years          int     `json:"years"`
	Total          float64 `json:"total"`
	Savings        float64 `json:"savings"`
	SavingsPercent float64 `json:"savings_pct"`
	Payback        string  `json:"payback"`
	Baseline       bool    `json:"baseline,omitempty"`
}

// Card layout on US Letter: 2 columns x 4 rows.
const (
	cardMarginTop  = 12.7
	cardMarginLeft = 7.95
	cardWidth      = 100.0
	cardHeight     = 63.5
	cardCols       = 2
	cardRows       = 4
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 38.0
	cardPadding    = 4.0
)

// VendorCards writes a PDF sheet of one card per vendor with the headline
// figures and a QR code carrying them as JSON.
func VendorCards(w io.Writer, cmp model.Comparison) error {
	cards := CollectCardInfos(cmp)
	if len(cards) == 0 {
		return fmt.Errorf("no vendors to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		pos := i % cardsPerPage
		col := pos % cardCols
		row := pos / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, card); err != nil {
			return fmt.Errorf("failed to render card for %q: %w", card.VendorID, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write vendor cards: %w", err)
	}
	return nil
}

// renderCard draws a single card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, info CardInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s", info.ScenarioID, info.VendorID)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(qrPNG))
	qrX := x + cardWidth - cardQRSize - cardPadding
	qrY := y + (cardHeight-cardQRSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, cardQRSize, cardQRSize, false, opts, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 6, fitText(pdf, info.VendorName, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+cardPadding+7)
	sub := fmt.Sprintf("Rank %d  |  %d devices, %d years", info.Rank, info.Devices, info.Years)
	pdf.CellFormat(textW, 4, sub, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding+14)
	pdf.CellFormat(textW, 9, Money(info.Total), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(textX, y+cardPadding+26)
	if info.Baseline {
		pdf.SetTextColor(0, 90, 160)
		pdf.CellFormat(textW, 5, "Baseline vendor", "", 1, "L", false, 0, "")
	} else {
		if info.Savings >= 0 {
			pdf.SetTextColor(0, 128, 0)
		} else {
			pdf.SetTextColor(200, 0, 0)
		}
		line := fmt.Sprintf("Baseline saves %s (%s)", Money(info.Savings), formatPercent(info.SavingsPercent))
		pdf.CellFormat(textW, 5, fitText(pdf, line, textW), "", 1, "L", false, 0, "")
		pdf.SetTextColor(80, 80, 80)
		pdf.SetXY(textX, y+cardPadding+32)
		pdf.CellFormat(textW, 5, "Payback: "+info.Payback, "", 1, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectCardInfos extracts one card per vendor result, in rank order.
func CollectCardInfos(cmp model.Comparison) []CardInfo {
	cards := make([]CardInfo, 0, len(cmp.Results))
	for _, r := range cmp.Results {
		b := r.Breakdown
		cards = append(cards, CardInfo{
			ScenarioID:     cmp.Scenario.ID,
			VendorID:       b.VendorID,
			VendorName:     b.VendorName,
			Rank:           r.Rank,
			Devices:        b.Devices,
			Years:          b.Years,
			Total:          b.Total,
			Savings:        r.Savings,
			SavingsPercent: r.SavingsPercent,
			Payback:        r.Payback.String(),
			Baseline:       r.IsBaseline,
		})
	}
	return cards
}
