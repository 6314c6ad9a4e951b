package services

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-pdf/fpdf"
	"github.com/lin-avraham/Pizza2/models"
	"github.com/lin-avraham/Pizza2/utils"
)

const ticketFontFamily = "ticket"

// TicketRenderer draws kitchen tickets. With a UTF-8 TrueType font loaded,
// any script the font covers prints as-is and Hebrew or Arabic values are
// laid out right to left. Without one, the PDF core font is used and text
// outside cp1252 prints as '.'.
type TicketRenderer struct {
	font []byte
}

// NewTicketRenderer loads the TrueType font at fontPath. An empty or
// unreadable path falls back to the core font.
func NewTicketRenderer(fontPath string) *TicketRenderer {
	if fontPath == "" {
		return &TicketRenderer{}
	}
	font, err := os.ReadFile(fontPath)
	if err != nil {
		utils.ErrorLogger.Printf("Ticket font %s unavailable, non-Latin text will not print: %v", fontPath, err)
		return &TicketRenderer{}
	}
	return &TicketRenderer{font: font}
}

// UnicodeFont reports whether a UTF-8 font is loaded.
func (tr *TicketRenderer) UnicodeFont() bool {
	return len(tr.font) > 0
}

// Render draws a one-page kitchen ticket for an order.
func (tr *TicketRenderer) Render(order *models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(fmt.Sprintf("Order %d", order.ID), tr.UnicodeFont())

	family := "Arial"
	text := pdf.UnicodeTranslatorFromDescriptor("")
	if tr.UnicodeFont() {
		family = ticketFontFamily
		text = func(s string) string { return s }
		pdf.AddUTF8FontFromBytes(family, "", tr.font)
		pdf.AddUTF8FontFromBytes(family, "B", tr.font)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load ticket font: %w", err)
		}
	}
	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("Order #%d", order.ID), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(0, 6, order.CreatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// write prints one line of order data in its reading direction
	write := func(w, h float64, value string, multi bool) {
		align := "L"
		if tr.UnicodeFont() && rightToLeft(value) {
			pdf.RTL()
			defer pdf.LTR()
			align = "R"
		}
		if multi {
			pdf.MultiCell(w, h, text(value), "", align, false)
			return
		}
		pdf.CellFormat(w, h, text(value), "", 1, align, false, 0, "")
	}

	row := func(label, value string) {
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		write(0, 7, value, true)
	}

	row("Customer", order.CustomerName)
	if order.PhoneNumber != "" {
		row("Phone", order.PhoneNumber)
	}
	row("Payment", order.PaymentMethod)
	row("Delivery", order.DeliveryOption)
	if order.DeliveryAddress != "" {
		row("Address", order.DeliveryAddress)
	}
	row("Status", string(order.Status))

	pdf.Ln(3)
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(0, 8, "Items", "B", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 12)
	for _, line := range strings.Split(order.OrderDetails, "\n") {
		if line == "" {
			continue
		}
		write(0, 7, line, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

// rightToLeft reports whether s contains Hebrew or Arabic letters.
func rightToLeft(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Hebrew, unicode.Arabic) {
			return true
		}
	}
	return false
}
