// Package export renders report data as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"eventparadise/models"
)

// GuestCSV writes the guest list of an event as CSV.
func GuestCSV(w io.Writer, guests []models.Guest) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Email", "Phone", "RSVP Status", "Checked In", "Ticket Number", "Registered At"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, g := range guests {
		row := []string{
			g.Name,
			g.Email,
			g.Phone,
			g.RSVPStatus,
			strconv.FormatBool(g.CheckedIn),
			g.TicketNumber,
			g.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// PaymentCSV writes an event's payment ledger as CSV.
func PaymentCSV(w io.Writer, payments []models.Payment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Type", "Method", "Amount", "Status", "Transaction ID", "Created At"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range payments {
		row := []string{
			p.ID,
			p.PaymentType,
			p.PaymentMethod,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			p.Status,
			p.TransactionID,
			p.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
