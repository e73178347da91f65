// Package qr renders ticket and badge QR codes to PNG files under the
// configured output directory.
package qr

import (
	"fmt"
	"os"
	"path/filepath"

	"eventparadise/config"
	"eventparadise/models"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256

// TicketQR writes the guest's ticket QR code and returns the file path.
// The encoded payload is what the check-in scanner reads back.
func TicketQR(guest *models.Guest, event *models.Event) (string, error) {
	content := fmt.Sprintf("TICKET:%s|EVENT:%s|GUEST:%s", guest.TicketNumber, event.ID, guest.Name)
	filename := fmt.Sprintf("ticket_%s.png", guest.TicketNumber)
	return write(content, filename)
}

// BadgeQR writes a vendor badge QR code and returns the file path.
func BadgeQR(vendor *models.Vendor, event *models.Event) (string, error) {
	content := fmt.Sprintf("VENDOR:%s|EVENT:%s|SERVICE:%s", vendor.ID, event.ID, vendor.ServiceType)
	filename := fmt.Sprintf("badge_%s.png", vendor.ID)
	return write(content, filename)
}

// ReceiptQR writes a payment receipt QR code and returns the file path.
func ReceiptQR(payment *models.Payment) (string, error) {
	content := fmt.Sprintf("RECEIPT:%s|AMOUNT:%.2f|TXN:%s", payment.ID, payment.Amount, payment.TransactionID)
	filename := fmt.Sprintf("receipt_%s.png", payment.ID)
	return write(content, filename)
}

func write(content, filename string) (string, error) {
	dir := config.AppConfig.QRCodeDir
	if dir == "" {
		dir = "./static/qrcodes"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create QR code directory: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := qrcode.WriteFile(content, qrcode.Medium, pngSize, path); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return path, nil
}
