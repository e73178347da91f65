package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"eventparadise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestCSV(t *testing.T) {
	guests := []models.Guest{
		{
			Name:         "Alice",
			Email:        "alice@example.com",
			Phone:        "+100",
			RSVPStatus:   models.RSVPConfirmed,
			CheckedIn:    true,
			TicketNumber: "EP-ABCD1234",
			CreatedAt:    time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			Name:         "Bob",
			Email:        "bob@example.com",
			RSVPStatus:   models.RSVPPending,
			TicketNumber: "EP-EFGH5678",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, GuestCSV(&buf, guests))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, []string{"Alice", "alice@example.com", "+100", "confirmed", "true", "EP-ABCD1234", "2026-08-01T10:00:00Z"}, rows[1])
	assert.Equal(t, "Bob", rows[2][0])
	assert.Equal(t, "false", rows[2][4])
}

func TestPaymentCSV(t *testing.T) {
	payments := []models.Payment{
		{
			ID:            "p-1",
			PaymentType:   "income",
			PaymentMethod: "card",
			Amount:        120.5,
			Status:        models.PaymentStatusCompleted,
			TransactionID: "txn-1",
			CreatedAt:     time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, PaymentCSV(&buf, payments))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "120.50", rows[1][3])
	assert.Equal(t, "completed", rows[1][4])
}

func TestGuestCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, GuestCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
