package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relisha1/MoMo-Data-Analysis/internal/parsererror"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
		wantErr  bool
	}{
		{
			name:     "plain amount",
			body:     "You have received 5000 RWF from Alice.",
			expected: 5000,
		},
		{
			name:     "thousands separators stripped",
			body:     "You have received 12,345 RWF from Alice.",
			expected: 12345,
		},
		{
			name:     "large amount with separators",
			body:     "Payment of 1,250,000 RWF completed.",
			expected: 1250000,
		},
		{
			name:     "kinyarwanda phrasing",
			body:     "Umubare w'amafaranga igura 2,000 RWF",
			expected: 2000,
		},
		{
			name:     "inverted deposit notation",
			body:     "*113*R*A DEPOSIT RWF 25000 has been added to your account",
			expected: 25000,
		},
		{
			// No trailing literal after the capture group, so the deposit
			// pattern must not stop after the first three digits.
			name:     "deposit amount without separators is not truncated",
			body:     "*113*R*A DEPOSIT RWF 1234567 has been added to your account",
			expected: 1234567,
		},
		{
			name:     "deposit amount with separators",
			body:     "*113*R*A DEPOSIT RWF 1,500,000 has been added to your account",
			expected: 1500000,
		},
		{
			name:    "no amount",
			body:    "Welcome to the network.",
			wantErr: true,
		},
		{
			name:    "zero amount rejected",
			body:    "You have received 0 RWF from Alice.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := extractAmount(tt.body)
			if tt.wantErr {
				require.Error(t, err)
				var exErr *parsererror.ExtractionError
				require.ErrorAs(t, err, &exErr)
				assert.Equal(t, "amount", exErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount)
		})
	}
}

func TestExtractFee(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "fee with colon", body: "Fee: 100 RWF. Balance: 150,000 RWF.", expected: 100},
		{name: "fee lower case", body: "fee 250 RWF applied", expected: 250},
		{name: "charges keyword", body: "Charges: 1,500 RWF", expected: 1500},
		{name: "absent fee defaults to zero", body: "You have received 5,000 RWF.", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractFee(tt.body))
		})
	}
}

func TestExtractDate(t *testing.T) {
	t.Run("full timestamp", func(t *testing.T) {
		date, err := extractDate("Completed at 2024-08-23 14:05:09.")
		require.NoError(t, err)
		assert.Equal(t, "2024-08-23 14:05:09", date)
	})

	t.Run("bare date defaults to midnight", func(t *testing.T) {
		date, err := extractDate("Completed on 2024-08-23.")
		require.NoError(t, err)
		assert.Equal(t, "2024-08-23 00:00:00", date)
	})

	t.Run("missing date falls back to current time", func(t *testing.T) {
		fixed := time.Date(2024, 8, 23, 10, 30, 0, 0, time.UTC)
		orig := nowFunc
		nowFunc = func() time.Time { return fixed }
		defer func() { nowFunc = orig }()

		date, err := extractDate("No date in this message at all.")
		require.NoError(t, err)
		assert.Equal(t, "2024-08-23 10:30:00", date)
	})

	t.Run("date-shaped but invalid", func(t *testing.T) {
		_, err := extractDate("Completed at 2024-13-45 99:99:99.")
		var exErr *parsererror.ExtractionError
		require.ErrorAs(t, err, &exErr)
		assert.Equal(t, "date", exErr.Field)
	})
}

func TestExtractParties(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		sender   string
		receiver string
	}{
		{
			name:   "sender",
			body:   "You have received 5,000 RWF from John Doe. TxId: 123",
			sender: "John Doe",
		},
		{
			name:     "receiver",
			body:     "You have transferred 5,000 RWF to Jane Doe, at 2024-01-01.",
			receiver: "Jane Doe",
		},
		{
			name: "no parties",
			body: "DEPOSIT RWF 25000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sender, extractParty(senderPattern, tt.body))
			assert.Equal(t, tt.receiver, extractParty(receiverPattern, tt.body))
		})
	}
}

func TestExtractTxID(t *testing.T) {
	assert.Equal(t, "73214484437", extractTxID("TxId: 73214484437. Your payment..."))
	assert.Equal(t, "99", extractTxID("TxId:99"))
	assert.Equal(t, "", extractTxID("no transaction id here"))
}

func TestExtract(t *testing.T) {
	t.Run("full notification", func(t *testing.T) {
		body := "You have received 50,000 RWF from John Doe. Fee: 100 RWF. TxId: 12345. Date: 2024-08-23 14:05:09."
		fields, err := Extract(body)
		require.NoError(t, err)

		assert.Equal(t, 50000, fields.Amount)
		assert.Equal(t, 100, fields.Fee)
		assert.Equal(t, "2024-08-23 14:05:09", fields.Date)
		assert.Equal(t, "John Doe", fields.Sender)
		assert.Equal(t, "12345", fields.TxID)
	})

	t.Run("phone number senders are not captured", func(t *testing.T) {
		// The party pattern only spans word characters, so "+250..." senders
		// are tolerated as absent rather than partially captured.
		fields, err := Extract("You have received 50,000 RWF from +250788123456. Fee: 100 RWF.")
		require.NoError(t, err)
		assert.Equal(t, 50000, fields.Amount)
		assert.Equal(t, 100, fields.Fee)
		assert.Empty(t, fields.Sender)
	})

	t.Run("missing amount is fatal", func(t *testing.T) {
		_, err := Extract("Your one-time password is 1234. Date: 2024-08-23 14:05:09.")
		var exErr *parsererror.ExtractionError
		require.ErrorAs(t, err, &exErr)
		assert.Equal(t, "amount", exErr.Field)
	})
}
