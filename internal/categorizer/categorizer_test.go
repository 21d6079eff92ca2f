package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relisha1/MoMo-Data-Analysis/internal/models"
)

func TestCategorize(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "incoming money",
			body:     "You have received 50,000 RWF from +250788123456. Fee: 100 RWF.",
			expected: models.CategoryIncomingMoney,
		},
		{
			name:     "payment to code holder",
			body:     "Your payment of 2,000 RWF to Alice 12345 has been completed.",
			expected: models.CategoryCodePayment,
		},
		{
			name:     "transfer to mobile number",
			body:     "You have transferred 25,000 RWF to +250788654321.",
			expected: models.CategoryMobileTransfer,
		},
		{
			name:     "bank deposit",
			body:     "A bank deposit of 40,000 RWF has been added to your account.",
			expected: models.CategoryBankDeposit,
		},
		{
			name:     "airtime purchase",
			body:     "Your payment of 2,000 RWF for airtime was successful.",
			expected: models.CategoryCodePayment, // "payment" outranks "airtime"
		},
		{
			name:     "airtime without payment keyword",
			body:     "You bought airtime worth 1,000 RWF.",
			expected: models.CategoryAirtime,
		},
		{
			name:     "cash power",
			body:     "Cash Power token purchased, igura 5,000 RWF.",
			expected: models.CategoryCashPower,
		},
		{
			name:     "third party",
			body:     "A transaction of 3,000 RWF initiated by a third party on your account.",
			expected: models.CategoryThirdParty,
		},
		{
			name:     "withdrawal from agent",
			body:     "You have withdrawn 30,000 RWF from agent Agent Name.",
			expected: models.CategoryAgentWithdrawal,
		},
		{
			name:     "bank transfer",
			body:     "Your bank transfer of 10,000 RWF is complete.",
			expected: models.CategoryBankTransfer,
		},
		{
			name:     "internet bundle",
			body:     "You purchased an internet bundle of 2GB for 2,500 RWF.",
			expected: models.CategoryBundle,
		},
		{
			name:     "voice bundle",
			body:     "You purchased a voice bundle for 1,500 RWF.",
			expected: models.CategoryBundle,
		},
		{
			name:     "case insensitive",
			body:     "YOU HAVE RECEIVED 5,000 RWF.",
			expected: models.CategoryIncomingMoney,
		},
		{
			name:     "no keyword",
			body:     "Welcome to the network, enjoy our services.",
			expected: models.CategoryUnknown,
		},
		{
			name:     "empty body",
			body:     "",
			expected: models.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Categorize(tt.body))
		})
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	c := New(nil)

	// "received" precedes "bank transfer" in the rule list, so a body carrying
	// both resolves to Incoming Money regardless of keyword position.
	body := "Your bank transfer was received, 10,000 RWF credited."
	assert.Equal(t, models.CategoryIncomingMoney, c.Categorize(body))

	// "deposit" precedes "bank transfer" as well.
	body = "DEPOSIT RWF 25000 via bank transfer."
	assert.Equal(t, models.CategoryBankDeposit, c.Categorize(body))
}

func TestCategorizeNeverEmpty(t *testing.T) {
	c := New(nil)
	for _, body := range []string{"", "x", "completely unrelated text", "12345"} {
		assert.NotEmpty(t, c.Categorize(body))
	}
}

func TestNewWithCustomRules(t *testing.T) {
	c := New([]Rule{
		{Keyword: "REFUND", Category: "Refunds"},
	})

	// Keywords are normalized to lower case at construction.
	assert.Equal(t, "Refunds", c.Categorize("Your refund of 500 RWF was issued"))
	assert.Equal(t, models.CategoryUnknown, c.Categorize("You have received 500 RWF"))
}

func TestLoadRules(t *testing.T) {
	t.Run("file preserves order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.yaml")
		content := `rules:
  - keyword: bank transfer
    category: Bank Transfers
  - keyword: transfer
    category: Transfers to Mobile Numbers
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Len(t, rules, 2)
		assert.Equal(t, "bank transfer", rules[0].Keyword)
		assert.Equal(t, "transfer", rules[1].Keyword)

		// Priority order must hold: "bank transfer" shadows "transfer".
		c := New(rules)
		assert.Equal(t, models.CategoryBankTransfer, c.Categorize("A bank transfer arrived"))
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		rules, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("empty path means defaults", func(t *testing.T) {
		rules, err := LoadRules("")
		require.NoError(t, err)
		assert.Nil(t, rules)
	})

	t.Run("invalid rule rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules:\n  - keyword: x\n"), 0600))

		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}
