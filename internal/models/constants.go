package models

// Transaction categories assigned by the categorizer. The set is closed:
// every persisted record carries one of these labels or CategoryUnknown.
const (
	CategoryIncomingMoney   = "Incoming Money"
	CategoryCodePayment     = "Payments to Code Holders"
	CategoryMobileTransfer  = "Transfers to Mobile Numbers"
	CategoryBankDeposit     = "Bank Deposits"
	CategoryAirtime         = "Airtime Bill Payments"
	CategoryCashPower       = "Cash Power Bill Payments"
	CategoryThirdParty      = "Transactions Initiated by Third Parties"
	CategoryAgentWithdrawal = "Withdrawals from Agents"
	CategoryBankTransfer    = "Bank Transfers"
	CategoryBundle          = "Internet and Voice Bundle Purchases"

	// CategoryUnknown is the catch-all label for messages no keyword rule
	// matched; it flags them for manual review.
	CategoryUnknown = "Unknown"
)

// Categories lists every label of the closed set, catch-all included.
var Categories = []string{
	CategoryIncomingMoney,
	CategoryCodePayment,
	CategoryMobileTransfer,
	CategoryBankDeposit,
	CategoryAirtime,
	CategoryCashPower,
	CategoryThirdParty,
	CategoryAgentWithdrawal,
	CategoryBankTransfer,
	CategoryBundle,
	CategoryUnknown,
}
