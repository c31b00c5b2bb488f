package models

// NotFound is the sentinel returned when no extraction rule matches a field.
// Downstream consumers compare against this value instead of handling nils.
const NotFound = "N/A"

// Issuer identifies the institution that produced a statement.
type Issuer string

const (
	IssuerHDFC     Issuer = "hdfc"
	IssuerICICI    Issuer = "icici"
	IssuerSBI      Issuer = "sbi"
	IssuerAxis     Issuer = "axis"
	IssuerKotak    Issuer = "kotak"
	IssuerDCB      Issuer = "dcb"
	IssuerYesBank  Issuer = "yes bank"
	IssuerIndusInd Issuer = "indusind"
	IssuerOneCard  Issuer = "onecard"
	IssuerUnknown  Issuer = "unknown"
)

// displayNames maps issuer tags to their customer-facing names.
var displayNames = map[Issuer]string{
	IssuerHDFC:     "HDFC Bank",
	IssuerICICI:    "ICICI Bank",
	IssuerSBI:      "State Bank of India",
	IssuerAxis:     "Axis Bank",
	IssuerKotak:    "Kotak Mahindra Bank",
	IssuerDCB:      "DCB Bank",
	IssuerYesBank:  "Yes Bank",
	IssuerIndusInd: "IndusInd Bank",
	IssuerOneCard:  "OneCard",
}

// DisplayName returns the customer-facing name for an issuer, or the raw
// tag if the issuer is not in the supported set.
func (i Issuer) DisplayName() string {
	if name, ok := displayNames[i]; ok {
		return name
	}
	return string(i)
}

// SupportedIssuers returns the display names of every supported issuer,
// in detection priority order.
func SupportedIssuers() []string {
	return []string{
		"HDFC Bank",
		"ICICI Bank",
		"State Bank of India",
		"Axis Bank",
		"Kotak Mahindra Bank",
		"DCB Bank",
		"Yes Bank",
		"IndusInd Bank",
		"OneCard",
	}
}

// BillingCycle holds the start and end of the statement period as they
// appeared in the document. Both fields are filled or both are NotFound.
type BillingCycle struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// TransactionSummary holds the transaction count and total charges as
// extracted from the statement. The two fields are independent; either
// may be NotFound while the other is filled.
type TransactionSummary struct {
	Count        string `json:"transaction_count"`
	TotalCharges string `json:"total_charges"`
}

// ParseResult is the structured output of one statement parse. It is
// created once by the parser and read-only afterward.
type ParseResult struct {
	Issuer         Issuer             `json:"issuer"`
	IssuerName     string             `json:"detected_issuer"`
	CardLastFour   string             `json:"card_last_four_digits"`
	BillingCycle   BillingCycle       `json:"billing_cycle"`
	PaymentDueDate string             `json:"payment_due_date"`
	TotalBalance   string             `json:"total_balance"`
	Transactions   TransactionSummary `json:"transaction_info"`
}
