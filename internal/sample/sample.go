// Package sample renders plausible statement text for demos and test
// fixtures. The content mirrors what the supported issuers print on real
// statements so the full parse pipeline can be exercised without a PDF.
package sample

import (
	"fmt"
	"strings"
	"time"

	"github.com/surefinance/statement-parser/internal/models"
)

const dateLayout = "02/01/2006"

// Statement renders a sample statement for the given issuer, with the
// billing period anchored to the month before now.
func Statement(iss models.Issuer, now time.Time) string {
	endDate := now.AddDate(0, 0, -now.Day())             // last day of previous month
	startDate := endDate.AddDate(0, 0, -endDate.Day()+1) // first day of that month
	dueDate := endDate.AddDate(0, 0, 25)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(iss.DisplayName()))
	b.WriteString("Credit Card Statement\n\n")
	b.WriteString("Account Summary\n")
	b.WriteString("Account Number: **** **** **** 4532\n")
	fmt.Fprintf(&b, "Statement Period: %s to %s\n", startDate.Format(dateLayout), endDate.Format(dateLayout))
	fmt.Fprintf(&b, "Payment Due Date: %s\n", dueDate.Format(dateLayout))
	b.WriteString("Total Balance: ₹2,456.78\n")
	b.WriteString("Card ending in: 4532\n\n")

	b.WriteString("Recent Transactions\n")
	for _, txn := range sampleTransactions {
		fmt.Fprintf(&b, "%s  %-28s ₹%s\n", txn.date, txn.desc, txn.amount)
	}

	b.WriteString("\nStatement Summary\n")
	b.WriteString("Previous Balance: ₹1,234.56\n")
	b.WriteString("Payments & Credits: -₹500.00\n")
	b.WriteString("Total Charges: ₹1,992.28\n")
	b.WriteString("Fees Charged: ₹0.00\n")
	b.WriteString("Interest Charged: ₹0.00\n\n")
	b.WriteString("Total Transactions: 10\n")
	b.WriteString("This is a sample statement for testing purposes. Card ending in 4532.\n")

	return b.String()
}

// StatementText renders a sample statement anchored to the current time.
func StatementText(iss models.Issuer) string {
	return Statement(iss, time.Now())
}

type sampleTxn struct {
	date   string
	desc   string
	amount string
}

var sampleTransactions = []sampleTxn{
	{"05/01/2024", "AMAZON.IN PURCHASE", "899.00"},
	{"08/01/2024", "CAFE COFFEE DAY", "250.00"},
	{"12/01/2024", "NETFLIX SUBSCRIPTION", "199.00"},
	{"15/01/2024", "INDIAN OIL FUEL", "1,450.00"},
	{"18/01/2024", "BIG BAZAAR PURCHASE", "2,156.78"},
	{"22/01/2024", "OLA RIDE", "234.50"},
	{"25/01/2024", "RELIANCE DIGITAL", "3,456.00"},
	{"28/01/2024", "SWIGGY FOOD ORDER", "678.90"},
	{"30/01/2024", "APOLLO PHARMACY", "459.99"},
	{"31/01/2024", "BOOKMYSHOW TICKETS", "600.00"},
}
