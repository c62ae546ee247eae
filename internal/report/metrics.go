// Package report computes the derived figures the presentation layer shows
// next to the diagram. Everything here is a pure function over the parser's
// output.
package report

import (
	"math"
	"strconv"

	"github.com/blyfoten/SankeySaldo/internal/domain"
)

// Summary holds the headline figures for one parsed file.
type Summary struct {
	TransactionCount int     `json:"transaction_count"`
	AccountCount     int     `json:"account_count"`
	TotalDebit       float64 `json:"total_debit"`
	TotalCredit      float64 `json:"total_credit"`
}

// Summarize computes the headline figures: total debit is the sum of all
// positive amounts, total credit the absolute sum of all negative ones.
func Summarize(txns []domain.Transaction, accounts map[string]string) Summary {
	s := Summary{
		TransactionCount: len(txns),
		AccountCount:     len(accounts),
	}
	for _, t := range txns {
		if t.Amount > 0 {
			s.TotalDebit += t.Amount
		} else {
			s.TotalCredit += math.Abs(t.Amount)
		}
	}
	return s
}

// Balance is the net signed balance of one account.
type Balance struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

// Balances returns per-account net balances in the order accounts are first
// encountered in the transaction list.
func Balances(txns []domain.Transaction) []Balance {
	sums := make(map[string]float64)
	var order []string
	for _, t := range txns {
		if _, seen := sums[t.Account]; !seen {
			order = append(order, t.Account)
		}
		sums[t.Account] += t.Amount
	}
	balances := make([]Balance, 0, len(order))
	for _, account := range order {
		balances = append(balances, Balance{Account: account, Amount: sums[account]})
	}
	return balances
}

// BAS account-number ranges used by the ratio helpers. Non-numeric account
// numbers fall outside every range.
const (
	assetLow  = 1000
	assetHigh = 1999

	liquidLow  = 1900
	liquidHigh = 1999

	equityLow  = 2000
	equityHigh = 2099

	currentLiabilityLow  = 2400
	currentLiabilityHigh = 2999
)

// LiquidityRatio is liquid assets (19xx) over current liabilities
// (24xx-29xx). ok is false when there are no current liabilities to divide
// by.
func LiquidityRatio(balances []Balance) (ratio float64, ok bool) {
	liquid := sumRange(balances, liquidLow, liquidHigh)
	liabilities := math.Abs(sumRange(balances, currentLiabilityLow, currentLiabilityHigh))
	if liabilities == 0 {
		return 0, false
	}
	return liquid / liabilities, true
}

// SolvencyRatio is equity (20xx, absolute) over total assets (1xxx). ok is
// false when there are no assets to divide by.
func SolvencyRatio(balances []Balance) (ratio float64, ok bool) {
	equity := math.Abs(sumRange(balances, equityLow, equityHigh))
	assets := sumRange(balances, assetLow, assetHigh)
	if assets == 0 {
		return 0, false
	}
	return equity / assets, true
}

func sumRange(balances []Balance, low, high int) float64 {
	var sum float64
	for _, b := range balances {
		n, err := strconv.Atoi(b.Account)
		if err != nil {
			continue
		}
		if n >= low && n <= high {
			sum += b.Amount
		}
	}
	return sum
}
