package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blyfoten/SankeySaldo/internal/domain"
)

func txn(account string, amount float64) domain.Transaction {
	return domain.Transaction{Date: "20230115", Account: account, Amount: amount}
}

func TestSummarizeAcmeScenario(t *testing.T) {
	txns := []domain.Transaction{
		txn("1930", 1000.0),
		txn("3000", -1000.0),
	}
	accounts := map[string]string{"1930": "Bank", "3000": "Sales"}

	g := Summarize(txns, accounts)

	assert.Equal(t, []string{OpeningLabel, "1930 - Bank", "3000 - Sales"}, g.Nodes)
	require.Len(t, g.Links, 2)

	assert.Equal(t, Link{Source: 0, Target: 1, Value: 1000.0, Color: ColorPositive}, g.Links[0])
	assert.Equal(t, Link{Source: 2, Target: 0, Value: 1000.0, Color: ColorNegative}, g.Links[1])
}

func TestSummarizeAggregatesPerAccount(t *testing.T) {
	txns := []domain.Transaction{
		txn("1930", 1000.0),
		txn("1930", -400.0),
		txn("1930", 150.0),
	}
	g := Summarize(txns, map[string]string{"1930": "Bank"})

	require.Len(t, g.Links, 1)
	assert.Equal(t, 750.0, g.Links[0].Value)
	assert.Equal(t, 0, g.Links[0].Source, "net positive flows from the opening node")
}

func TestSummarizeOmitsZeroBalanceAccounts(t *testing.T) {
	txns := []domain.Transaction{
		txn("1930", 500.0),
		txn("1930", -500.0),
		txn("3000", -200.0),
	}
	g := Summarize(txns, map[string]string{"1930": "Bank", "3000": "Sales"})

	assert.Equal(t, []string{OpeningLabel, "3000 - Sales"}, g.Nodes, "zero-balance accounts get no node")
	require.Len(t, g.Links, 1)
	assert.Equal(t, Link{Source: 1, Target: 0, Value: 200.0, Color: ColorNegative}, g.Links[0])
}

func TestSummarizeUnknownAccountLabel(t *testing.T) {
	g := Summarize([]domain.Transaction{txn("9999", 10.0)}, map[string]string{})
	assert.Equal(t, "9999 - "+UnknownAccount, g.Nodes[1])
}

func TestSummarizeNodeOrderFollowsFirstEncounter(t *testing.T) {
	txns := []domain.Transaction{
		txn("3000", -100.0),
		txn("1930", 250.0),
		txn("4010", 75.0),
	}
	g := Summarize(txns, map[string]string{})

	assert.Equal(t, []string{
		OpeningLabel,
		"3000 - " + UnknownAccount,
		"1930 - " + UnknownAccount,
		"4010 - " + UnknownAccount,
	}, g.Nodes)

	// Positive links come before negative ones.
	require.Len(t, g.Links, 3)
	assert.Equal(t, ColorPositive, g.Links[0].Color)
	assert.Equal(t, ColorPositive, g.Links[1].Color)
	assert.Equal(t, ColorNegative, g.Links[2].Color)
}

func TestSummarizeIdempotent(t *testing.T) {
	txns := []domain.Transaction{
		txn("1930", 1000.0),
		txn("3000", -750.0),
		txn("4010", 250.0),
	}
	accounts := map[string]string{"1930": "Bank", "3000": "Sales", "4010": "Purchases"}

	first := Summarize(txns, accounts)
	second := Summarize(txns, accounts)
	assert.Equal(t, first, second)
}

func TestSummarizeEmptyInput(t *testing.T) {
	g := Summarize(nil, nil)
	assert.Equal(t, []string{OpeningLabel}, g.Nodes, "exactly one synthetic node")
	assert.Empty(t, g.Links)
}

func TestRows(t *testing.T) {
	g := Summarize([]domain.Transaction{
		txn("1930", 100.0),
		txn("3000", -100.0),
	}, map[string]string{"1930": "Bank", "3000": "Sales"})

	rows := g.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, Row{Source: OpeningLabel, Target: "1930 - Bank", Value: 100.0, Color: ColorPositive}, rows[0])
	assert.Equal(t, Row{Source: "3000 - Sales", Target: OpeningLabel, Value: 100.0, Color: ColorNegative}, rows[1])
}
