package flow

import (
	"math"

	"github.com/blyfoten/SankeySaldo/internal/domain"
)

// Summarize aggregates the signed transaction amounts per account and builds
// the flow graph. Accounts whose net balance is exactly zero are omitted
// entirely (no node, no edge). The result is deterministic: the opening node
// first, then one node per non-zero account in the order accounts are first
// encountered in the transaction list, positive links before negative ones.
func Summarize(txns []domain.Transaction, accounts map[string]string) *Graph {
	sums := make(map[string]float64, len(accounts))
	var order []string
	for _, t := range txns {
		if _, seen := sums[t.Account]; !seen {
			order = append(order, t.Account)
		}
		sums[t.Account] += t.Amount
	}

	g := &Graph{Nodes: []string{OpeningLabel}}

	// The node list is built once, in first-encounter order, with an O(1)
	// label index: a linear Nodes scan per link degrades quadratically with
	// the account count.
	index := map[string]int{OpeningLabel: 0}
	for _, account := range order {
		if sums[account] == 0 {
			continue
		}
		label := nodeLabel(account, accounts)
		if _, dup := index[label]; dup {
			continue
		}
		index[label] = len(g.Nodes)
		g.Nodes = append(g.Nodes, label)
	}

	for _, account := range order {
		if sums[account] <= 0 {
			continue
		}
		g.Links = append(g.Links, Link{
			Source: 0,
			Target: index[nodeLabel(account, accounts)],
			Value:  sums[account],
			Color:  ColorPositive,
		})
	}
	for _, account := range order {
		if sums[account] >= 0 {
			continue
		}
		g.Links = append(g.Links, Link{
			Source: index[nodeLabel(account, accounts)],
			Target: 0,
			Value:  math.Abs(sums[account]),
			Color:  ColorNegative,
		})
	}
	return g
}

func nodeLabel(account string, accounts map[string]string) string {
	name, ok := accounts[account]
	if !ok || name == "" {
		name = UnknownAccount
	}
	return account + " - " + name
}
