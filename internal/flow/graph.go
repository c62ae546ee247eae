// Package flow builds the two-terminal balance flow graph rendered as a
// Sankey diagram: every account with a positive net balance receives flow
// from the synthetic opening-balance node, every negative one flows back
// into it.
package flow

// Node and color constants match the historical diagram.
const (
	OpeningLabel   = "Ingående balans"
	UnknownAccount = "Okänt konto"

	ColorPositive = "rgba(44, 160, 44, 0.5)" // green, into the account
	ColorNegative = "rgba(214, 39, 40, 0.5)" // red, out of the account
)

// Graph is a directed flow graph in node-index form, the shape a Sankey
// renderer consumes directly.
type Graph struct {
	Nodes []string `json:"nodes"`
	Links []Link   `json:"links"`
}

// Link is one directed edge between two node indices.
type Link struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// Row is a link with its node indices resolved to labels, for two-column
// tabular rendering.
type Row struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	Color  string  `json:"color"`
}

// Rows resolves every link to its node labels, in link order.
func (g *Graph) Rows() []Row {
	rows := make([]Row, 0, len(g.Links))
	for _, l := range g.Links {
		rows = append(rows, Row{
			Source: g.Nodes[l.Source],
			Target: g.Nodes[l.Target],
			Value:  l.Value,
			Color:  l.Color,
		})
	}
	return rows
}
