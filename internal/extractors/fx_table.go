package extractors

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
	"github.com/nuraksworld/sl-market-friend-data/internal/textutil"
)

// rateKeywords mark a table as a rates table rather than an unrelated
// layout table that happens to mention a currency code.
var rateKeywords = []string{"buy", "sell", "indicative", "middle"}

var codePattern = map[string]*regexp.Regexp{}

func init() {
	for _, code := range currencyCodes {
		codePattern[code] = regexp.MustCompile(`(?i)\b` + code + `\b`)
	}
}

// htmlTable is one <table> reduced to its cell text.
type htmlTable struct {
	rows [][]string
}

func (t *htmlTable) flattened() string {
	var parts []string
	for _, row := range t.rows {
		parts = append(parts, row...)
	}
	return strings.Join(parts, " ")
}

// extractFromTables scans the HTML payload's tables for currency rows.
// Table choice: the first table whose flattened text contains a tracked
// code plus a rate keyword; failing that, the first table containing a
// code at all. Within the chosen table, each row naming a code
// contributes its first three numeric cells as indicative/buy/sell.
func extractFromTables(payload []byte) models.FxRates {
	var rates models.FxRates

	tables := parseTables(payload)
	table := chooseTable(tables)
	if table == nil {
		return rates
	}

	for _, row := range table.rows {
		rowText := strings.Join(row, " ")
		for _, code := range currencyCodes {
			if !codePattern[code].MatchString(rowText) {
				continue
			}
			if !isEmptyTriplet(getTriplet(&rates, code)) {
				continue
			}
			triplet := tripletFromCells(row)
			if isEmptyTriplet(triplet) {
				// Row carried the code but no numbers; leave it null.
				continue
			}
			setTriplet(&rates, code, triplet)
		}
	}
	return rates
}

func chooseTable(tables []*htmlTable) *htmlTable {
	var withCode *htmlTable
	for _, t := range tables {
		flat := strings.ToLower(t.flattened())
		hasCode := false
		for _, code := range currencyCodes {
			if strings.Contains(flat, strings.ToLower(code)) {
				hasCode = true
				break
			}
		}
		if !hasCode {
			continue
		}
		if withCode == nil {
			withCode = t
		}
		for _, kw := range rateKeywords {
			if strings.Contains(flat, kw) {
				return t
			}
		}
	}
	return withCode
}

// tripletFromCells collects the row's non-negative decimal cells in
// left-to-right order and assigns the first three to indicative, buy
// and sell respectively.
func tripletFromCells(cells []string) models.RateTriplet {
	var nums []decimal.Decimal
	for _, cell := range cells {
		if d, ok := textutil.ParseNonNegativeDecimal(cell); ok {
			nums = append(nums, d)
			if len(nums) == 3 {
				break
			}
		}
	}

	var triplet models.RateTriplet
	if len(nums) > 0 {
		triplet.Indicative = floatPtr(nums[0])
	}
	if len(nums) > 1 {
		triplet.Buy = floatPtr(nums[1])
	}
	if len(nums) > 2 {
		triplet.Sell = floatPtr(nums[2])
	}
	return triplet
}

// parseTables tokenizes the payload and returns every table's rows in
// document order. Parse errors yield whatever tables were recovered;
// the net/html parser is tolerant of the malformed markup these pages
// routinely serve.
func parseTables(payload []byte) []*htmlTable {
	doc, err := html.Parse(bytes.NewReader(payload))
	if err != nil {
		return nil
	}

	var tables []*htmlTable
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, collectTable(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return tables
}

func collectTable(table *html.Node) *htmlTable {
	t := &htmlTable{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			t.rows = append(t.rows, collectRow(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return t
}

func collectRow(tr *html.Node) []string {
	var cells []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "td" || n.Data == "th") {
			cells = append(cells, textutil.Flatten(nodeText(n)))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return cells
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// rateScale is the rounding applied to every emitted rate.
const rateScale = 4

func floatPtr(d decimal.Decimal) *float64 {
	v, _ := d.Round(rateScale).Float64()
	return &v
}
