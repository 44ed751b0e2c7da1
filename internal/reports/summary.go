package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/nuraksworld/sl-market-friend-data/internal/models"
)

// htmlShell wraps the rendered summary body. Styling is deliberately
// minimal; this page exists for operators glancing at the latest run,
// the app consumes prices.json.
const htmlShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; padding: 0 1rem; color: #222; }
table { border-collapse: collapse; width: 100%%; margin: 1rem 0; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f4f4f4; }
</style>
</head>
<body>
%s
</body>
</html>
`

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// BuildSummary renders a snapshot into a standalone HTML summary page.
func BuildSummary(snap *models.Snapshot) ([]byte, error) {
	markdown := BuildMarkdown(snap)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("failed to render summary markdown: %w", err)
	}

	title := fmt.Sprintf("%s - %s", snap.App, snap.LastUpdated)
	return []byte(fmt.Sprintf(htmlShell, title, buf.String())), nil
}

// BuildMarkdown produces the deterministic markdown summary of one
// snapshot: fuel, FX and gold tables plus any diagnostics.
func BuildMarkdown(snap *models.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", snap.App)
	fmt.Fprintf(&sb, "Last updated: %s (%s)\n\n", snap.LastUpdated, snap.Tz)

	sb.WriteString("## Fuel prices (Rs. per litre)\n\n")
	sb.WriteString("| Product | Price | Effective from |\n")
	sb.WriteString("| --- | --- | --- |\n")
	fuelRows := []struct {
		name  string
		quote models.PriceQuote
	}{
		{"Petrol 92 Octane", snap.Fuel.Petrol92},
		{"Petrol 95 Octane", snap.Fuel.Petrol95},
		{"Auto Diesel", snap.Fuel.DieselAuto},
		{"Super Diesel", snap.Fuel.DieselSuper},
		{"Kerosene", snap.Fuel.Kerosene},
	}
	for _, row := range fuelRows {
		fmt.Fprintf(&sb, "| %s | %s | %s |\n",
			row.name, fmtFloat(row.quote.Value), fmtString(row.quote.EffectiveDate))
	}

	sb.WriteString("\n## Exchange rates (LKR)\n\n")
	sb.WriteString("| Pair | Indicative | Buy | Sell |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")
	fxRows := []struct {
		name    string
		triplet models.RateTriplet
	}{
		{"USD/LKR", snap.Fx.UsdLkrSpot},
		{"GBP/LKR", snap.Fx.GbpLkr},
		{"EUR/LKR", snap.Fx.EurLkr},
	}
	for _, row := range fxRows {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			row.name, fmtFloat(row.triplet.Indicative),
			fmtFloat(row.triplet.Buy), fmtFloat(row.triplet.Sell))
	}

	sb.WriteString("\n## Gold (LKR per gram)\n\n")
	sb.WriteString("| Purity | Price |\n")
	sb.WriteString("| --- | --- |\n")
	fmt.Fprintf(&sb, "| 24k | %s |\n", fmtFloat(snap.Gold.PerGram24K))
	fmt.Fprintf(&sb, "| 22k | %s |\n", fmtFloat(snap.Gold.PerGram22K))
	if snap.Gold.Notes != "" {
		fmt.Fprintf(&sb, "\n%s\n", snap.Gold.Notes)
	}

	diagnostics := collectDiagnostics(snap)
	if len(diagnostics) > 0 {
		sb.WriteString("\n## Diagnostics\n\n")
		for _, d := range diagnostics {
			fmt.Fprintf(&sb, "- %s\n", d)
		}
	}

	return sb.String()
}

func collectDiagnostics(snap *models.Snapshot) []string {
	var out []string
	if snap.Debug.FuelError != "" {
		out = append(out, "fuel: "+snap.Debug.FuelError)
	}
	if snap.Debug.FxError != "" {
		out = append(out, "fx: "+snap.Debug.FxError)
	}
	if snap.Debug.GoldError != "" {
		out = append(out, "gold: "+snap.Debug.GoldError)
	}
	return out
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtString(s *string) string {
	if s == nil {
		return "n/a"
	}
	return *s
}
