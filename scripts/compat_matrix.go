package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Owhab/nexacms-sub002/internal/modules/hero/migration"
	"github.com/Owhab/nexacms-sub002/internal/modules/hero/schema"
)

type pairReport struct {
	From   schema.Variant             `json:"from"`
	To     schema.Variant             `json:"to"`
	Report migration.Report           `json:"report"`
	Fields migration.CompatibilityMap `json:"fields"`
}

// Prints the variant-to-variant compatibility table. Pass "json" for the full
// per-pair reports; the default is a markdown grid of data-loss risk.
func main() {
	format := "markdown"
	if len(os.Args) > 1 {
		format = strings.ToLower(os.Args[1])
	}

	engine := migration.NewEngine(schema.DefaultRegistry())
	var pairs []pairReport
	for _, from := range schema.AllVariants {
		for _, to := range schema.AllVariants {
			if from == to {
				continue
			}
			pairs = append(pairs, pairReport{
				From:   from,
				To:     to,
				Report: engine.ValidateMigrationCompatibility(from, to),
				Fields: migration.GetPropertyCompatibilityMap(from, to),
			})
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pairs); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
	case "markdown":
		risk := map[[2]schema.Variant]pairReport{}
		for _, p := range pairs {
			risk[[2]schema.Variant{p.From, p.To}] = p
		}
		var b strings.Builder
		b.WriteString("| from \\ to |")
		for _, to := range schema.AllVariants {
			fmt.Fprintf(&b, " %s |", to)
		}
		b.WriteString("\n|---|")
		for range schema.AllVariants {
			b.WriteString("---|")
		}
		b.WriteString("\n")
		for _, from := range schema.AllVariants {
			fmt.Fprintf(&b, "| %s |", from)
			for _, to := range schema.AllVariants {
				if from == to {
					b.WriteString(" - |")
					continue
				}
				p := risk[[2]schema.Variant{from, to}]
				fmt.Fprintf(&b, " %s/%s |", p.Report.Compatibility, p.Report.DataLossRisk)
			}
			b.WriteString("\n")
		}
		fmt.Print(b.String())
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q (want markdown or json)\n", format)
		os.Exit(2)
	}
}
