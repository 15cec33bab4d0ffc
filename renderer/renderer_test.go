package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/taxlot"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

func fixtureLedger(t *testing.T) *taxlot.Ledger {
	t.Helper()
	ledger := taxlot.NewLedger()
	if err := ledger.Buy(taxlot.MustParseDate("2021-01-01"), taxlot.M(10000.0, "USD"), taxlot.Q(1.0)); err != nil {
		t.Fatal(err)
	}
	if err := ledger.Buy(taxlot.MustParseDate("2021-01-02"), taxlot.M(20000.0, "USD"), taxlot.Q(0.5)); err != nil {
		t.Fatal(err)
	}
	return ledger
}

func TestRenderHoldings(t *testing.T) {
	got := RenderHoldings(NewHoldings(fixtureLedger(t), taxlot.HIFO))

	for _, want := range []string{
		"# Holdings (hifo)",
		"| 1 | 2021-01-01 | $10,000.00 | 1.00000000 |",
		"| 2 | 2021-01-02 | $20,000.00 | 0.50000000 |",
		"**Total quantity**: 1.50000000",
		"**Cost basis**: $20,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report is missing %q:\n%s", want, got)
		}
	}
}

func TestRenderHoldings_Empty(t *testing.T) {
	got := RenderHoldings(NewHoldings(taxlot.NewLedger(), taxlot.FIFO))
	if !strings.Contains(got, "No lots remaining.") {
		t.Errorf("empty report should say so:\n%s", got)
	}
}

// TestRenderHoldings_ValidMarkdown parses the report with goldmark and checks
// the document structure: one heading, one table row per lot.
func TestRenderHoldings_ValidMarkdown(t *testing.T) {
	source := []byte(RenderHoldings(NewHoldings(fixtureLedger(t), taxlot.FIFO)))

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(source))

	var headings, rows int
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			headings++
		case east.KindTableRow:
			rows++
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if headings != 1 {
		t.Errorf("got %d headings, want 1", headings)
	}
	if rows != 2 {
		t.Errorf("got %d table rows, want 2 (one per lot)", rows)
	}
}
