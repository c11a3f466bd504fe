// Package extract pulls color tokens out of an HTML table.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/agbru/colorstats/internal/errors"
)

// DefaultColumn is the zero-based index of the cell holding the color list.
const DefaultColumn = 1

// CaseMode selects how token casing is normalized at ingestion.
type CaseMode string

const (
	CaseNone  CaseMode = "none"
	CaseTitle CaseMode = "title"
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
)

// ParseCaseMode validates a case mode name. The empty string selects CaseNone.
func ParseCaseMode(s string) (CaseMode, error) {
	switch m := CaseMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return CaseNone, nil
	case CaseNone, CaseTitle, CaseUpper, CaseLower:
		return m, nil
	default:
		return "", fmt.Errorf("unknown case mode %q (want none, title, upper or lower)", s)
	}
}

// Normalizer returns a function applying the mode to a single token.
func (m CaseMode) Normalizer() func(string) string {
	var c cases.Caser
	switch m {
	case CaseTitle:
		c = cases.Title(language.Und)
	case CaseUpper:
		c = cases.Upper(language.Und)
	case CaseLower:
		c = cases.Lower(language.Und)
	default:
		return func(s string) string { return s }
	}
	return c.String
}

// Options configures Extract.
type Options struct {
	// Column is the zero-based cell index holding the comma-separated list.
	Column int
	// Case normalizes every token.
	Case CaseMode
	// Sorted returns tokens in lexicographic order instead of document order.
	Sorted bool
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{Column: DefaultColumn, Case: CaseTitle, Sorted: true}
}

// Extraction is the outcome of a successful parse.
type Extraction struct {
	// Colors holds every non-empty token, duplicates preserved.
	Colors []string
	// Rows is the number of <tr> elements seen.
	Rows int
	// SkippedRows counts rows without enough cells.
	SkippedRows int
}

// Extract parses an HTML document and collects color tokens from every table
// row that has a cell at opts.Column. The cell text is split on commas and
// each trimmed, non-empty piece is kept. Rows outside any <table> are
// accepted too.
func Extract(r io.Reader, opts Options) (Extraction, error) {
	if opts.Column < 0 {
		return Extraction{}, fmt.Errorf("column %d out of range", opts.Column)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Extraction{}, &apperrors.ParseError{Cause: err}
	}
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return Extraction{}, &apperrors.ParseError{Cause: err}
	}

	normalize := opts.Case.Normalizer()
	var out Extraction

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			out.Rows++
			cells := rowCells(n)
			if len(cells) <= opts.Column {
				out.SkippedRows++
			} else {
				out.Colors = appendTokens(out.Colors, textContent(cells[opts.Column]), normalize)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	// Tree construction drops <tr> and <td> tags found outside a table, so a
	// document of bare rows is parsed again as the body of a table.
	if out.Rows == 0 {
		nodes, err := html.ParseFragment(bytes.NewReader(data), tableBodyContext())
		if err != nil {
			return Extraction{}, &apperrors.ParseError{Cause: err}
		}
		for _, n := range nodes {
			walk(n)
		}
	}

	if opts.Sorted {
		slices.Sort(out.Colors)
	}
	return out, nil
}

// tableBodyContext is the context element for fragment parsing of bare rows.
func tableBodyContext() *html.Node {
	return &html.Node{Type: html.ElementNode, Data: "tbody", DataAtom: atom.Tbody}
}

// rowCells returns the <td> children of a table row.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Td {
			cells = append(cells, c)
		}
	}
	return cells
}

// textContent concatenates all text below n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func appendTokens(dst []string, text string, normalize func(string) string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return dst
	}
	for _, piece := range strings.Split(text, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			dst = append(dst, normalize(piece))
		}
	}
	return dst
}
