package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/colorstats/internal/format"
	"github.com/agbru/colorstats/internal/orchestration"
	"github.com/agbru/colorstats/internal/search"
)

// Absent is printed in place of a statistic that could not be computed.
const Absent = "None"

// TextPresenter implements orchestration.ReportPresenter with the plain-text
// report printed to standard output.
type TextPresenter struct{}

// Verify interface compliance.
var _ orchestration.ReportPresenter = TextPresenter{}

// PresentReport writes one line per result, in a fixed order.
func (TextPresenter) PresentReport(r orchestration.Report, out io.Writer) error {
	s := r.Summary
	lines := []string{
		fmt.Sprintf("Mean Color: %s", FormatOptional(s.MeanColor)),
		fmt.Sprintf("Most Worn Color: %s", FormatOptional(s.Mode)),
		fmt.Sprintf("Median Color: %s", FormatOptional(s.MedianColor)),
		fmt.Sprintf("Variance: %s", FormatOptionalFloat(s.Variance)),
		fmt.Sprintf("Probability of %s: %s", r.Target, format.FormatProbability(r.Probability)),
		fmt.Sprintf("Generated Binary Number: %s, Base 10: %d", r.Binary.Bits, r.Binary.Value),
		fmt.Sprintf("Sum of First %d Fibonacci Numbers: %s", r.FibTerms, FormatSum(r)),
		fmt.Sprintf("Search Result for '%s': %s", r.SearchTarget, FormatSearchResult(r.SearchIndex)),
		fmt.Sprintf("Color Frequencies: %v", map[string]int(r.Frequencies)),
	}
	_, err := io.WriteString(out, strings.Join(lines, "\n")+"\n")
	return err
}

// FormatOptional returns the value or Absent when v is nil.
func FormatOptional(v *string) string {
	if v == nil {
		return Absent
	}
	return *v
}

// FormatOptionalFloat formats v with format.FormatFloat, or returns Absent.
func FormatOptionalFloat(v *float64) string {
	if v == nil {
		return Absent
	}
	return format.FormatFloat(*v)
}

// FormatSearchResult returns the index or "Not Found".
func FormatSearchResult(index int) string {
	if index == search.NotFound {
		return "Not Found"
	}
	return strconv.Itoa(index)
}

// FormatSum renders the Fibonacci sum, treating a missing value as zero.
func FormatSum(r orchestration.Report) string {
	if r.FibSum == nil {
		return "0"
	}
	return r.FibSum.String()
}
