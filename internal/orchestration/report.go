package orchestration

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/colorstats/internal/binary"
	"github.com/agbru/colorstats/internal/stats"
)

// ErrorPolicy decides what happens when the document cannot be retrieved or
// parsed.
type ErrorPolicy string

const (
	// PolicyDegrade logs the failure and continues with an empty sequence.
	PolicyDegrade ErrorPolicy = "degrade"
	// PolicyAbort stops the run and returns the failure.
	PolicyAbort ErrorPolicy = "abort"
)

// ParseErrorPolicy validates a policy name. The empty string selects
// PolicyDegrade.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch p := ErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyDegrade, nil
	case PolicyDegrade, PolicyAbort:
		return p, nil
	default:
		return "", fmt.Errorf("unknown error policy %q (want degrade or abort)", s)
	}
}

// ColorResult carries either the extracted color sequence or the error that
// prevented extraction.
type ColorResult struct {
	Colors      []string
	Rows        int
	SkippedRows int
	Err         error
}

// OK reports whether extraction succeeded.
func (r ColorResult) OK() bool { return r.Err == nil }

// Report is the complete output of one pipeline run.
type Report struct {
	DocumentID string

	// Colors is the sorted token sequence the statistics were computed on.
	Colors      []string
	Summary     stats.Summary
	Frequencies stats.Frequencies

	Target      string
	Probability float64

	SearchTarget string
	SearchIndex  int

	Binary binary.Number

	FibTerms uint64
	FibSum   *big.Int

	// Degraded is set when ingestion failed and the run continued on empty
	// data. IngestErr holds the absorbed failure.
	Degraded  bool
	IngestErr error

	Elapsed time.Duration
}
