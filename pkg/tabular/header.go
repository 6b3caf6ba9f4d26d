package tabular

import "strings"

// headerKeywords are label fragments that strongly suggest a row is the
// header of an employee sheet. Matching is case-insensitive substring.
var headerKeywords = []string{
	"id", "name", "email", "cnic", "department", "designation",
	"joining", "status", "date", "contact", "phone", "address",
	"manager", "salary", "employee", "slack",
}

// maxHeaderCandidates limits how many leading rows are scored.
const maxHeaderCandidates = 5

// Confidence classifies how credible a located header row is.
type Confidence int

const (
	// ConfidenceNone means every candidate row scored zero; the sheet has
	// no credible header and callers must not assume row 0.
	ConfidenceNone Confidence = iota
	// ConfidenceGuessed means the best row had non-empty text but no
	// header keywords matched.
	ConfidenceGuessed
	// ConfidenceKeyword means at least one header keyword matched in the
	// best row.
	ConfidenceKeyword
)

// String returns the confidence name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceKeyword:
		return "keyword"
	case ConfidenceGuessed:
		return "guessed"
	default:
		return "none"
	}
}

// HeaderLocation is the result of scoring the leading rows of a sheet.
type HeaderLocation struct {
	// Index is the zero-based row index of the most likely header.
	Index int

	// Score is the winning row's score:
	// count(non-empty string cells) + 2*count(cells containing a keyword).
	Score int

	// Keywords is the number of keyword hits in the winning row.
	Keywords int

	// Confidence classifies the result so callers can apply different
	// policies to confident versus guessed headers.
	Confidence Confidence
}

// Detected reports whether any credible header row was found. When false,
// callers must treat the sheet as headerless rather than defaulting to row 0.
func (h HeaderLocation) Detected() bool {
	return h.Score > 0
}

// LocateHeader scores the first few rows of a raw block and returns the row
// most likely to be the header. Ties keep the earliest row. The function is
// deterministic and has no side effects.
func LocateHeader(rows []Row) HeaderLocation {
	best := HeaderLocation{Index: 0, Score: 0}

	limit := len(rows)
	if limit > maxHeaderCandidates {
		limit = maxHeaderCandidates
	}

	for idx := 0; idx < limit; idx++ {
		score, keywords := scoreRow(rows[idx])
		if score > best.Score {
			best = HeaderLocation{Index: idx, Score: score, Keywords: keywords}
		}
	}

	switch {
	case best.Score == 0:
		best.Confidence = ConfidenceNone
	case best.Keywords == 0:
		best.Confidence = ConfidenceGuessed
	default:
		best.Confidence = ConfidenceKeyword
	}

	return best
}

// scoreRow computes the header score for one candidate row.
func scoreRow(row Row) (score, keywords int) {
	for _, cell := range row {
		if cell.Kind() != KindString {
			continue
		}
		score++
		text := strings.ToLower(cell.Text())
		for _, kw := range headerKeywords {
			if strings.Contains(text, kw) {
				score += 2
				keywords++
				break
			}
		}
	}
	return score, keywords
}
