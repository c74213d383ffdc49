// Package judge decides whether a learner's free-text answer counts as
// correct against a reference answer. It tolerates case, punctuation,
// whitespace, small typos, and partial phrasing, and reports a similarity
// score the UI can show as feedback.
//
// The whole package is pure computation: no I/O, no state, safe to call
// from any number of goroutines.
package judge

import (
	"errors"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrEmptyAnswer is returned when an input is empty once normalized
// (e.g. an answer consisting only of punctuation).
var ErrEmptyAnswer = errors.New("judge: answer is empty after normalization")

// similarityThreshold is the inclusive cutoff (in percent) for the
// edit-distance fallback.
const similarityThreshold = 85.0

// containmentRatio guards the substring heuristic: the shorter string must
// be at least this fraction of the longer one, so a one-letter answer does
// not match a whole phrase that happens to contain it.
const containmentRatio = 0.6

// Result is the verdict for a single answer check.
type Result struct {
	IsCorrect bool
	// Similarity is a percentage in [0,100], rounded to two decimals.
	// The threshold comparison uses the unrounded value.
	Similarity float64
	// Normalized forms of both inputs, echoed for transparency.
	NormalizedUser    string
	NormalizedCorrect string
}

// Check judges userAnswer against correctAnswer.
//
// Rules, in order: exact match after normalization; substring containment
// with the length-ratio guard; Levenshtein similarity against the
// threshold. The similarity score is always computed, even when an earlier
// rule already decided.
//
// If either input normalizes to the empty string, Check returns
// ErrEmptyAnswer rather than a verdict.
func Check(userAnswer, correctAnswer string) (Result, error) {
	user := Normalize(userAnswer)
	correct := Normalize(correctAnswer)

	if user == "" || correct == "" {
		return Result{}, ErrEmptyAnswer
	}

	sim := Similarity(user, correct)

	res := Result{
		Similarity:        math.Round(sim*100) / 100,
		NormalizedUser:    user,
		NormalizedCorrect: correct,
	}

	switch {
	case user == correct:
		res.IsCorrect = true
	case containedWithRatio(user, correct):
		res.IsCorrect = true
	default:
		res.IsCorrect = sim >= similarityThreshold
	}

	return res, nil
}

// containedWithRatio reports whether one string contains the other and the
// shorter is at least containmentRatio of the longer, measured in runes.
func containedWithRatio(a, b string) bool {
	if !strings.Contains(a, b) && !strings.Contains(b, a) {
		return false
	}
	la, lb := len([]rune(a)), len([]rune(b))
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	return float64(shorter)/float64(longer) >= containmentRatio
}

// Normalize lowercases, strips punctuation, and collapses whitespace.
// Input is NFKC-folded first so width/compatibility variants compare equal.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`.,;:!?()[]{}'"`, r) {
			return -1
		}
		return r
	}, s)
	// Collapse runs of whitespace to single spaces and trim again.
	return strings.Join(strings.Fields(s), " ")
}

// Similarity returns the edit-distance similarity of two strings as a
// percentage: ((maxLen - distance) / maxLen) * 100, with lengths in runes.
// Two empty strings are 100% similar. The value is not rounded.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 100
	}
	d := Distance(a, b)
	return float64(maxLen-d) / float64(maxLen) * 100
}

// Distance computes the classic Levenshtein edit distance (unit-cost
// insertions, deletions, substitutions) between two strings, operating on
// runes. It keeps a single rolling row, so space is O(min(n,m)).
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Iterate over the longer string, keep the row for the shorter one.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0] // row[i-1][j-1] before overwrite
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = minInt(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}

	return row[len(rb)]
}

func minInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
