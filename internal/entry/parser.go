// =============================================================================
// Huronalytics Site Builder - Entry Parser
// =============================================================================
//
// This module turns a raw sheet cell into a (date, text) pair. Cells follow
// a loose "M/D: remaining text" convention and may be wrapped in inline
// annotation markers:
//
//   ~~entry~~   strikethrough (player no longer in the organization)
//   _entry_     italic (Rule-5 MLB portion, subsequently outrighted, etc.)
//
// PARSE CONTRACT:
//   - A successful date parse strips the markers, splits off the date head,
//     and re-wraps the markers around the remaining text (strikethrough
//     outermost).
//   - Any failure returns ("", raw) with the input byte-for-byte untouched,
//     markers included. The asymmetry is deliberate: which markers reach the
//     renderer depends on whether a date was recognized.
//
// =============================================================================

package entry

import (
	"strconv"
	"strings"
)

// dateDelimiter separates the date head from the entry text. Only the first
// occurrence splits; later occurrences stay in the text.
const dateDelimiter = ": "

// maxDateHeadLen bounds the date head, "12/31" being the longest valid form.
const maxDateHeadLen = 5

// Parse extracts an optional "M/D" date prefix from a raw, non-empty,
// trimmed cell string. It returns the date (empty when none was found) and
// the entry text.
func Parse(raw string) (date, text string) {
	working := raw

	// Strip a full strikethrough wrap. "~~" and "~~~~" carry no content and
	// do not count as wrapped entries.
	strikethrough := false
	if len(working) >= 4 && strings.HasPrefix(working, "~~") && strings.HasSuffix(working, "~~") {
		strikethrough = true
		working = working[2 : len(working)-2]
	}

	// Strip a full single-italic wrap. A leading "__" is a different marker
	// and must not fire, nor may a bare "_".
	italic := false
	if len(working) >= 2 && strings.HasPrefix(working, "_") && strings.HasSuffix(working, "_") &&
		!strings.HasPrefix(working, "__") {
		italic = true
		working = working[1 : len(working)-1]
	}

	head, tail, found := strings.Cut(working, dateDelimiter)
	if !found {
		return "", raw
	}

	if !validDateHead(head) {
		return "", raw
	}

	// Re-apply the markers around the tail in their original nesting order.
	text = tail
	if italic {
		text = "_" + text + "_"
	}
	if strikethrough {
		text = "~~" + text + "~~"
	}
	return head, text
}

// validDateHead reports whether head is a plausible "M/D" date: at most five
// characters, exactly two integer parts, month 1-12, day 1-31. There is no
// days-in-month validation.
func validDateHead(head string) bool {
	if len(head) > maxDateHeadLen || !strings.Contains(head, "/") {
		return false
	}

	parts := strings.Split(head, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}
