package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_ValidDatePrefix(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantDate string
		wantText string
	}{
		{"simple", "9/15: Signed RHSP", "9/15", "Signed RHSP"},
		{"single digit month and day", "9/1: Signed C", "9/1", "Signed C"},
		{"two digit month", "12/31: Claimed RHRP", "12/31", "Claimed RHRP"},
		{"january side of the window", "2/1: Signed LHSP", "2/1", "Signed LHSP"},
		{"boundary day", "1/31: Outrighted SS", "1/31", "Outrighted SS"},
		{"later delimiters stay in text", "9/1: Signed: pending physical", "9/1", "Signed: pending physical"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, text := Parse(tt.raw)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantText, text)
		})
	}
}

func TestParse_NoDateReturnsOriginal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no delimiter", "Signed a pitcher"},
		{"delimiter without slash head", "Monday: meeting"},
		{"head too long", "10/100: Signed RHSP"},
		{"month out of range", "13/1: Signed RHSP"},
		{"month zero", "0/5: Signed RHSP"},
		{"day out of range", "1/32: Signed RHSP"},
		{"non-numeric month", "a/1: Signed RHSP"},
		{"three date parts", "1/2/3: Signed RHSP"},
		{"bare markers", "~~"},
		{"re-signed entry", "Player Name* (AAA)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, text := Parse(tt.raw)
			assert.Empty(t, date)
			assert.Equal(t, tt.raw, text, "failed parse must return the input byte-for-byte")
		})
	}
}

func TestParse_StrikethroughRoundTrip(t *testing.T) {
	date, text := Parse("~~9/1: Cut~~")
	assert.Equal(t, "9/1", date)
	assert.Equal(t, "~~Cut~~", text)
}

func TestParse_ItalicRoundTrip(t *testing.T) {
	date, text := Parse("_12/10: Rule-5 pick_")
	assert.Equal(t, "12/10", date)
	assert.Equal(t, "_Rule-5 pick_", text)
}

func TestParse_NestedMarkersKeepOrder(t *testing.T) {
	// Strikethrough is the outer wrap and must be re-applied outermost.
	date, text := Parse("~~_11/5: Player X_~~")
	assert.Equal(t, "11/5", date)
	assert.Equal(t, "~~_Player X_~~", text)
}

func TestParse_DoubleUnderscoreIsNotItalic(t *testing.T) {
	// "__" is a different marker; the head then starts with underscores and
	// cannot parse as a date, so the input comes back untouched.
	date, text := Parse("__9/1: Signed__")
	assert.Empty(t, date)
	assert.Equal(t, "__9/1: Signed__", text)
}

func TestParse_FailedDateKeepsMarkers(t *testing.T) {
	// The asymmetry: markers are only re-applied on a successful date parse.
	// Without a date the pristine original is returned, markers included.
	date, text := Parse("~~Released earlier~~")
	assert.Empty(t, date)
	assert.Equal(t, "~~Released earlier~~", text)

	date, text = Parse("_Pending physical_")
	assert.Empty(t, date)
	assert.Equal(t, "_Pending physical_", text)
}
