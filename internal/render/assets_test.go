package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huronalytics/sitebuilder/internal/types"
)

func TestSearchJS(t *testing.T) {
	txns := []types.Transaction{
		{TeamCode: "BOS", Category: "MLB Signings", Date: "12/1", Entry: "Signed OF"},
		{TeamCode: "SEA", Category: "Retired", Entry: "C Player"},
	}

	got, err := SearchJS(txns)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "// Search functionality\nconst searchData = ["))
	assert.Contains(t, got, `"team":"BOS"`)
	assert.Contains(t, got, `"date":"12/1"`)
	assert.Contains(t, got, `"team_page":"bos.html"`)

	// Undated transactions serialize as null, not as an empty string.
	assert.Contains(t, got, `"date":null`)
	assert.NotContains(t, got, `"date":""`)

	// Records keep input order.
	assert.Less(t, strings.Index(got, `"Signed OF"`), strings.Index(got, `"C Player"`))

	// The static handler follows the data.
	assert.Contains(t, got, "searchInput.addEventListener('input'")
}

func TestSearchJS_EscapesMarkup(t *testing.T) {
	got, err := SearchJS([]types.Transaction{
		{TeamCode: "NYM", Category: "Released", Entry: "</script><script>alert(1)</script>"},
	})
	require.NoError(t, err)

	// json.Marshal rewrites angle brackets as \u003c / \u003e, so the entry
	// cannot terminate the surrounding script element.
	assert.NotContains(t, got, "</script><script>")
	assert.Contains(t, got, `\u003c/script\u003e\u003cscript\u003e`)
}

func TestSearchJS_EmptyCorpus(t *testing.T) {
	got, err := SearchJS(nil)
	require.NoError(t, err)
	assert.Contains(t, got, "const searchData = []")
}

func TestStyleSheet(t *testing.T) {
	assert.True(t, strings.HasPrefix(StyleSheet, "/* Huronalytics Styles */"))
	assert.Contains(t, StyleSheet, "--accent: #c41e3a;")
	assert.Contains(t, StyleSheet, ".team-card")
	assert.Contains(t, StyleSheet, ".accordion-section")
	assert.Contains(t, StyleSheet, ".search-results")
}
