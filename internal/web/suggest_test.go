package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	assert.Contains(t, Suggest("isues"), "issues")
	assert.Contains(t, Suggest("cmts"), "commits")
	assert.LessOrEqual(t, len(Suggest("r")), maxSuggestions)
	assert.Empty(t, Suggest(""))
	assert.Empty(t, Suggest("zzz"))
}
