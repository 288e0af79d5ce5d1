package mongo

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseInsensitiveMatchEscapesMetacharacters(t *testing.T) {
	pattern := caseInsensitiveMatch("Kigali (Gasabo)")

	assert.Equal(t, `Kigali \(Gasabo\)`, pattern["$regex"])
	assert.Equal(t, "i", pattern["$options"])
}

func TestCaseInsensitiveMatchAlwaysValidRegex(t *testing.T) {
	// Unbalanced metacharacters would make the server reject the query
	for _, input := range []string{"(", "[a-", "villa*+", `c:\homes`} {
		pattern := caseInsensitiveMatch(input)

		compiled, err := regexp.Compile(pattern["$regex"].(string))
		require.NoError(t, err, input)
		assert.True(t, compiled.MatchString("prefix "+input+" suffix"), input)
	}
}
