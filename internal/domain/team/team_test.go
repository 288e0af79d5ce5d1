package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkillsCommaSeparated(t *testing.T) {
	skills, err := NormalizeSkills(" Sales , Negotiation ,, Property Law ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales", "Negotiation", "Property Law"}, skills)
}

func TestNormalizeSkillsJSONArray(t *testing.T) {
	skills, err := NormalizeSkills(`[" Sales ", "", "Valuation"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales", "Valuation"}, skills)
}

func TestNormalizeSkillsEmpty(t *testing.T) {
	skills, err := NormalizeSkills("   ")
	require.NoError(t, err)
	assert.Equal(t, []string{}, skills)
}

func TestNormalizeSkillsRejectsNonArrayJSON(t *testing.T) {
	_, err := NormalizeSkills(`{"skills":"Sales"}`)
	assert.Error(t, err)

	_, err = NormalizeSkills(`"just a string"`)
	assert.Error(t, err)
}

func TestNormalizeSkillsRejectsTooMany(t *testing.T) {
	raw := ""
	for i := 0; i <= maxSkills; i++ {
		raw += "skill,"
	}

	// Duplicates are allowed; only the count is capped
	_, err := NormalizeSkills(raw)
	assert.Error(t, err)
}
