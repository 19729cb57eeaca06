package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want ID
	}{
		{`7`, "7"},
		{`12.50`, "12.50"},
		{`"go"`, "go"},
		{`"4f1c2b1e-2f0a-4c3e-9a51-3f1f5a0e9b11"`, "4f1c2b1e-2f0a-4c3e-9a51-3f1f5a0e9b11"},
		{`null`, ""},
	}
	for _, tc := range cases {
		var got ID
		require.NoError(t, json.Unmarshal([]byte(tc.in), &got), tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`true`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &bad))
}

func TestID_MarshalsAsString(t *testing.T) {
	b, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ID: "7"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(b))
}

func TestScoreSkills_IntegerAndNameIDs(t *testing.T) {
	var reqs []SkillRequirement
	require.NoError(t, json.Unmarshal([]byte(`[
		{"SkillID": 1, "SkillName": "Go", "RequiredProficiency": 3},
		{"SkillID": "sql", "SkillName": "SQL", "RequiredProficiency": 2}
	]`), &reqs))
	var have []CandidateSkill
	require.NoError(t, json.Unmarshal([]byte(`[
		{"SkillID": "1", "SkillName": "Go", "ProficiencyLevel": 4},
		{"SkillID": "sql", "SkillName": "SQL", "ProficiencyLevel": 2}
	]`), &have))

	got := ScoreSkills(have, reqs)
	assert.Equal(t, 2, got.MatchedSkills)
	assert.Equal(t, 220, got.TotalScore)
	assert.Empty(t, got.MissingSkills)
}
