package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodVerdict = `{
  "outcome": "qualified",
  "qualified": true,
  "score": 87.5,
  "reasoning": "Meets all criteria.",
  "criteria": [{"name": "3+ years Go", "passed": true, "note": "5 years at Acme"}],
  "disqualifying_factor": null,
  "callback_requested": false,
  "callback_notes": null,
  "needs_human": false,
  "needs_human_notes": null,
  "callback_at": null
}`

func TestParseEvaluation(t *testing.T) {
	result, err := ParseEvaluation(goodVerdict)
	require.NoError(t, err)
	assert.Equal(t, OutcomeQualified, result.Outcome)
	assert.True(t, result.Qualified)
	assert.Equal(t, 87.5, result.Score)
	assert.Equal(t, "Meets all criteria.", result.Reasoning)
	require.Len(t, result.Criteria, 1)
	assert.True(t, result.Criteria[0].Passed)
	assert.Empty(t, result.DisqualifyingFactor)
	assert.Equal(t, goodVerdict, result.Raw)
}

func TestParseEvaluation_CodeFence(t *testing.T) {
	fenced := "```json\n" + goodVerdict + "\n```"
	result, err := ParseEvaluation(fenced)
	require.NoError(t, err)
	assert.Equal(t, OutcomeQualified, result.Outcome)
}

func TestParseEvaluation_Repair(t *testing.T) {
	// Trailing comma: invalid JSON that the repair pass fixes.
	broken := `{"outcome": "not_qualified", "qualified": false, "score": 20, "reasoning": "No Go experience", "disqualifying_factor": "missing core skill",}`
	result, err := ParseEvaluation(broken)
	require.NoError(t, err)
	assert.Equal(t, OutcomeNotQualified, result.Outcome)
	assert.False(t, result.Qualified)
	assert.Equal(t, "missing core skill", result.DisqualifyingFactor)
}

func TestParseEvaluation_Callback(t *testing.T) {
	verdict := `{"outcome": "CALLBACK_REQUESTED", "qualified": false, "score": 0, "reasoning": "Asked to call back", "callback_requested": true, "callback_notes": "prefers evenings", "callback_at": "2026-09-01T18:00:00"}`
	result, err := ParseEvaluation(verdict)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCallbackRequested, result.Outcome)
	assert.True(t, result.CallbackRequested)
	assert.Equal(t, "prefers evenings", result.CallbackNotes)
	assert.Equal(t, "2026-09-01T18:00:00", result.CallbackAt)
}

func TestParseEvaluation_MissingRequiredFields(t *testing.T) {
	_, err := ParseEvaluation(`{"outcome": "qualified", "qualified": true}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required fields")
}

func TestParseEvaluation_UnknownOutcome(t *testing.T) {
	_, err := ParseEvaluation(`{"outcome": "maybe", "qualified": false, "score": 50, "reasoning": "unsure"}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown evaluation outcome")
}

func TestParseEvaluation_Garbage(t *testing.T) {
	long := strings.Repeat("not json at all ", 50)
	_, err := ParseEvaluation(long)
	require.Error(t, err)
	// Error snippet is truncated, not the full response.
	assert.Less(t, len(err.Error()), 300)
}

func TestBuildEvaluationPrompts(t *testing.T) {
	in := EvaluationInput{
		CandidateName:         "Ada Lovelace",
		PositionTitle:         "Backend Engineer",
		QualificationCriteria: "3+ years of Go",
		FormAnswers:           map[string]interface{}{"years_of_go": 5},
		Transcript:            "Agent: Hello\n\nUser: Hi",
	}

	system := buildEvaluationSystem(in)
	assert.Contains(t, system, "Backend Engineer")
	assert.Contains(t, system, "3+ years of Go")
	assert.Contains(t, system, "untrusted")

	user := buildEvaluationUser(in)
	assert.Contains(t, user, "<candidate_data>")
	assert.Contains(t, user, "</candidate_data>")
	assert.Contains(t, user, "Ada Lovelace")
	assert.Contains(t, user, "Agent: Hello")
	// Untrusted content sits inside the data block, the schema after it.
	assert.Less(t, strings.Index(user, "Agent: Hello"), strings.Index(user, "</candidate_data>"))
	assert.Greater(t, strings.Index(user, `"outcome"`), strings.Index(user, "</candidate_data>"))
}

func TestParseContact(t *testing.T) {
	contact, err := ParseContact(`{"first_name": "Ada", "last_name": "Lovelace", "email": "ada@example.com", "phone": null}`)
	require.NoError(t, err)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "Lovelace", contact.LastName)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Empty(t, contact.Phone)
}

func TestParseContact_Fenced(t *testing.T) {
	contact, err := ParseContact("```json\n{\"first_name\": \"Ada\", \"last_name\": null, \"email\": null, \"phone\": \"+49151\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "+49151", contact.Phone)
}
