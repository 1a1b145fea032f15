package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json fence",
			input:    "```json\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "bare fence",
			input:    "```\n{\"a\": 1}\n```",
			expected: `{"a": 1}`,
		},
		{
			name:     "uppercase JSON tag",
			input:    "```JSON\n{}\n```",
			expected: "{}",
		},
		{
			name:     "fence with surrounding prose",
			input:    "Here is the result:\n```json\n{\"ok\": true}\n```\nLet me know.",
			expected: `{"ok": true}`,
		},
		{
			name:     "no fence",
			input:    "  {\"a\": 1}  ",
			expected: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", FullName("Ada", "Lovelace"))
	assert.Equal(t, "Ada", FullName("Ada", ""))
	assert.Equal(t, "Lovelace", FullName("", "Lovelace"))
	assert.Equal(t, "", FullName("", ""))
}

func TestFormatFormAnswers(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, NoFormAnswers, FormatFormAnswers(nil))
		assert.Equal(t, NoFormAnswers, FormatFormAnswers(map[string]interface{}{}))
	})

	t.Run("sorted question blocks", func(t *testing.T) {
		got := FormatFormAnswers(map[string]interface{}{
			"years_experience": 5,
			"current_city":     "Berlin",
		})
		assert.Equal(t, "Q: Current city\nA: Berlin\n\nQ: Years experience\nA: 5", got)
	})
}

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{
		"candidate_name": "Ada Lovelace",
		"position_title": "Backend Engineer",
	}
	got := RenderTemplate("Hi {candidate_name}, about {position_title}: {unknown_token}", vars)
	assert.Equal(t, "Hi Ada Lovelace, about Backend Engineer: {unknown_token}", got)
}

func TestPhoneMatch(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		match bool
	}{
		{"identical", "+49 151 2345678", "491512345678", true},
		{"country prefix on one side", "+491512345678", "1512345678", true},
		{"suffix either direction", "1512345678", "00491512345678", true},
		{"national trunk zero vs country code", "+44 7700 900123", "07700900123", true},
		{"trunk zero either direction", "07700900123", "+447700900123", true},
		{"different numbers", "491512345678", "491598765432", false},
		{"too short", "12345", "12345", false},
		{"seven significant digits after dropping zeros", "0001234567", "1234567", true},
		{"six significant digits", "000123456", "0123456", false},
		{"empty", "", "491512345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, PhoneMatch(tt.a, tt.b))
		})
	}
}

func TestNameSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, NameSimilarity("Ada Lovelace", "ada lovelace"), 0.001)
	assert.Greater(t, NameSimilarity("Jon Smith", "John Smith"), 0.8)
	assert.Less(t, NameSimilarity("Ada Lovelace", "Grace Hopper"), 0.5)
	assert.Zero(t, NameSimilarity("", "Ada"))
}

func TestHumanizeKey(t *testing.T) {
	assert.Equal(t, "Years experience", HumanizeKey("years_experience"))
	assert.Equal(t, "City", HumanizeKey("city"))
	assert.Equal(t, "", HumanizeKey(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "abc", Truncate("abc", 10))
}
