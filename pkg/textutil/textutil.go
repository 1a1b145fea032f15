// Package textutil holds the small text helpers shared across the pipeline:
// code-fence stripping for LLM output, placeholder substitution for message
// and prompt templates, form-answer rendering, and the phone/name matching
// primitives used by the CV cascade.
package textutil

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// NoFormAnswers is rendered when an application has no pre-screening answers.
const NoFormAnswers = "No pre-screening answers available."

var (
	codeFenceRe   = regexp.MustCompile("(?is)```(?:json)?\\s*([\\s\\S]*?)```")
	placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)
	digitsRe      = regexp.MustCompile(`\D`)
)

// StripCodeFences returns the content of the first fenced block in s, or s
// trimmed when no fence is present. LLMs wrap JSON in ```json fences despite
// instructions not to.
func StripCodeFences(s string) string {
	if m := codeFenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(s)
}

// FullName joins first and last, tolerating either being empty.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// HumanizeKey turns a snake_case form key into a question label:
// "years_experience" -> "Years experience".
func HumanizeKey(key string) string {
	s := strings.ReplaceAll(key, "_", " ")
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatFormAnswers renders pre-screening answers as "Q: ...\nA: ..." blocks
// joined by blank lines, in key order for stable output.
func FormatFormAnswers(answers map[string]interface{}) string {
	if len(answers) == 0 {
		return NoFormAnswers
	}
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	blocks := make([]string, 0, len(keys))
	for _, k := range keys {
		blocks = append(blocks, fmt.Sprintf("Q: %s\nA: %v", HumanizeKey(k), answers[k]))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderTemplate substitutes {placeholder} tokens literally. Tokens without
// a value in vars are left intact so template typos stay visible instead of
// silently vanishing.
func RenderTemplate(tmpl string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(tok string) string {
		key := tok[1 : len(tok)-1]
		if v, ok := vars[key]; ok {
			return v
		}
		return tok
	})
}

// PhoneDigits strips every non-digit character.
func PhoneDigits(s string) string {
	return digitsRe.ReplaceAllString(s, "")
}

// PhoneMatch reports whether two phone numbers refer to the same line.
// Leading zeros are dropped after digit normalization so national trunk
// prefixes ("07700...") compare against country-coded forms ("+447700...");
// both sides must keep at least 7 significant digits, and either may carry
// a country prefix the other lacks, so the comparison is a bidirectional
// suffix check.
func PhoneMatch(a, b string) bool {
	da := strings.TrimLeft(PhoneDigits(a), "0")
	db := strings.TrimLeft(PhoneDigits(b), "0")
	if len(da) < 7 || len(db) < 7 {
		return false
	}
	return strings.HasSuffix(da, db) || strings.HasSuffix(db, da)
}

// NameSimilarity returns a 0..1 ratio between two names, case-insensitive.
// 1 means identical; the CV cascade requires strictly greater than its
// threshold before accepting a fuzzy match.
func NameSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	return 1 - float64(dist)/float64(longest)
}

// Truncate caps s at n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
