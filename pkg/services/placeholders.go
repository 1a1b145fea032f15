package services

import (
	"strconv"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/pkg/textutil"
)

// PlaceholderVars builds the substitution map used by agent prompts and
// message templates. Tokens are replaced literally; unknown tokens in a
// template are left intact.
func PlaceholderVars(app *ent.Application, cand *ent.Candidate, pos *ent.Position) map[string]string {
	return map[string]string{
		"candidate_name":       textutil.FullName(cand.FirstName, cand.LastName),
		"candidate_first_name": cand.FirstName,
		"first_name":           cand.FirstName,
		"candidate_email":      cand.Email,
		"position_title":       pos.Title,
		"position_description": pos.Description,
		"form_answers":         textutil.FormatFormAnswers(cand.FormAnswers),
		"application_pk":       strconv.Itoa(app.ID),
	}
}
