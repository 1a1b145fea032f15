// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// CVUpload is the predicate function for cvupload builders.
type CVUpload func(*sql.Selector)

// Call is the predicate function for call builders.
type Call func(*sql.Selector)

// Candidate is the predicate function for candidate builders.
type Candidate func(*sql.Selector)

// CandidateReply is the predicate function for candidatereply builders.
type CandidateReply func(*sql.Selector)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// MessageTemplate is the predicate function for messagetemplate builders.
type MessageTemplate func(*sql.Selector)

// Position is the predicate function for position builders.
type Position func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)

// StatusChange is the predicate function for statuschange builders.
type StatusChange func(*sql.Selector)

// UnmatchedInbound is the predicate function for unmatchedinbound builders.
type UnmatchedInbound func(*sql.Selector)
