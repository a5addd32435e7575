package cases

import "time"

// Case is a juvenile dependency case owned by exactly one user. Rows are
// immutable after creation; the relational store is the only authoritative
// copy.
type Case struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	CaseNumber string    `json:"caseNumber,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
