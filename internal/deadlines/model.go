package deadlines

import "time"

// Deadline is one entry on a case's timeline.
type Deadline struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"caseId"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Note      string    `json:"note,omitempty"`
	DueAt     time.Time `json:"dueAt"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
