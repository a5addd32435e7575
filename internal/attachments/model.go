package attachments

import "time"

// Kind discriminates the two upload surfaces that share this entity.
type Kind string

const (
	KindDocument Kind = "document"
	KindEvidence Kind = "evidence"
)

// Attachment is a case-scoped uploaded file. StorageURL always references a
// blob that was committed to the object store before the row was inserted.
type Attachment struct {
	ID         string
	CaseID     string
	UserID     string
	Kind       Kind
	FileName   string
	StorageKey string
	StorageURL string
	SizeBytes  int64
	MimeType   string
	CreatedAt  time.Time
}
