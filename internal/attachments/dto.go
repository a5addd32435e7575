package attachments

import "time"

// AttachmentResponse is the outward-facing representation of an attachment.
type AttachmentResponse struct {
	ID         string    `json:"id"`
	CaseID     string    `json:"caseId"`
	FileName   string    `json:"fileName"`
	StorageURL string    `json:"storageUrl"`
	SizeBytes  int64     `json:"sizeBytes"`
	MimeType   string    `json:"mimeType,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toResponse(a Attachment) AttachmentResponse {
	return AttachmentResponse{
		ID:         a.ID,
		CaseID:     a.CaseID,
		FileName:   a.FileName,
		StorageURL: a.StorageURL,
		SizeBytes:  a.SizeBytes,
		MimeType:   a.MimeType,
		CreatedAt:  a.CreatedAt,
	}
}

func toResponses(list []Attachment) []AttachmentResponse {
	out := make([]AttachmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toResponse(a))
	}
	return out
}
