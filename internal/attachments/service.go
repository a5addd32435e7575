package attachments

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"wetheparent-backend/internal/shared/metrics"
	"wetheparent-backend/internal/shared/storage/object"
	"wetheparent-backend/internal/shared/telemetry"
	"wetheparent-backend/internal/shared/util"
)

// Service orchestrates the ingest pipeline: blob write, address resolution,
// metadata insert. The two writes are not transactional with each other; the
// blob write strictly precedes the insert so a crash leaves at most an
// orphaned blob, never a row pointing at a missing blob.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Ingest validates the upload, commits the blob, then records metadata.
// Storage keys are derived deterministically from owner, case, and file name:
// re-uploading the same name to the same case overwrites the blob (last write
// wins, no versioning).
func (s *Service) Ingest(ctx context.Context, userID, caseID string, kind Kind, fileName string, size int64, r io.Reader) (Attachment, error) {
	if strings.TrimSpace(userID) == "" {
		return Attachment{}, ErrUnauthenticated
	}
	if strings.TrimSpace(caseID) == "" {
		return Attachment{}, ErrCaseRequired
	}
	// The case id becomes a key segment; a path-like value could steer the
	// key into another owner's prefix.
	caseID, err := util.SanitizeCaseID(caseID)
	if err != nil {
		return Attachment{}, ErrInvalidCaseID
	}
	if r == nil || size <= 0 {
		return Attachment{}, ErrNoFile
	}
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return Attachment{}, ErrNoFile
	}
	if kind == "" {
		kind = KindDocument
	}

	metrics.IncIngestStarted()
	start := time.Now()

	// The kind is part of the key so the two upload surfaces never share a
	// blob: last-write-wins applies within one surface only.
	storageKey := util.HashUserKey(userID) + "/" + caseID + "/" + string(kind) + "/" + sanitizedName

	written, mimeType, err := s.Store.Save(ctx, storageKey, r)
	if err != nil {
		metrics.IncIngestFailed()
		return Attachment{}, err
	}

	a := Attachment{
		ID:         uuid.NewString(),
		CaseID:     caseID,
		UserID:     userID,
		Kind:       kind,
		FileName:   sanitizedName,
		StorageKey: storageKey,
		StorageURL: s.Store.PublicURL(storageKey),
		SizeBytes:  written,
		MimeType:   mimeType,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		// The blob is already committed and stays put: there is no
		// compensating delete, only manual reconciliation.
		metrics.IncIngestFailed()
		metrics.IncOrphanedBlob()
		telemetry.Warn("ingest.orphaned_blob", map[string]any{
			"storage_key": storageKey,
			"case_id":     caseID,
			"error":       err.Error(),
		})
		return Attachment{}, err
	}

	metrics.IncIngestCompleted()
	metrics.ObserveIngestDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return a, nil
}

// List returns attachments of one kind for a case, newest first.
func (s *Service) List(ctx context.Context, userID, caseID string, kind Kind) ([]Attachment, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthenticated
	}
	if strings.TrimSpace(caseID) == "" {
		return nil, ErrCaseRequired
	}
	if kind == "" {
		kind = KindDocument
	}
	return s.Repo.ListByCase(ctx, userID, caseID, kind)
}

// Get returns one attachment owned by the caller.
func (s *Service) Get(ctx context.Context, userID, id string) (Attachment, error) {
	if strings.TrimSpace(userID) == "" {
		return Attachment{}, ErrUnauthenticated
	}
	return s.Repo.GetByID(ctx, userID, id)
}

// Update applies a partial-field patch to one attachment.
func (s *Service) Update(ctx context.Context, userID, id string, patch UpdateParams) (Attachment, error) {
	if strings.TrimSpace(userID) == "" {
		return Attachment{}, ErrUnauthenticated
	}
	if patch.FileName != nil {
		sanitized, err := util.SanitizeFileName(*patch.FileName)
		if err != nil {
			return Attachment{}, ErrEmptyPatch
		}
		patch.FileName = &sanitized
	}
	if patch.CaseID != nil {
		sanitized, err := util.SanitizeCaseID(*patch.CaseID)
		if err != nil {
			return Attachment{}, ErrInvalidCaseID
		}
		patch.CaseID = &sanitized
	}
	return s.Repo.Update(ctx, userID, id, patch)
}

// Delete removes one attachment's metadata row. The blob itself is left in
// the object store; deletion is idempotent from the caller's view.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthenticated
	}
	return s.Repo.Delete(ctx, userID, id)
}

// OpenBlob streams the stored blob for an attachment the caller owns.
func (s *Service) OpenBlob(ctx context.Context, userID, id string) (Attachment, io.ReadCloser, error) {
	a, err := s.Get(ctx, userID, id)
	if err != nil {
		return Attachment{}, nil, err
	}
	reader, err := s.Store.Open(ctx, a.StorageKey)
	if err != nil {
		return Attachment{}, nil, err
	}
	return a, reader, nil
}
