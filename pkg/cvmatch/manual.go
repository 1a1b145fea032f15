package cvmatch

import (
	"context"
	"fmt"
	"time"

	"github.com/recruitflow/recruitflow/ent"
	"github.com/recruitflow/recruitflow/ent/application"
	"github.com/recruitflow/recruitflow/ent/cvupload"
	"github.com/recruitflow/recruitflow/ent/unmatchedinbound"
	"github.com/recruitflow/recruitflow/pkg/services"
)

// ManualAttach stores a hand-uploaded CV against an application. The file
// fans out to every awaiting-CV application of that candidate, the same way
// an inbound match would; the named application additionally gets its own
// upload row even when its status is outside the awaiting set, without a
// status change. The returned upload is the one on the named application.
func (m *Matcher) ManualAttach(ctx context.Context, applicationID int, filename string, data []byte) (*ent.CVUpload, error) {
	path, err := m.store.Save(filename, data)
	if err != nil {
		return nil, err
	}

	app, err := m.client.Application.Query().
		Where(application.IDEQ(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application %d: %w", applicationID, err)
	}

	return m.attachManual(ctx, app, path, filename, cvupload.SourceManual)
}

// ResolveUnmatched assigns a filed document to a candidate by hand, naming
// any of their applications, and closes the unmatched entry. The document
// fans out to the candidate's awaiting applications like ManualAttach.
func (m *Matcher) ResolveUnmatched(ctx context.Context, unmatchedID, applicationID int) (*ent.CVUpload, error) {
	row, err := m.client.UnmatchedInbound.Query().
		Where(
			unmatchedinbound.IDEQ(unmatchedID),
			unmatchedinbound.Resolved(false),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load unmatched inbound %d: %w", unmatchedID, err)
	}

	app, err := m.client.Application.Query().
		Where(application.IDEQ(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load application %d: %w", applicationID, err)
	}

	upload, err := m.attachManual(ctx, app, row.FilePath, row.OriginalFilename, cvupload.Source(row.Channel))
	if err != nil {
		return nil, err
	}

	if _, err := m.client.UnmatchedInbound.UpdateOne(row).
		SetResolved(true).
		SetResolvedApplicationID(applicationID).
		SetResolvedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark unmatched resolved: %w", err)
	}
	return upload, nil
}

// attachManual fans the file out like an inbound match: one upload per
// awaiting application of the anchor's candidate, each advanced to its
// CV-received state. An anchor outside the awaiting set still gets an
// upload row but keeps its status.
func (m *Matcher) attachManual(ctx context.Context, anchor *ent.Application, path, filename string, source cvupload.Source) (*ent.CVUpload, error) {
	awaiting, err := m.awaitingApps(ctx, anchor.CandidateID)
	if err != nil {
		return nil, err
	}
	targets := awaiting
	if !containsApp(awaiting, anchor.ID) {
		targets = append(targets, anchor)
	}

	tx, err := m.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	var anchorUpload *ent.CVUpload
	for _, app := range targets {
		locked, err := tx.Application.Query().
			Where(application.IDEQ(app.ID)).
			ForUpdate().
			Only(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to lock application %d: %w", app.ID, err)
		}

		upload, err := tx.CVUpload.Create().
			SetCandidateID(locked.CandidateID).
			SetApplicationID(locked.ID).
			SetFilePath(path).
			SetOriginalFilename(filename).
			SetSource(source).
			SetMatchMethod(cvupload.MatchMethodManual).
			SetMatchConfidence(cvupload.MatchConfidenceHigh).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create CV upload: %w", err)
		}
		if locked.ID == anchor.ID {
			anchorUpload = upload
		}

		// The status is re-checked on the locked row: only awaiting
		// applications advance.
		if !isAwaitingCV(locked.Status) {
			continue
		}
		if _, err := m.apps.TransitionTx(ctx, tx, locked, services.CVReceivedTarget(locked.Status), services.TransitionOptions{
			Note: "CV attached manually",
			Mutate: func(u *ent.ApplicationUpdateOne) {
				u.SetCvReceivedAt(now)
			},
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	m.apps.InvalidateCounts(ctx)
	return anchorUpload, nil
}

func containsApp(apps []*ent.Application, id int) bool {
	for _, app := range apps {
		if app.ID == id {
			return true
		}
	}
	return false
}

func isAwaitingCV(status application.Status) bool {
	for _, s := range services.AwaitingCVStatuses {
		if s == status {
			return true
		}
	}
	return false
}
