package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-api/internal/model"
)

type fakeAuditRepo struct {
	entries     []*model.AuditLog
	lastFilters map[string]interface{}
	lastCutoff  time.Time
}

func (f *fakeAuditRepo) Create(ctx context.Context, log *model.AuditLog) error {
	f.entries = append(f.entries, log)
	return nil
}

func (f *fakeAuditRepo) List(ctx context.Context, filters map[string]interface{}) ([]*model.AuditLog, error) {
	f.lastFilters = filters
	return f.entries, nil
}

func (f *fakeAuditRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.lastCutoff = cutoff
	var kept []*model.AuditLog
	var deleted int64
	for _, e := range f.entries {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	f.entries = kept
	return deleted, nil
}

func TestLogMarshalsChangesAndMetadata(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewService(repo)

	userID := uuid.New()
	companyID := uuid.New()
	entityID := uuid.New()

	err := svc.Log(context.Background(), userID, companyID, "update_status", "appointment", entityID, &LogOptions{
		Changes:   map[string]string{"status": "confirmed"},
		Metadata:  map[string]string{"from": "pending"},
		IPAddress: "10.0.0.1",
	})

	require.NoError(t, err)
	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, userID, entry.UserID)
	assert.Equal(t, "update_status", entry.Action)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)

	var changes map[string]string
	require.NoError(t, json.Unmarshal(entry.Changes, &changes))
	assert.Equal(t, "confirmed", changes["status"])
}

func TestListPassesFilters(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewService(repo)

	userID := uuid.New()
	_, err := svc.List(context.Background(), map[string]interface{}{"user_id": userID})

	require.NoError(t, err)
	assert.Equal(t, userID, repo.lastFilters["user_id"])
}

func TestCleanupDeletesOldEntries(t *testing.T) {
	repo := &fakeAuditRepo{}
	svc := NewService(repo)

	old := &model.AuditLog{ID: uuid.New(), CreatedAt: time.Now().AddDate(0, 0, -120)}
	recent := &model.AuditLog{ID: uuid.New(), CreatedAt: time.Now()}
	repo.entries = []*model.AuditLog{old, recent}

	cutoff := time.Now().AddDate(0, 0, -90)
	deleted, err := svc.Cleanup(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Equal(t, cutoff, repo.lastCutoff)
	require.Len(t, repo.entries, 1)
	assert.Equal(t, recent.ID, repo.entries[0].ID)
}
