package appointment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonhub/booking-api/internal/model"
)

func rosterOf(ids ...uuid.UUID) []*model.Staff {
	roster := make([]*model.Staff, len(ids))
	for i, id := range ids {
		roster[i] = &model.Staff{
			Base:   model.Base{ID: id},
			Status: model.StaffStatusActive,
		}
	}
	return roster
}

func TestResolvePreferencesPartition(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	stale := uuid.New()
	roster := rosterOf(a, b, c)

	res := ResolvePreferences(roster, []uuid.UUID{c, stale})

	require.Len(t, res.Preferred, 1)
	assert.Equal(t, c, res.Preferred[0].ID)
	require.Len(t, res.Other, 2)
	assert.Equal(t, a, res.Other[0].ID)
	assert.Equal(t, b, res.Other[1].ID)
}

func TestResolvePreferencesInvariants(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	roster := rosterOf(a, b, c, d)
	prefs := []uuid.UUID{d, b}

	res := ResolvePreferences(roster, prefs)

	// Union covers the roster, partitions are disjoint.
	assert.Equal(t, len(roster), len(res.Preferred)+len(res.Other))
	seen := make(map[uuid.UUID]bool)
	for _, st := range res.Preferred {
		seen[st.ID] = true
	}
	for _, st := range res.Other {
		assert.False(t, seen[st.ID], "staff %s in both partitions", st.ID)
	}

	// Roster order is preserved within each partition.
	assert.Equal(t, []uuid.UUID{b, d}, []uuid.UUID{res.Preferred[0].ID, res.Preferred[1].ID})
	assert.Equal(t, []uuid.UUID{a, c}, []uuid.UUID{res.Other[0].ID, res.Other[1].ID})
}

func TestResolvePreferencesAllStale(t *testing.T) {
	roster := rosterOf(uuid.New(), uuid.New())

	res := ResolvePreferences(roster, []uuid.UUID{uuid.New(), uuid.New(), uuid.New()})

	assert.Empty(t, res.Preferred)
	assert.Len(t, res.Other, 2)
}

func TestResolvePreferencesEmptyInputs(t *testing.T) {
	res := ResolvePreferences(nil, nil)
	assert.Empty(t, res.Preferred)
	assert.Empty(t, res.Other)

	a := uuid.New()
	res = ResolvePreferences(rosterOf(a), nil)
	assert.Empty(t, res.Preferred)
	assert.Len(t, res.Other, 1)
}

func TestSuggestStaff(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	roster := rosterOf(a, b, c)

	// Explicit assignment that still resolves wins over preferences.
	got := SuggestStaff(roster, []uuid.UUID{b}, &c)
	require.NotNil(t, got)
	assert.Equal(t, c, got.ID)

	// Stale explicit assignment falls back to the first resolving preference.
	stale := uuid.New()
	got = SuggestStaff(roster, []uuid.UUID{stale, b}, &stale)
	require.NotNil(t, got)
	assert.Equal(t, b, got.ID)

	// Nothing resolves.
	got = SuggestStaff(roster, []uuid.UUID{stale}, nil)
	assert.Nil(t, got)

	got = SuggestStaff(nil, []uuid.UUID{a}, &a)
	assert.Nil(t, got)
}
