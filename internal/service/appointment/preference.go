package appointment

import (
	"github.com/google/uuid"

	"github.com/salonhub/booking-api/internal/model"
)

// PreferenceResolution partitions a company roster by a booking's ranked
// staff preferences.
type PreferenceResolution struct {
	Preferred []*model.Staff
	Other     []*model.Staff
}

// ResolvePreferences splits the roster into staff the booking user asked for
// and everyone else, both in roster order. Preference ids that no longer
// resolve to a roster entry are dropped silently: preference lists are not
// cleaned up when staff leave, so stale ids are expected and never an error.
func ResolvePreferences(roster []*model.Staff, prefs []uuid.UUID) PreferenceResolution {
	wanted := make(map[uuid.UUID]bool, len(prefs))
	for _, id := range prefs {
		wanted[id] = true
	}

	res := PreferenceResolution{
		Preferred: make([]*model.Staff, 0, len(prefs)),
		Other:     make([]*model.Staff, 0, len(roster)),
	}
	for _, st := range roster {
		if wanted[st.ID] {
			res.Preferred = append(res.Preferred, st)
		} else {
			res.Other = append(res.Other, st)
		}
	}
	return res
}

// SuggestStaff picks a default staff member for the assignment form. An
// explicit current assignment that still resolves wins; otherwise the first
// preference that resolves; otherwise nil.
func SuggestStaff(roster []*model.Staff, prefs []uuid.UUID, currentStaffID *uuid.UUID) *model.Staff {
	byID := make(map[uuid.UUID]*model.Staff, len(roster))
	for _, st := range roster {
		byID[st.ID] = st
	}

	if currentStaffID != nil {
		if st, ok := byID[*currentStaffID]; ok {
			return st
		}
	}
	for _, id := range prefs {
		if st, ok := byID[id]; ok {
			return st
		}
	}
	return nil
}
