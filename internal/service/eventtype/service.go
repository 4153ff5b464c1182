package eventtype

import "eventmarket/internal/domain"

// Service serves the static event-type catalog the booking wizard starts
// from. The set is fixed in code; there is no repository behind it.
type Service struct {
	types []domain.EventType
}

func New() *Service {
	return &Service{
		types: []domain.EventType{
			{ID: "wedding", Name: "Wedding", Description: "Ceremonies and receptions"},
			{ID: "birthday", Name: "Birthday Party", Description: "Birthdays for all ages"},
			{ID: "corporate", Name: "Corporate Event", Description: "Conferences, offsites and launches"},
			{ID: "baby-shower", Name: "Baby Shower", Description: "Showers and gender reveals"},
			{ID: "anniversary", Name: "Anniversary", Description: "Milestone celebrations"},
			{ID: "graduation", Name: "Graduation", Description: "Graduation parties"},
		},
	}
}

// List returns all event types in display order.
func (s *Service) List() []domain.EventType {
	out := make([]domain.EventType, len(s.types))
	copy(out, s.types)
	return out
}

// Get looks up one event type by id.
func (s *Service) Get(id string) (*domain.EventType, bool) {
	for _, t := range s.types {
		if t.ID == id {
			et := t
			return &et, true
		}
	}
	return nil, false
}
