// Package services - Event domain.
package services

import (
	"context"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/event/models"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventService manages the events collection.
type EventService struct {
	*baseservice.BaseServiceMongoImpl[models.Event]
}

func NewEventService() *EventService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Events)
	return &EventService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Event](collection)}
}

// WithParticipantCount fills the derived participant count from the
// registration list. Whatever count a stored document may carry is
// ignored; the list length is the only source.
func WithParticipantCount(event models.Event) models.Event {
	event.CurrentParticipants = len(event.RegisteredParticipants)
	return event
}

// ListPublic returns active events, upcoming-first, with participant
// counts filled in. Soft-deleted events (isActive false) never reach
// the public site.
func (s *EventService) ListPublic(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "eventDate", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	events, err := s.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	for i := range events {
		events[i] = WithParticipantCount(events[i])
	}
	return events, nil
}
