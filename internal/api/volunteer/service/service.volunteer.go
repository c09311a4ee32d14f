// Package services - Volunteer domain.
package services

import (
	"context"
	"time"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/volunteer/models"
	"ngo_portal/internal/global"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerService manages the volunteers collection.
type VolunteerService struct {
	*baseservice.BaseServiceMongoImpl[models.Volunteer]
}

func NewVolunteerService() *VolunteerService {
	collection := global.RegistryCollections.MustGet(global.ColNames.Volunteers)
	return &VolunteerService{BaseServiceMongoImpl: baseservice.NewBaseService[models.Volunteer](collection)}
}

// ApplyApprovalLatch amends an update so approvedAt and the approving
// admin are stamped the first time the status moves to approved. Both
// are one-way: later status changes, including back to pending, never
// clear them.
func ApplyApprovalLatch(update *baseservice.UpdateData, existing models.Volunteer, approver string, now int64) (latchFired bool) {
	status, ok := update.Set["status"].(string)
	if !ok {
		return false
	}
	if status == models.VolunteerStatusApproved && existing.ApprovedAt == 0 {
		update.Set["approvedAt"] = now
		if approver != "" {
			update.Set["approvedBy"] = approver
		}
		return true
	}
	return false
}

// UpdateVolunteer applies an admin update to an application, stamping
// the approval timestamp and approver when the latch fires. The
// returned bool reports whether this update was the first approval.
func (s *VolunteerService) UpdateVolunteer(ctx context.Context, id primitive.ObjectID, update *baseservice.UpdateData, approver string) (models.Volunteer, bool, error) {
	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return models.Volunteer{}, false, err
	}

	latchFired := ApplyApprovalLatch(update, existing, approver, time.Now().UnixMilli())

	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return models.Volunteer{}, false, err
	}
	return updated, latchFired, nil
}
