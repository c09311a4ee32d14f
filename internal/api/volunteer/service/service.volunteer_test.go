package services

import (
	"testing"

	baseservice "ngo_portal/internal/api/base/service"
	models "ngo_portal/internal/api/volunteer/models"
)

func TestApplyApprovalLatch_FirstApproval(t *testing.T) {
	update := baseservice.NewUpdateData()
	update.Set["status"] = models.VolunteerStatusApproved

	existing := models.Volunteer{Status: models.VolunteerStatusPending}

	fired := ApplyApprovalLatch(update, existing, "admin", 1700000000000)
	if !fired {
		t.Fatal("latch did not fire on first approval")
	}
	if update.Set["approvedAt"] != int64(1700000000000) {
		t.Errorf("approvedAt = %v, want 1700000000000", update.Set["approvedAt"])
	}
	if update.Set["approvedBy"] != "admin" {
		t.Errorf("approvedBy = %v, want admin", update.Set["approvedBy"])
	}
}

func TestApplyApprovalLatch_UnknownApprover(t *testing.T) {
	// The latch still fires without an admin identity; only the stamp
	// of who approved is skipped.
	update := baseservice.NewUpdateData()
	update.Set["status"] = models.VolunteerStatusApproved

	fired := ApplyApprovalLatch(update, models.Volunteer{}, "", 1700000000000)
	if !fired {
		t.Fatal("latch did not fire")
	}
	if _, ok := update.Set["approvedBy"]; ok {
		t.Error("approvedBy must not be written without an approver")
	}
}

func TestApplyApprovalLatch_AlreadyApproved(t *testing.T) {
	update := baseservice.NewUpdateData()
	update.Set["status"] = models.VolunteerStatusApproved

	existing := models.Volunteer{
		Status:     models.VolunteerStatusApproved,
		ApprovedAt: 1600000000000,
		ApprovedBy: "admin",
	}

	fired := ApplyApprovalLatch(update, existing, "second-admin", 1700000000000)
	if fired {
		t.Fatal("latch fired for an already approved application")
	}
	if _, ok := update.Set["approvedAt"]; ok {
		t.Error("approvedAt must not be touched when the latch does not fire")
	}
	if _, ok := update.Set["approvedBy"]; ok {
		t.Error("approvedBy must not be touched when the latch does not fire")
	}
}

func TestApplyApprovalLatch_ReApprovalKeepsOriginalStamps(t *testing.T) {
	// pending -> approved -> pending -> approved: the second approval
	// must not re-stamp approvedAt or approvedBy.
	update := baseservice.NewUpdateData()
	update.Set["status"] = models.VolunteerStatusApproved

	existing := models.Volunteer{
		Status:     models.VolunteerStatusPending,
		ApprovedAt: 1600000000000,
		ApprovedBy: "admin",
	}

	fired := ApplyApprovalLatch(update, existing, "second-admin", 1700000000000)
	if fired {
		t.Fatal("latch fired even though approvedAt was already set")
	}
}

func TestApplyApprovalLatch_OtherStatuses(t *testing.T) {
	for _, status := range []string{
		models.VolunteerStatusPending,
		models.VolunteerStatusRejected,
		models.VolunteerStatusInactive,
	} {
		update := baseservice.NewUpdateData()
		update.Set["status"] = status

		fired := ApplyApprovalLatch(update, models.Volunteer{}, "admin", 1700000000000)
		if fired {
			t.Errorf("latch fired for status %q", status)
		}
		if _, ok := update.Set["approvedAt"]; ok {
			t.Errorf("approvedAt set for status %q", status)
		}
	}
}

func TestApplyApprovalLatch_NoStatusInUpdate(t *testing.T) {
	update := baseservice.NewUpdateData()
	update.Set["availability"] = "weekends"

	fired := ApplyApprovalLatch(update, models.Volunteer{}, "admin", 1700000000000)
	if fired {
		t.Fatal("latch fired for an update without a status change")
	}
}
