package router

import (
	"testing"
)

// The route set is part of the public contract: submission stays open,
// everything else needs an admin token.
func TestDonationConfig(t *testing.T) {
	if !donationConfig.Create {
		t.Error("public submission route missing")
	}
	if donationConfig.CreateAuth {
		t.Error("public submission must not require auth")
	}

	if !donationConfig.Update || !donationConfig.UpdateAuth {
		t.Error("admin status-correction PUT must be registered behind auth")
	}
	if !donationConfig.List || !donationConfig.ListAuth {
		t.Error("listing must be registered behind auth")
	}
	if !donationConfig.Delete || !donationConfig.DeleteAuth {
		t.Error("delete must be registered behind auth")
	}
	if donationConfig.GetById {
		t.Error("donations expose no public by-id read")
	}
}
