package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	models "ngo_portal/internal/api/donation/models"
	"ngo_portal/internal/global"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubDonationService struct{}

func (stubDonationService) CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error) {
	donation.ID = primitive.NewObjectID()
	donation.ReceiptNumber = "SSF-RCP-2026-000042"
	return donation, nil
}

func newTestApp(h *DonationHandler) *fiber.App {
	app := fiber.New()
	app.Post("/api/donations", h.Create)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

// The confirmation page on the public site treats anything but a 200 as
// a failed submission, so the create endpoint must not answer 201.
func TestDonationCreate_RespondsOK(t *testing.T) {
	global.InitValidator()
	h := &DonationHandler{donationService: stubDonationService{}}
	app := newTestApp(h)

	resp := postJSON(t, app, "/api/donations",
		`{"donorName":"Asha Patil","donorEmail":"asha@example.com","amount":500}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["success"] != true {
		t.Errorf("success = %v, want true", payload["success"])
	}
	if payload["receiptNumber"] != "SSF-RCP-2026-000042" {
		t.Errorf("receiptNumber = %v", payload["receiptNumber"])
	}
	if _, ok := payload["donation"]; !ok {
		t.Error("response missing donation")
	}
	if payload["message"] == "" {
		t.Error("response missing message")
	}
}

func TestDonationCreate_RejectsInvalidBody(t *testing.T) {
	global.InitValidator()
	h := &DonationHandler{donationService: stubDonationService{}}
	app := newTestApp(h)

	resp := postJSON(t, app, "/api/donations",
		`{"donorName":"Asha Patil","donorEmail":"not-an-email","amount":-5}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}
