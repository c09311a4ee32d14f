package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ngo_portal/internal/api/settings/dto"
	models "ngo_portal/internal/api/settings/models"
	"ngo_portal/internal/global"

	"github.com/gofiber/fiber/v3"
)

// stubSettingsService answers the upsert with a fixed created flag so
// the handler's response can be checked without a database.
type stubSettingsService struct {
	created bool
}

func (s stubSettingsService) ListAll(ctx context.Context) ([]models.Setting, error) {
	return nil, nil
}

func (s stubSettingsService) FindByKey(ctx context.Context, key string) (models.Setting, error) {
	return models.Setting{Key: key}, nil
}

func (s stubSettingsService) UpsertByKey(ctx context.Context, input dto.SettingUpsertInput) (models.Setting, bool, error) {
	return models.Setting{Key: input.Key}, s.created, nil
}

func (s stubSettingsService) UpdateByKey(ctx context.Context, key string, input dto.SettingUpdateInput) (models.Setting, error) {
	return models.Setting{Key: key}, nil
}

func (s stubSettingsService) DeleteByKey(ctx context.Context, key string) error {
	return nil
}

func upsertMessage(t *testing.T, created bool) string {
	t.Helper()
	global.InitValidator()

	h := &SettingsHandler{settingsService: stubSettingsService{created: created}}
	app := fiber.New()
	app.Post("/api/settings", h.Upsert)

	req := httptest.NewRequest(http.MethodPost, "/api/settings",
		strings.NewReader(`{"key":"site_name","value":"Seva Sankalp Foundation"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	message, _ := payload["message"].(string)
	return message
}

// The admin panel shows the upsert message verbatim, so a first write
// and an overwrite must not read the same.
func TestUpsert_MessageDistinguishesCreateFromUpdate(t *testing.T) {
	if got := upsertMessage(t, true); got != "Setting created successfully" {
		t.Errorf("created message = %q", got)
	}
	if got := upsertMessage(t, false); got != "Setting updated successfully" {
		t.Errorf("updated message = %q", got)
	}
}
