// Package dto - Settings domain.
package dto

// SettingUpsertInput is the body of POST /api/settings. The POST is an
// upsert by key: it creates the setting with defaults or updates the
// existing one.
type SettingUpsertInput struct {
	Key         string      `json:"key" validate:"required,max=100"`
	Value       interface{} `json:"value"`
	Description string      `json:"description" validate:"omitempty,max=500,no_xss"`
	Category    string      `json:"category" validate:"omitempty,max=50,no_xss"`
}

// SettingUpdateInput is the body of PUT /api/settings/:key, which only
// updates an existing setting and 404s otherwise.
type SettingUpdateInput struct {
	Value       interface{} `json:"value"`
	Description string      `json:"description" validate:"omitempty,max=500,no_xss"`
	Category    string      `json:"category" validate:"omitempty,max=50,no_xss"`
}
