package dto

import (
	"testing"

	"ngo_portal/internal/global"
)

func TestGalleryCreateInput_TypeEnum(t *testing.T) {
	global.InitValidator()

	base := GalleryCreateInput{
		Title:    "Health camp 2025",
		ImageUrl: "https://example.org/camp.jpg",
	}

	for _, mediaType := range []string{"photo", "video", ""} {
		input := base
		input.Type = mediaType
		if err := global.Validate.Struct(input); err != nil {
			t.Errorf("type %q rejected: %v", mediaType, err)
		}
	}

	input := base
	input.Type = "audio"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("unknown gallery type accepted")
	}
}

func TestEventUpdateInput_ParticipantIDs(t *testing.T) {
	global.InitValidator()

	input := EventUpdateInput{
		RegisteredParticipants: []string{"652fe1a2b3c4d5e6f7a8b9c0"},
	}
	if err := global.Validate.Struct(input); err != nil {
		t.Errorf("valid hex id rejected: %v", err)
	}

	input.RegisteredParticipants = []string{"not-an-object-id"}
	if err := global.Validate.Struct(input); err == nil {
		t.Error("malformed participant id accepted")
	}

	input.RegisteredParticipants = nil
	input.Status = "finished"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("unknown status accepted")
	}
}
