package dto

import (
	"testing"

	"ngo_portal/internal/global"
)

func TestPostCreateInput_TypeEnum(t *testing.T) {
	global.InitValidator()

	base := PostCreateInput{Title: "Winter drive", Content: "Collection starts next week."}

	for _, postType := range []string{"notice", "blog", "announcement", ""} {
		input := base
		input.Type = postType
		if err := global.Validate.Struct(input); err != nil {
			t.Errorf("type %q rejected: %v", postType, err)
		}
	}

	input := base
	input.Type = "journal"
	if err := global.Validate.Struct(input); err == nil {
		t.Error("unknown post type accepted")
	}
}

func TestDocumentUpdateInput_AllFieldsOptional(t *testing.T) {
	global.InitValidator()

	if err := global.Validate.Struct(DocumentUpdateInput{}); err != nil {
		t.Errorf("empty update rejected: %v", err)
	}
}
