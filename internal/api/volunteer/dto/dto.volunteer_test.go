package dto

import (
	"testing"

	"ngo_portal/internal/global"
)

func TestVolunteerCreateInput_Age(t *testing.T) {
	global.InitValidator()

	base := VolunteerCreateInput{
		Name:  "Asha Patil",
		Email: "asha@example.com",
		Phone: "+91 98765 43210",
	}

	for _, age := range []int{0, 16, 45, 120} {
		input := base
		input.Age = age
		if err := global.Validate.Struct(input); err != nil {
			t.Errorf("age %d rejected: %v", age, err)
		}
	}

	for _, age := range []int{-1, 121} {
		input := base
		input.Age = age
		if err := global.Validate.Struct(input); err == nil {
			t.Errorf("age %d accepted", age)
		}
	}
}
