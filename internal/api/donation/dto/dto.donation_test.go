package dto

import (
	"testing"

	"ngo_portal/internal/global"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonationCreateInput_Validation(t *testing.T) {
	global.InitValidator()

	valid := DonationCreateInput{
		DonorName:  "Priya Sharma",
		DonorEmail: "priya@example.com",
		Amount:     500,
	}
	require.NoError(t, global.Validate.Struct(valid))

	t.Run("missing required fields", func(t *testing.T) {
		assert.Error(t, global.Validate.Struct(DonationCreateInput{DonorEmail: "a@b.com", Amount: 10}))
		assert.Error(t, global.Validate.Struct(DonationCreateInput{DonorName: "A", Amount: 10}))
		assert.Error(t, global.Validate.Struct(DonationCreateInput{DonorName: "A", DonorEmail: "a@b.com"}))
	})

	t.Run("amount must be positive", func(t *testing.T) {
		input := valid
		input.Amount = -5
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("bad email", func(t *testing.T) {
		input := valid
		input.DonorEmail = "not-an-email"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("pan number format", func(t *testing.T) {
		input := valid
		input.PanNumber = "ABCDE1234F"
		assert.NoError(t, global.Validate.Struct(input))

		input.PanNumber = "too-short"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("script injection in name", func(t *testing.T) {
		input := valid
		input.DonorName = "<script>alert(1)</script>"
		assert.Error(t, global.Validate.Struct(input))
	})

	t.Run("status outside the allowed set", func(t *testing.T) {
		input := valid
		input.Status = "Archived"
		assert.Error(t, global.Validate.Struct(input))
	})
}

func TestDonationUpdateInput_Validation(t *testing.T) {
	global.InitValidator()

	assert.NoError(t, global.Validate.Struct(DonationUpdateInput{}))
	assert.NoError(t, global.Validate.Struct(DonationUpdateInput{Status: "Refunded"}))
	assert.Error(t, global.Validate.Struct(DonationUpdateInput{Status: "Cancelled"}))
}
