package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/config"
)

func validInput() *PlanInput {
	return &PlanInput{
		Name:          "Standard Monthly",
		Category:      "standard",
		DurationDays:  30,
		OriginalPrice: 49.99,
		MaxMembers:    1,
		ColorTheme:    "blue",
	}
}

func TestPlanInput_Validate(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		mutate    func(*PlanInput)
		wantField string
	}{
		{"valid", func(in *PlanInput) {}, ""},
		{"missing name", func(in *PlanInput) { in.Name = "" }, "name"},
		{"unknown category", func(in *PlanInput) { in.Category = "platinum" }, "category"},
		{"zero duration", func(in *PlanInput) { in.DurationDays = 0 }, "duration_days"},
		{"negative price", func(in *PlanInput) { in.OriginalPrice = -1 }, "original_price"},
		{"zero max members", func(in *PlanInput) { in.MaxMembers = 0 }, "max_members"},
		{"unknown color theme", func(in *PlanInput) { in.ColorTheme = "pink" }, "color_theme"},
		{"malformed valid_from", func(in *PlanInput) { in.ValidFrom = str("01/06/2025") }, "valid_from"},
		{"malformed valid_until", func(in *PlanInput) { in.ValidUntil = str("soon") }, "valid_until"},
		{
			"valid_until before valid_from",
			func(in *PlanInput) {
				in.ValidFrom = str("2025-06-30")
				in.ValidUntil = str("2025-06-01")
			},
			"valid_until",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			dates, err := in.validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				require.NotNil(t, dates)
				return
			}
			require.Error(t, err)
			ve, ok := apperr.AsValidation(err)
			require.True(t, ok)
			require.Contains(t, ve.Fields, tt.wantField)
		})
	}
}

func TestPlanInput_ValidateParsesWindow(t *testing.T) {
	str := func(s string) *string { return &s }
	in := validInput()
	in.ValidFrom = str("2025-06-01")
	in.ValidUntil = str("2025-06-30")

	dates, err := in.validate()
	require.NoError(t, err)
	require.NotNil(t, dates.validFrom)
	require.NotNil(t, dates.validUntil)
	require.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *dates.validFrom)
	require.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), *dates.validUntil)
}

func TestPlanInput_ApplyDefaultsToActive(t *testing.T) {
	in := validInput()
	dates, err := in.validate()
	require.NoError(t, err)

	var p models.Plan
	in.apply(&p, dates)
	require.True(t, p.IsActive)

	inactive := false
	in.IsActive = &inactive
	in.apply(&p, dates)
	require.False(t, p.IsActive)
}

func TestService_PlanExpiringSoonDays(t *testing.T) {
	svc := NewService(&config.Config{PlanExpiringSoonDays: 14}, nil, nil)
	require.Equal(t, 14, svc.PlanExpiringSoonDays())

	svc = NewService(&config.Config{}, nil, nil)
	require.Equal(t, 30, svc.PlanExpiringSoonDays())
}
