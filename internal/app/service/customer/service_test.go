package customer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitdesk/memberdesk/pkg/apperr"
)

func validCreateInput() *CreateInput {
	return &CreateInput{
		Name:                "Jamie Rivera",
		Email:               "jamie@example.com",
		JoinDate:            "2025-01-01",
		PlanID:              "0194a7e2-0000-7000-8000-00000000000a",
		MembershipStartDate: "2025-01-01",
	}
}

func TestCreateInput_Validate(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name      string
		mutate    func(*CreateInput)
		wantField string
	}{
		{"valid", func(in *CreateInput) {}, ""},
		{"missing name", func(in *CreateInput) { in.Name = "" }, "name"},
		{"missing email", func(in *CreateInput) { in.Email = "" }, "email"},
		{"malformed email", func(in *CreateInput) { in.Email = "not-an-email" }, "email"},
		{"unknown gender", func(in *CreateInput) { in.Gender = "unknown" }, "gender"},
		{"missing join date", func(in *CreateInput) { in.JoinDate = "" }, "join_date"},
		{"malformed join date", func(in *CreateInput) { in.JoinDate = "Jan 1 2025" }, "join_date"},
		{"malformed birth date", func(in *CreateInput) { in.DateOfBirth = str("1990-13-40") }, "date_of_birth"},
		{"missing plan", func(in *CreateInput) { in.PlanID = "" }, "plan_id"},
		{"missing start date", func(in *CreateInput) { in.MembershipStartDate = "" }, "membership_start_date"},
		{"malformed start date", func(in *CreateInput) { in.MembershipStartDate = "2025/01/01" }, "membership_start_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
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

func TestCreateInput_ValidateParsesDates(t *testing.T) {
	str := func(s string) *string { return &s }
	in := validCreateInput()
	in.DateOfBirth = str("1990-04-15")
	in.Gender = "female"

	dates, err := in.validate()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), dates.joinDate)
	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), dates.startDate)
	require.NotNil(t, dates.dateOfBirth)
	require.Equal(t, time.Date(1990, 4, 15, 0, 0, 0, 0, time.UTC), *dates.dateOfBirth)
}
