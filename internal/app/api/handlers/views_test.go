package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/types"
)

func TestToPlanItem_DerivedFields(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	until := now.AddDate(0, 0, 10)
	discounted := 60.0

	p := &models.Plan{
		ID:              "plan-1",
		Name:            "Standard Monthly",
		Category:        types.PlanCategoryStandard,
		DurationDays:    30,
		OriginalPrice:   90,
		DiscountedPrice: &discounted,
		MaxMembers:      2,
		IsActive:        true,
		ValidUntil:      &until,
	}

	item := toPlanItem(p, now, 30)
	require.Equal(t, 60.0, item.EffectivePrice)
	require.True(t, item.HasDiscount)
	require.Equal(t, 30.0, item.DiscountAmount)
	require.Equal(t, 33.3, item.SavingsPercentage)
	require.True(t, item.IsValid)
	require.True(t, item.IsGroupPlan)
	require.NotNil(t, item.DaysUntilExpiry)
	require.Equal(t, 10, *item.DaysUntilExpiry)
	require.True(t, item.IsExpiringSoon)
	require.Equal(t, "1 month", item.FormattedDuration)
	require.Equal(t, "blue", item.CategoryColor)
	require.Equal(t, "Standard", item.TypeBadge)
}

func TestToMembershipItem_DerivedFields(t *testing.T) {
	now := time.Date(2025, 1, 29, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 30)
	cid := "cust-1"

	m := &models.Membership{
		ID:         "mem-1",
		CustomerID: &cid,
		PlanType:   "standard",
		StartDate:  &start,
		EndDate:    &end,
		Status:     types.MembershipStatusActive,
		Notes:      datatypes.NewJSONType(&models.PlanSnapshot{Name: "Standard Monthly"}),
	}

	item := toMembershipItem(m, now)
	require.Equal(t, 2, item.RemainingDays)
	require.Equal(t, types.ExpiryStatusExpiringSoon, item.ExpiryStatus)
	require.Equal(t, "2 days left", item.RemainingTime)
	require.NotNil(t, item.Plan)
	require.Equal(t, "Standard Monthly", item.Plan.Name)

	require.Nil(t, toMembershipItem(nil, now))
}
