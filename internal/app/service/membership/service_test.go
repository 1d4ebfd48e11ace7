package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/types"
)

func TestNewFromPlan_CopiesPlanStateOnce(t *testing.T) {
	discounted := 79.99
	plan := &models.Plan{
		ID:              "0194a7e2-0000-7000-8000-00000000000a",
		Name:            "Premium Quarterly",
		Description:     "Full access",
		Category:        types.PlanCategoryPremium,
		DurationDays:    90,
		OriginalPrice:   99.99,
		DiscountedPrice: &discounted,
		Features:        datatypes.NewJSONSlice([]string{"pool", "sauna"}),
		Benefits:        datatypes.NewJSONSlice([]string{"guest passes"}),
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m := NewFromPlan("cust-1", plan, start)

	require.NotEmpty(t, m.ID)
	require.NotNil(t, m.CustomerID)
	require.Equal(t, "cust-1", *m.CustomerID)
	require.Equal(t, "premium", m.PlanType)
	require.Equal(t, 90, m.DurationDays)
	require.Equal(t, 79.99, m.Price)
	require.Equal(t, types.MembershipStatusActive, m.Status)
	require.NotNil(t, m.StartDate)
	require.Equal(t, start, *m.StartDate)
	require.NotNil(t, m.EndDate)
	require.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *m.EndDate)

	snap := m.GetPlanSnapshot()
	require.NotNil(t, snap)
	require.Equal(t, plan.ID, snap.PlanID)
	require.Equal(t, "Premium Quarterly", snap.Name)
	require.Equal(t, "Full access", snap.Description)
	require.Equal(t, []string{"pool", "sauna"}, snap.Features)
	require.Equal(t, []string{"guest passes"}, snap.Benefits)
}

func TestNewFromPlan_EndDateUsesCalendarDays(t *testing.T) {
	plan := &models.Plan{DurationDays: 30, OriginalPrice: 49}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	m := NewFromPlan("cust-1", plan, start)

	require.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *m.EndDate)
	// without a discount the original price is charged
	require.Equal(t, 49.0, m.Price)
}

func TestTemplateInput_Status(t *testing.T) {
	active := true
	inactive := false

	require.Equal(t, types.MembershipStatusActive, (&TemplateInput{}).status())
	require.Equal(t, types.MembershipStatusActive, (&TemplateInput{IsActive: &active}).status())
	require.Equal(t, types.MembershipStatusInactive, (&TemplateInput{IsActive: &inactive}).status())
}

func TestTemplateInput_Snapshot(t *testing.T) {
	in := &TemplateInput{
		Name:        "Monthly",
		Description: "Basic gym access",
		Features:    []string{"gym"},
	}
	snap := in.snapshot().Data()
	require.NotNil(t, snap)
	require.Empty(t, snap.PlanID)
	require.Equal(t, "Monthly", snap.Name)
	require.Equal(t, "Basic gym access", snap.Description)
	require.Equal(t, []string{"gym"}, snap.Features)
}
