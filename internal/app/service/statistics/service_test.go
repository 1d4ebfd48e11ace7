package statistics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitdesk/memberdesk/pkg/types"
)

func TestGetFilters_DropsInapplicableFilters(t *testing.T) {
	req := &MembershipStatisticRequest{
		Filters: []*types.CommonFilter{
			{Field: "plan_type", Operator: types.CommonFilterOperatorEq, Values: []any{"premium"}},
			{Field: "created_at", Operator: types.CommonFilterOperatorGte, Values: []any{"2025-01-01"}},
		},
	}

	// plan_type applies to revenue
	got := req.GetFilters(StatisticTypeDailyRevenue)
	require.Len(t, got.Filters, 2)

	// but not to the accumulated customer series
	got = req.GetFilters(StatisticTypeDailyAccumulatedCustomerCount)
	require.Len(t, got.Filters, 1)
	require.Equal(t, "created_at", got.Filters[0].Field)
}

// Items a filter does not apply to are skipped with a nil series instead of
// being computed; every requested item must still get a key in the response.
func TestGetMembershipStatistic_ReportsEveryRequestedItem(t *testing.T) {
	svc := New(nil)
	req := &MembershipStatisticRequest{
		Filters: []*types.CommonFilter{
			{Field: "plan_type", Operator: types.CommonFilterOperatorEq, Values: []any{"premium"}},
		},
		DataItems: []*MembershipStatisticDataItem{
			{ID: StatisticTypeDailyAccumulatedCustomerCount},
			{ID: StatisticTypePlanTypeDistribution},
			{ID: StatisticTypeDailyNewCustomerCount},
		},
	}

	for i := 0; i < 200; i++ {
		res, err := svc.GetMembershipStatistic(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, res.DataItems, 3)
		require.Contains(t, res.DataItems, StatisticTypeDailyAccumulatedCustomerCount)
		require.Contains(t, res.DataItems, StatisticTypePlanTypeDistribution)
		require.Contains(t, res.DataItems, StatisticTypeDailyNewCustomerCount)
		require.Nil(t, res.DataItems[StatisticTypePlanTypeDistribution])
	}
}
