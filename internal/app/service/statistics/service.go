package statistics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitdesk/memberdesk/pkg/types"
)

// Statistic types backing the admin dashboard
type StatisticType string

const (
	// Daily counts
	StatisticTypeDailyNewCustomerCount         StatisticType = "daily_new_customer_count"
	StatisticTypeDailyNewMembershipCount       StatisticType = "daily_new_membership_count"
	StatisticTypeDailyAccumulatedCustomerCount StatisticType = "daily_accumulated_customer_count"

	// Revenue (values reported in cents)
	StatisticTypeDailyRevenue StatisticType = "daily_revenue"

	// Membership state
	StatisticTypeTotalActiveMembershipCount StatisticType = "total_active_membership_count"
	StatisticTypeExpiringSoonCount          StatisticType = "expiring_soon_count"
	StatisticTypePlanTypeDistribution       StatisticType = "plan_type_distribution"
)

// Filter types supported by certain statistic types
type MembershipStatisticFilterType string

const (
	MembershipStatisticFilterTypePlanType MembershipStatisticFilterType = "plan_type"
)

var filterTypes = []MembershipStatisticFilterType{
	MembershipStatisticFilterTypePlanType,
}

var validFilters = map[MembershipStatisticFilterType][]StatisticType{
	MembershipStatisticFilterTypePlanType: {
		StatisticTypeDailyNewMembershipCount,
		StatisticTypeDailyRevenue,
		StatisticTypeTotalActiveMembershipCount,
		StatisticTypeExpiringSoonCount,
	},
}

type MembershipStatisticDataItem struct {
	ID StatisticType `json:"id"`
}

type MembershipStatisticRequest struct {
	Filters   []*types.CommonFilter          `json:"filters"`
	DataItems []*MembershipStatisticDataItem `json:"data_items"`
}

func (f *MembershipStatisticRequest) GetFilters(statisticType StatisticType) *MembershipStatisticRequest {
	if f == nil || len(f.Filters) == 0 {
		return f
	}
	var result MembershipStatisticRequest
	for _, filter := range f.Filters {
		if statisticTypes, ok := validFilters[MembershipStatisticFilterType(filter.Field)]; ok {
			if lo.Contains(statisticTypes, statisticType) {
				result.Filters = append(result.Filters, filter)
			}
		} else {
			result.Filters = append(result.Filters, filter)
		}
	}
	return &result
}

// Build composes a WHERE clause based on provided filters.
func (f *MembershipStatisticRequest) Build(builder clause.Builder) {
	if len(f.Filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	for i, filter := range f.Filters {
		if i > 0 {
			builder.WriteString(" AND ")
		}
		filter.Build(builder)
	}
}

type MembershipStatisticResponseDataItem struct {
	Date  string `json:"date"`
	Label string `json:"label,omitempty"`
	Value int64  `json:"value"`
}

type MembershipStatisticResponse struct {
	DataItems map[StatisticType][]MembershipStatisticResponseDataItem `json:"data_items"`
}

// Service provides dashboard statistics
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) getDailyNewCustomerCount(ctx context.Context, request *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table("customer").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, count(*) as value").
		Where(clause.Where{Exprs: []clause.Expression{request.GetFilters(StatisticTypeDailyNewCustomerCount)}}).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyNewMembershipCount(ctx context.Context, request *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table("membership").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, count(*) as value").
		Where("customer_id IS NOT NULL").
		Where(clause.Where{Exprs: []clause.Expression{request.GetFilters(StatisticTypeDailyNewMembershipCount)}}).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("date")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// getDailyRevenue sums membership prices per day; value is cents so the
// response stays integral.
func (s *Service) getDailyRevenue(ctx context.Context, request *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table("membership").
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, CAST(ROUND(SUM(price) * 100) AS BIGINT) as value").
		Where("customer_id IS NOT NULL").
		Where(clause.Where{Exprs: []clause.Expression{request.GetFilters(StatisticTypeDailyRevenue)}}).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true})
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getTotalActiveMembershipCount(ctx context.Context, request *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table("membership").
		Select("count(*) as value").
		Where("customer_id IS NOT NULL").
		Where(clause.Where{Exprs: []clause.Expression{request.GetFilters(StatisticTypeTotalActiveMembershipCount)}}).
		Where("status = ?", types.MembershipStatusActive).
		Where("end_date > ?", time.Now())
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getExpiringSoonCount(ctx context.Context, request *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	now := time.Now()
	q := s.db.WithContext(ctx).Table("membership").
		Select("count(*) as value").
		Where("customer_id IS NOT NULL").
		Where(clause.Where{Exprs: []clause.Expression{request.GetFilters(StatisticTypeExpiringSoonCount)}}).
		Where("status = ?", types.MembershipStatusActive).
		Where("end_date > ?", now).
		Where("end_date <= ?", now.AddDate(0, 0, 7))
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getPlanTypeDistribution(ctx context.Context, _ *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	q := s.db.WithContext(ctx).Table("membership").
		Select("plan_type as label, count(*) as value").
		Where("customer_id IS NOT NULL").
		Group("plan_type").
		Order("value desc")
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getDailyAccumulatedCustomerCount(ctx context.Context, _ *MembershipStatisticRequest) ([]MembershipStatisticResponseDataItem, error) {
	var results []MembershipStatisticResponseDataItem
	err := s.db.WithContext(ctx).Raw(`
WITH min_max_dates AS (
    SELECT MIN(DATE(created_at)) as min_date, MAX(DATE(created_at)) as max_date FROM customer
),
distinct_dates AS (
    SELECT generate_series(min_date, max_date, '1 day'::interval) as date FROM min_max_dates
),
customer_date AS (
    SELECT id, DATE(created_at) as date FROM customer
)
SELECT TO_CHAR(d.date, 'YYYY-MM-DD') as date, COUNT(DISTINCT c.id) as value
FROM distinct_dates d
LEFT JOIN customer_date c ON c.date <= d.date
GROUP BY d.date
ORDER BY d.date DESC
`).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Service) getMembershipStatistic(ctx context.Context, request *MembershipStatisticRequest, dataItem *MembershipStatisticDataItem) ([]MembershipStatisticResponseDataItem, error) {
	switch dataItem.ID {
	case StatisticTypeDailyNewCustomerCount:
		return s.getDailyNewCustomerCount(ctx, request)
	case StatisticTypeDailyNewMembershipCount:
		return s.getDailyNewMembershipCount(ctx, request)
	case StatisticTypeDailyAccumulatedCustomerCount:
		return s.getDailyAccumulatedCustomerCount(ctx, request)
	case StatisticTypeDailyRevenue:
		return s.getDailyRevenue(ctx, request)
	case StatisticTypeTotalActiveMembershipCount:
		return s.getTotalActiveMembershipCount(ctx, request)
	case StatisticTypeExpiringSoonCount:
		return s.getExpiringSoonCount(ctx, request)
	case StatisticTypePlanTypeDistribution:
		return s.getPlanTypeDistribution(ctx, request)
	default:
		return nil, fmt.Errorf("invalid data item id: %s", dataItem.ID)
	}
}

func (s *Service) GetMembershipStatistic(ctx context.Context, request *MembershipStatisticRequest) (*MembershipStatisticResponse, error) {
	var wg sync.WaitGroup
	errChan := make(chan error, len(request.DataItems))
	resChan := make(chan *lo.Entry[StatisticType, []MembershipStatisticResponseDataItem], len(request.DataItems))

	for _, item := range request.DataItems {
		wg.Add(1)
		go func(di *MembershipStatisticDataItem) {
			defer wg.Done()
			// check filter applicability
			for _, filter := range request.Filters {
				ft := MembershipStatisticFilterType(filter.Field)
				if lo.Contains(filterTypes, ft) && !lo.Contains(validFilters[ft], di.ID) {
					resChan <- &lo.Entry[StatisticType, []MembershipStatisticResponseDataItem]{Key: di.ID, Value: nil}
					return
				}
			}
			res, err := s.getMembershipStatistic(ctx, request, di)
			if err != nil {
				errChan <- err
				return
			}
			resChan <- &lo.Entry[StatisticType, []MembershipStatisticResponseDataItem]{Key: di.ID, Value: res}
		}(item)
	}

	go func() { wg.Wait(); close(errChan); close(resChan) }()

	// Drain every produced result before looking at errors; selecting over
	// both channels can consume the errChan close and drop a result.
	results := make(map[StatisticType][]MembershipStatisticResponseDataItem)
	for entry := range resChan {
		results[entry.Key] = entry.Value
	}
	if err := <-errChan; err != nil {
		return nil, err
	}
	return &MembershipStatisticResponse{DataItems: results}, nil
}
