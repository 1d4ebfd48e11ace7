package membership

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/config"
	"github.com/fitdesk/memberdesk/pkg/logctx"
	"github.com/fitdesk/memberdesk/pkg/tool"
	"github.com/fitdesk/memberdesk/pkg/types"
)

// Service is the membership lifecycle engine. It materializes memberships
// from plans and manages the plan-template rows the legacy data model keeps
// in the same table.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

// NewFromPlan builds the membership a customer gets when joining a plan.
// Everything price- and duration-related is copied from the plan here, once;
// the membership never reads the plan again.
func NewFromPlan(customerID string, plan *models.Plan, startDate time.Time) *models.Membership {
	endDate := startDate.AddDate(0, 0, plan.DurationDays)
	return &models.Membership{
		ID:           tool.GenerateUUIDV7(),
		CustomerID:   &customerID,
		PlanType:     string(plan.Category),
		DurationDays: plan.DurationDays,
		Price:        plan.EffectivePrice(),
		StartDate:    &startDate,
		EndDate:      &endDate,
		Status:       types.MembershipStatusActive,
		Notes: datatypes.NewJSONType(&models.PlanSnapshot{
			PlanID:      plan.ID,
			Name:        plan.Name,
			Description: plan.Description,
			Features:    plan.Features,
			Benefits:    plan.Benefits,
		}),
	}
}

// AssignWithTx creates a membership for customerID from planID inside the
// caller's transaction, so customer creation and membership assignment
// commit atomically.
func (s *Service) AssignWithTx(ctx context.Context, tx *gorm.DB, customerID, planID string, startDate time.Time) (*models.Membership, error) {
	var plan models.Plan
	if err := tx.WithContext(ctx).Where("id = ?", planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("plan", planID)
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	m := NewFromPlan(customerID, &plan, startDate)
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("membership assigned",
		"membership_id", m.ID,
		"customer_id", customerID,
		"plan_id", plan.ID,
		"plan_type", m.PlanType,
		"end_date", m.EndDate,
	)
	return m, nil
}

// Assign is the standalone variant used when the customer already exists.
func (s *Service) Assign(ctx context.Context, customerID, planID string, startDate time.Time) (*models.Membership, error) {
	var m *models.Membership
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		m, err = s.AssignWithTx(ctx, tx, customerID, planID, startDate)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// SetStatus flips the administrative status flag. It never touches dates;
// expiry is derived from end_date independently.
func (s *Service) SetStatus(ctx context.Context, id string, status types.MembershipStatus) (*models.Membership, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	if err := s.db.WithContext(ctx).Model(m).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update membership status: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("membership status updated", "membership_id", id, "status", status)
	return m, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Membership, error) {
	var m models.Membership
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("membership", id)
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return &m, nil
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

type ScanMembershipsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanMembershipsResponse struct {
	Items []*models.Membership `json:"items"`
	Total int64                `json:"total"`
}

// ScanMemberships implements paginated/admin listing with filters
func (s *Service) ScanMemberships(ctx context.Context, req *ScanMembershipsRequest) (*ScanMembershipsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Membership{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count memberships: %w", err)
	}

	var rows []*models.Membership

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	return &ScanMembershipsResponse{Items: rows, Total: total}, nil
}
