package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/config"
	"github.com/fitdesk/memberdesk/pkg/logctx"
	"github.com/fitdesk/memberdesk/pkg/tool"
	"github.com/fitdesk/memberdesk/pkg/types"
	"github.com/fitdesk/memberdesk/pkg/validate"
)

// Service owns the plan catalog: the sellable plan templates staff maintain.
type Service struct {
	cfg *config.Config
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{cfg: cfg, db: db, log: log}
}

// PlanInput is the write payload for creating or updating a plan. Dates are
// date-only strings (YYYY-MM-DD).
type PlanInput struct {
	Name            string   `json:"name" validate:"required,max=255"`
	Description     string   `json:"description"`
	Category        string   `json:"category" validate:"required"`
	DurationDays    int      `json:"duration_days" validate:"required,min=1"`
	OriginalPrice   float64  `json:"original_price" validate:"min=0"`
	DiscountedPrice *float64 `json:"discounted_price" validate:"omitempty,min=0"`
	Features        []string `json:"features"`
	Benefits        []string `json:"benefits"`
	MaxMembers      int      `json:"max_members" validate:"required,min=1"`
	IsFeatured      bool     `json:"is_featured"`
	IsPopular       bool     `json:"is_popular"`
	BadgeText       *string  `json:"badge_text" validate:"omitempty,max=50"`
	ColorTheme      string   `json:"color_theme" validate:"required"`
	ValidFrom       *string  `json:"valid_from"`
	ValidUntil      *string  `json:"valid_until"`
	SortOrder       int      `json:"sort_order" validate:"min=0"`
	IsActive        *bool    `json:"is_active"`
}

type planDates struct {
	validFrom  *time.Time
	validUntil *time.Time
}

func (in *PlanInput) validate() (*planDates, error) {
	ve := validate.Struct(in)

	if in.Category != "" && !types.PlanCategory(in.Category).Valid() {
		ve.Add("category", "must be one of basic, standard, premium, vip, enterprise")
	}
	if in.ColorTheme != "" && !types.ColorTheme(in.ColorTheme).Valid() {
		ve.Add("color_theme", "must be one of blue, green, purple, gold, red")
	}

	var dates planDates
	if in.ValidFrom != nil && *in.ValidFrom != "" {
		t, err := time.Parse(time.DateOnly, *in.ValidFrom)
		if err != nil {
			ve.Add("valid_from", "must be a valid date")
		} else {
			dates.validFrom = &t
		}
	}
	if in.ValidUntil != nil && *in.ValidUntil != "" {
		t, err := time.Parse(time.DateOnly, *in.ValidUntil)
		if err != nil {
			ve.Add("valid_until", "must be a valid date")
		} else {
			dates.validUntil = &t
		}
	}
	if dates.validFrom != nil && dates.validUntil != nil && dates.validUntil.Before(*dates.validFrom) {
		ve.Add("valid_until", "must be on or after valid_from")
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	return &dates, nil
}

func (in *PlanInput) apply(p *models.Plan, dates *planDates) {
	p.Name = in.Name
	p.Description = in.Description
	p.Category = types.PlanCategory(in.Category)
	p.DurationDays = in.DurationDays
	p.OriginalPrice = in.OriginalPrice
	p.DiscountedPrice = in.DiscountedPrice
	p.Features = datatypes.NewJSONSlice(in.Features)
	p.Benefits = datatypes.NewJSONSlice(in.Benefits)
	p.MaxMembers = in.MaxMembers
	p.IsFeatured = in.IsFeatured
	p.IsPopular = in.IsPopular
	p.BadgeText = in.BadgeText
	p.ColorTheme = types.ColorTheme(in.ColorTheme)
	p.ValidFrom = dates.validFrom
	p.ValidUntil = dates.validUntil
	p.SortOrder = in.SortOrder
	p.IsActive = in.IsActive == nil || *in.IsActive
}

// List returns all plans in display order.
func (s *Service) List(ctx context.Context) ([]*models.Plan, error) {
	var plans []*models.Plan
	if err := s.db.WithContext(ctx).
		Order("sort_order").Order("name").
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// ListActive returns plans that are active and inside their validity window
// at now, for selection pickers.
func (s *Service) ListActive(ctx context.Context, now time.Time) ([]*models.Plan, error) {
	var plans []*models.Plan
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("valid_from IS NULL OR valid_from <= ?", now).
		Where("valid_until IS NULL OR valid_until >= ?", now).
		Order("sort_order").Order("name").
		Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list active plans: %w", err)
	}
	return plans, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("plan", id)
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return &plan, nil
}

func (s *Service) Create(ctx context.Context, in *PlanInput) (*models.Plan, error) {
	dates, err := in.validate()
	if err != nil {
		return nil, err
	}

	plan := &models.Plan{ID: tool.GenerateUUIDV7()}
	in.apply(plan, dates)

	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan created", "plan_id", plan.ID, "category", plan.Category)
	return plan, nil
}

func (s *Service) Update(ctx context.Context, id string, in *PlanInput) (*models.Plan, error) {
	dates, err := in.validate()
	if err != nil {
		return nil, err
	}

	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.apply(plan, dates)

	if err := s.db.WithContext(ctx).Save(plan).Error; err != nil {
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan updated", "plan_id", plan.ID)
	return plan, nil
}

// Delete removes a plan unconditionally. Existing memberships keep their
// snapshot and are unaffected; there is intentionally no in-use guard.
func (s *Service) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Plan{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("plan", id)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan deleted", "plan_id", id)
	return nil
}

// PlanExpiringSoonDays is the validity warning window used by dashboards.
func (s *Service) PlanExpiringSoonDays() int {
	if s.cfg != nil && s.cfg.PlanExpiringSoonDays > 0 {
		return s.cfg.PlanExpiringSoonDays
	}
	return 30
}
