package membership

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/logctx"
	"github.com/fitdesk/memberdesk/pkg/tool"
	"github.com/fitdesk/memberdesk/pkg/types"
	"github.com/fitdesk/memberdesk/pkg/validate"
)

// Plan-template rows: membership records with a null customer_id, kept for
// compatibility with the legacy data where one table served both purposes.

// TemplateInput is the write payload for plan-template rows.
type TemplateInput struct {
	Name         string   `json:"name" validate:"required,max=255"`
	Description  string   `json:"description"`
	DurationDays int      `json:"duration_days" validate:"required,min=1"`
	Price        float64  `json:"price" validate:"min=0"`
	Features     []string `json:"features"`
	IsActive     *bool    `json:"is_active"`
}

func (in *TemplateInput) status() types.MembershipStatus {
	if in.IsActive == nil || *in.IsActive {
		return types.MembershipStatusActive
	}
	return types.MembershipStatusInactive
}

func (in *TemplateInput) snapshot() datatypes.JSONType[*models.PlanSnapshot] {
	return datatypes.NewJSONType(&models.PlanSnapshot{
		Name:        in.Name,
		Description: in.Description,
		Features:    in.Features,
	})
}

// ListTemplates returns plan-template rows only, newest first.
func (s *Service) ListTemplates(ctx context.Context) ([]*models.Membership, error) {
	var rows []*models.Membership
	if err := s.db.WithContext(ctx).
		Where("customer_id IS NULL").
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list plan templates: %w", err)
	}
	return rows, nil
}

// ListActiveTemplates returns active plan-template rows ordered by price,
// for selection pickers.
func (s *Service) ListActiveTemplates(ctx context.Context) ([]*models.Membership, error) {
	var rows []*models.Membership
	if err := s.db.WithContext(ctx).
		Where("customer_id IS NULL").
		Where("status = ?", types.MembershipStatusActive).
		Order("price").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list active plan templates: %w", err)
	}
	return rows, nil
}

func (s *Service) CreateTemplate(ctx context.Context, in *TemplateInput) (*models.Membership, error) {
	if err := validate.Struct(in).ErrOrNil(); err != nil {
		return nil, err
	}

	m := &models.Membership{
		ID:           tool.GenerateUUIDV7(),
		PlanType:     types.PlanTypeTemplate,
		DurationDays: in.DurationDays,
		Price:        in.Price,
		Status:       in.status(),
		Notes:        in.snapshot(),
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to create plan template: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan template created", "membership_id", m.ID)
	return m, nil
}

func (s *Service) UpdateTemplate(ctx context.Context, id string, in *TemplateInput) (*models.Membership, error) {
	if err := validate.Struct(in).ErrOrNil(); err != nil {
		return nil, err
	}

	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	m.DurationDays = in.DurationDays
	m.Price = in.Price
	m.Status = in.status()
	m.Notes = in.snapshot()

	if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, fmt.Errorf("failed to update plan template: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan template updated", "membership_id", m.ID)
	return m, nil
}

// DeleteTemplate refuses to delete rows that are assigned to a customer.
func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if m.CustomerID != nil {
		return apperr.Conflict("cannot delete membership that is assigned to a customer")
	}
	if err := s.db.WithContext(ctx).Delete(m).Error; err != nil {
		return fmt.Errorf("failed to delete plan template: %w", err)
	}
	logctx.FromCtx(ctx, s.log).Infow("plan template deleted", "membership_id", id)
	return nil
}
