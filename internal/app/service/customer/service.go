package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fitdesk/memberdesk/internal/app/service/membership"
	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/apperr"
	"github.com/fitdesk/memberdesk/pkg/config"
	"github.com/fitdesk/memberdesk/pkg/logctx"
	"github.com/fitdesk/memberdesk/pkg/tool"
	"github.com/fitdesk/memberdesk/pkg/types"
	"github.com/fitdesk/memberdesk/pkg/validate"
)

// Service is the customer directory: it creates customers (together with
// their first membership) and resolves each customer's current active
// membership for list views.
type Service struct {
	cfg    *config.Config
	db     *gorm.DB
	log    *zap.SugaredLogger
	memSvc *membership.Service
}

func NewService(cfg *config.Config, db *gorm.DB, log *zap.SugaredLogger, memSvc *membership.Service) *Service {
	return &Service{cfg: cfg, db: db, log: log, memSvc: memSvc}
}

// CreateInput is the signup payload. Dates are date-only strings
// (YYYY-MM-DD).
type CreateInput struct {
	Name                string  `json:"name" validate:"required,max=255"`
	Email               string  `json:"email" validate:"required,email,max=255"`
	Phone               string  `json:"phone" validate:"max=20"`
	DateOfBirth         *string `json:"date_of_birth"`
	Gender              string  `json:"gender"`
	Address             string  `json:"address"`
	JoinDate            string  `json:"join_date" validate:"required"`
	PlanID              string  `json:"plan_id" validate:"required"`
	MembershipStartDate string  `json:"membership_start_date" validate:"required"`
}

type createDates struct {
	dateOfBirth *time.Time
	joinDate    time.Time
	startDate   time.Time
}

func (in *CreateInput) validate() (*createDates, error) {
	ve := validate.Struct(in)

	if in.Gender != "" && !types.Gender(in.Gender).Valid() {
		ve.Add("gender", "must be one of male, female, other")
	}

	var dates createDates
	if in.DateOfBirth != nil && *in.DateOfBirth != "" {
		t, err := time.Parse(time.DateOnly, *in.DateOfBirth)
		if err != nil {
			ve.Add("date_of_birth", "must be a valid date")
		} else {
			dates.dateOfBirth = &t
		}
	}
	if in.JoinDate != "" {
		t, err := time.Parse(time.DateOnly, in.JoinDate)
		if err != nil {
			ve.Add("join_date", "must be a valid date")
		} else {
			dates.joinDate = t
		}
	}
	if in.MembershipStartDate != "" {
		t, err := time.Parse(time.DateOnly, in.MembershipStartDate)
		if err != nil {
			ve.Add("membership_start_date", "must be a valid date")
		} else {
			dates.startDate = t
		}
	}

	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	return &dates, nil
}

// CustomerWithMembership pairs a customer with their resolved active
// membership (nil when none).
type CustomerWithMembership struct {
	*models.Customer
	ActiveMembership *models.Membership `json:"active_membership"`
}

// List returns all customers, newest first, each with their current active
// membership attached. Active candidates are fetched in one query and
// grouped in memory.
func (s *Service) List(ctx context.Context, now time.Time) ([]*CustomerWithMembership, error) {
	var customers []*models.Customer
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if len(customers) == 0 {
		return []*CustomerWithMembership{}, nil
	}

	ids := lo.Map(customers, func(c *models.Customer, _ int) string { return c.ID })
	var active []*models.Membership
	if err := s.db.WithContext(ctx).
		Where("customer_id IN ?", ids).
		Where("status = ?", types.MembershipStatusActive).
		Where("end_date > ?", now).
		Find(&active).Error; err != nil {
		return nil, fmt.Errorf("failed to load active memberships: %w", err)
	}
	byCustomer := lo.GroupBy(active, func(m *models.Membership) string { return *m.CustomerID })

	return lo.Map(customers, func(c *models.Customer, _ int) *CustomerWithMembership {
		return &CustomerWithMembership{
			Customer:         c,
			ActiveMembership: models.ActiveMembershipFrom(byCustomer[c.ID], now),
		}
	}), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer", id)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// Create stores the customer and assigns the selected plan's membership in a
// single transaction; either both rows exist afterwards or neither does.
// A duplicate email surfaces as a field error via the unique index, which is
// what makes concurrent signups safe.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*CustomerWithMembership, error) {
	dates, err := in.validate()
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		ID:          tool.GenerateUUIDV7(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: dates.dateOfBirth,
		Gender:      types.Gender(in.Gender),
		Address:     in.Address,
		JoinDate:    dates.joinDate,
	}

	var m *models.Membership
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Create(c).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.NewValidation().Add("email", "has already been taken")
			}
			return fmt.Errorf("failed to create customer: %w", err)
		}
		var err error
		m, err = s.memSvc.AssignWithTx(ctx, tx, c.ID, in.PlanID, dates.startDate)
		return err
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("customer created", "customer_id", c.ID, "membership_id", m.ID)
	return &CustomerWithMembership{Customer: c, ActiveMembership: m}, nil
}

// ActiveMembership resolves the customer's current membership, if any.
func (s *Service) ActiveMembership(ctx context.Context, customerID string, now time.Time) (*models.Membership, error) {
	var candidates []*models.Membership
	if err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Where("status = ?", types.MembershipStatusActive).
		Where("end_date > ?", now).
		Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to load memberships: %w", err)
	}
	return models.ActiveMembershipFrom(candidates, now), nil
}

func (s *Service) HasActiveMembership(ctx context.Context, customerID string, now time.Time) (bool, error) {
	m, err := s.ActiveMembership(ctx, customerID, now)
	if err != nil {
		return false, err
	}
	return m != nil, nil
}
