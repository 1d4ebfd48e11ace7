package handlers

import (
	"time"

	"github.com/fitdesk/memberdesk/internal/models"
	"github.com/fitdesk/memberdesk/pkg/types"
)

// PlanItem is the API view of a plan with the derived pricing and validity
// fields list pages need.
type PlanItem struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description"`
	Category          string           `json:"category"`
	DurationDays      int              `json:"duration_days"`
	FormattedDuration string           `json:"formatted_duration"`
	OriginalPrice     float64          `json:"original_price"`
	DiscountedPrice   *float64         `json:"discounted_price"`
	EffectivePrice    float64          `json:"effective_price"`
	HasDiscount       bool             `json:"has_discount"`
	DiscountAmount    float64          `json:"discount_amount"`
	SavingsPercentage float64          `json:"savings_percentage"`
	Features          []string         `json:"features"`
	Benefits          []string         `json:"benefits"`
	MaxMembers        int              `json:"max_members"`
	IsGroupPlan       bool             `json:"is_group_plan"`
	IsPopular         bool             `json:"is_popular"`
	IsFeatured        bool             `json:"is_featured"`
	IsActive          bool             `json:"is_active"`
	IsValid           bool             `json:"is_valid"`
	ValidFrom         *time.Time       `json:"valid_from"`
	ValidUntil        *time.Time       `json:"valid_until"`
	DaysUntilExpiry   *int             `json:"days_until_expiry"`
	IsExpiringSoon    bool             `json:"is_expiring_soon"`
	SortOrder         int              `json:"sort_order"`
	BadgeText         *string          `json:"badge_text"`
	ColorTheme        types.ColorTheme `json:"color_theme"`
	CategoryColor     string           `json:"category_color"`
	TypeBadge         string           `json:"type_badge"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func toPlanItem(p *models.Plan, now time.Time, expiringSoonDays int) *PlanItem {
	return &PlanItem{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          string(p.Category),
		DurationDays:      p.DurationDays,
		FormattedDuration: p.FormattedDuration(),
		OriginalPrice:     p.OriginalPrice,
		DiscountedPrice:   p.DiscountedPrice,
		EffectivePrice:    p.EffectivePrice(),
		HasDiscount:       p.HasDiscount(),
		DiscountAmount:    p.DiscountAmount(),
		SavingsPercentage: p.SavingsPercentage(),
		Features:          p.Features,
		Benefits:          p.Benefits,
		MaxMembers:        p.MaxMembers,
		IsGroupPlan:       p.IsGroupPlan(),
		IsPopular:         p.IsPopular,
		IsFeatured:        p.IsFeatured,
		IsActive:          p.IsActive,
		IsValid:           p.IsValidAt(now),
		ValidFrom:         p.ValidFrom,
		ValidUntil:        p.ValidUntil,
		DaysUntilExpiry:   p.DaysUntilExpiryAt(now),
		IsExpiringSoon:    p.IsExpiringSoonAt(now, expiringSoonDays),
		SortOrder:         p.SortOrder,
		BadgeText:         p.BadgeText,
		ColorTheme:        p.ColorTheme,
		CategoryColor:     p.CategoryColor(),
		TypeBadge:         p.TypeBadge(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

// MembershipItem is the API view of a membership row with derived expiry
// fields. Template rows (no customer) report the zero expiry values.
type MembershipItem struct {
	ID            string                 `json:"id"`
	CustomerID    *string                `json:"customer_id"`
	PlanType      string                 `json:"plan_type"`
	DurationDays  int                    `json:"duration_days"`
	Price         float64                `json:"price"`
	StartDate     *time.Time             `json:"start_date"`
	EndDate       *time.Time             `json:"end_date"`
	Status        types.MembershipStatus `json:"status"`
	Plan          *models.PlanSnapshot   `json:"plan"`
	RemainingDays int                    `json:"remaining_days"`
	ExpiryStatus  types.ExpiryStatus     `json:"expiry_status"`
	RemainingTime string                 `json:"remaining_time"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func toMembershipItem(m *models.Membership, now time.Time) *MembershipItem {
	if m == nil {
		return nil
	}
	return &MembershipItem{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		PlanType:      m.PlanType,
		DurationDays:  m.DurationDays,
		Price:         m.Price,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Status:        m.Status,
		Plan:          m.GetPlanSnapshot(),
		RemainingDays: m.RemainingDaysAt(now),
		ExpiryStatus:  m.ExpiryStatusAt(now),
		RemainingTime: m.RemainingTimeFormattedAt(now),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CustomerItem is the API view of a customer with the resolved active
// membership attached.
type CustomerItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	DateOfBirth      *time.Time      `json:"date_of_birth"`
	Gender           types.Gender    `json:"gender"`
	Address          string          `json:"address"`
	JoinDate         time.Time       `json:"join_date"`
	ActiveMembership *MembershipItem `json:"active_membership"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func toCustomerItem(c *models.Customer, active *models.Membership, now time.Time) *CustomerItem {
	return &CustomerItem{
		ID:               c.ID,
		Name:             c.Name,
		Email:            c.Email,
		Phone:            c.Phone,
		DateOfBirth:      c.DateOfBirth,
		Gender:           c.Gender,
		Address:          c.Address,
		JoinDate:         c.JoinDate,
		ActiveMembership: toMembershipItem(active, now),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
