package models

import (
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/fitdesk/memberdesk/pkg/types"
)

// Plan is a reusable membership template sold to customers. Memberships copy
// plan attributes at assignment time, so editing or deleting a plan never
// changes an existing membership.
type Plan struct {
	ID              string                      `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name            string                      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description     string                      `gorm:"column:description;type:text" json:"description"`
	Category        types.PlanCategory          `gorm:"column:category;type:varchar(32);not null;default:'standard'" json:"category"`
	DurationDays    int                         `gorm:"column:duration_days;not null" json:"duration_days"`
	OriginalPrice   float64                     `gorm:"column:original_price;type:decimal(8,2);not null" json:"original_price"`
	DiscountedPrice *float64                    `gorm:"column:discounted_price;type:decimal(8,2)" json:"discounted_price"`
	ValidFrom       *time.Time                  `gorm:"column:valid_from;default:null" json:"valid_from"`
	ValidUntil      *time.Time                  `gorm:"column:valid_until;default:null" json:"valid_until"`
	Features        datatypes.JSONSlice[string] `gorm:"column:features;type:jsonb" json:"features"`
	Benefits        datatypes.JSONSlice[string] `gorm:"column:benefits;type:jsonb" json:"benefits"`
	MaxMembers      int                         `gorm:"column:max_members;not null;default:1" json:"max_members"`
	IsPopular       bool                        `gorm:"column:is_popular;not null;default:false" json:"is_popular"`
	IsFeatured      bool                        `gorm:"column:is_featured;not null;default:false" json:"is_featured"`
	IsActive        bool                        `gorm:"column:is_active;not null;default:true" json:"is_active"`
	SortOrder       int                         `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	BadgeText       *string                     `gorm:"column:badge_text;type:varchar(50)" json:"badge_text"`
	ColorTheme      types.ColorTheme            `gorm:"column:color_theme;type:varchar(16);not null;default:'blue'" json:"color_theme"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plan"
}

// EffectivePrice is the price actually charged: the discounted price when one
// is set, otherwise the original price.
func (p *Plan) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.OriginalPrice
}

func (p *Plan) HasDiscount() bool {
	return p.DiscountedPrice != nil && *p.DiscountedPrice < p.OriginalPrice
}

func (p *Plan) DiscountAmount() float64 {
	if !p.HasDiscount() {
		return 0
	}
	return p.OriginalPrice - *p.DiscountedPrice
}

// SavingsPercentage is rounded to one decimal. Callers must ensure
// OriginalPrice > 0; the input validators enforce that on every write path.
func (p *Plan) SavingsPercentage() float64 {
	if !p.HasDiscount() {
		return 0
	}
	return math.Round((p.OriginalPrice-*p.DiscountedPrice)/p.OriginalPrice*1000) / 10
}

// IsValidAt reports whether the plan is sellable at now: active and inside
// the optional valid_from/valid_until window (bounds inclusive).
func (p *Plan) IsValidAt(now time.Time) bool {
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return false
	}
	return p.IsActive
}

// DaysUntilExpiryAt returns the signed calendar-day count from now to
// valid_until, or nil when the plan has no end bound. Positive means the
// bound is in the future.
func (p *Plan) DaysUntilExpiryAt(now time.Time) *int {
	if p.ValidUntil == nil {
		return nil
	}
	d := daysBetween(now, *p.ValidUntil)
	return &d
}

// IsExpiringSoonAt reports whether valid_until falls within the next
// windowDays calendar days (exclusive of already-expired plans).
func (p *Plan) IsExpiringSoonAt(now time.Time, windowDays int) bool {
	d := p.DaysUntilExpiryAt(now)
	if d == nil {
		return false
	}
	return *d > 0 && *d <= windowDays
}

func (p *Plan) IsGroupPlan() bool {
	return p.MaxMembers > 1
}

// FormattedDuration renders duration_days for display: "21 days" under a
// month, otherwise months rounded to one decimal.
func (p *Plan) FormattedDuration() string {
	if p.DurationDays < 30 {
		return strconv.Itoa(p.DurationDays) + " days"
	}
	months := math.Round(float64(p.DurationDays)/30*10) / 10
	s := strconv.FormatFloat(months, 'f', -1, 64) + " month"
	if months > 1 {
		s += "s"
	}
	return s
}

// CategoryColor maps the category to its display color, falling back to the
// configured color theme for unknown categories.
func (p *Plan) CategoryColor() string {
	switch p.Category {
	case types.PlanCategoryBasic:
		return "gray"
	case types.PlanCategoryStandard:
		return "blue"
	case types.PlanCategoryPremium:
		return "purple"
	case types.PlanCategoryVIP:
		return "gold"
	case types.PlanCategoryEnterprise:
		return "green"
	default:
		if p.ColorTheme != "" {
			return string(p.ColorTheme)
		}
		return "blue"
	}
}

// TypeBadge is the display label for the plan category.
func (p *Plan) TypeBadge() string {
	switch p.Category {
	case types.PlanCategoryBasic:
		return "Basic"
	case types.PlanCategoryStandard:
		return "Standard"
	case types.PlanCategoryPremium:
		return "Premium"
	case types.PlanCategoryVIP:
		return "VIP"
	case types.PlanCategoryEnterprise:
		return "Enterprise"
	default:
		s := string(p.Category)
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	}
}

// daysBetween is the calendar-day difference from a to b, ignoring the time
// of day. Both ends are normalized to midnight so day boundaries never
// produce off-by-one results from elapsed-hours division.
func daysBetween(a, b time.Time) int {
	af := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bf := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bf.Sub(af).Hours() / 24)
}
