package models

import (
	"math"
	"strconv"
	"time"

	"gorm.io/datatypes"

	"github.com/fitdesk/memberdesk/pkg/types"
)

// PlanSnapshot is the plan state captured when a membership is assigned.
// It is written once and survives later plan edits and plan deletion.
type PlanSnapshot struct {
	PlanID      string   `json:"plan_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Benefits    []string `json:"benefits,omitempty"`
}

// Membership is either a customer's purchased plan instance (customer_id set)
// or a reusable plan-template row (customer_id null). Price, duration and the
// notes snapshot are fixed at creation; only the administrative status is
// ever updated.
type Membership struct {
	ID           string                             `gorm:"column:id;type:uuid;primary_key" json:"id"`
	CustomerID   *string                            `gorm:"column:customer_id;type:uuid;index;default:null" json:"customer_id"`
	PlanType     string                             `gorm:"column:plan_type;type:varchar(32);not null" json:"plan_type"`
	DurationDays int                                `gorm:"column:duration_days;not null" json:"duration_days"`
	Price        float64                            `gorm:"column:price;type:decimal(8,2);not null" json:"price"`
	StartDate    *time.Time                         `gorm:"column:start_date;default:null" json:"start_date"`
	EndDate      *time.Time                         `gorm:"column:end_date;default:null;index" json:"end_date"`
	Status       types.MembershipStatus             `gorm:"column:status;type:varchar(16);not null;default:'active'" json:"status"`
	Notes        datatypes.JSONType[*PlanSnapshot]  `gorm:"column:notes;type:jsonb;default:'{}'" json:"notes"`
	CreatedAt    time.Time                          `json:"created_at"`
	UpdatedAt    time.Time                          `json:"updated_at"`
}

func (Membership) TableName() string {
	return "membership"
}

func (m *Membership) IsTemplate() bool {
	return m != nil && m.CustomerID == nil
}

func (m *Membership) GetPlanSnapshot() *PlanSnapshot {
	if m == nil {
		return nil
	}
	return m.Notes.Data()
}

func (m *Membership) IsExpiredAt(now time.Time) bool {
	return m.EndDate != nil && now.After(*m.EndDate)
}

// IsActiveAt combines the administrative flag with date-based expiry.
func (m *Membership) IsActiveAt(now time.Time) bool {
	return m.Status == types.MembershipStatusActive && !m.IsExpiredAt(now)
}

// RemainingDaysAt is the calendar-day count to end_date, clamped to 0 once
// the membership is past its end.
func (m *Membership) RemainingDaysAt(now time.Time) int {
	if m.EndDate == nil || m.IsExpiredAt(now) {
		return 0
	}
	return daysBetween(now, *m.EndDate)
}

// ExpiryStatusAt classifies the membership by remaining days only. The
// administrative status is deliberately ignored here; a row marked inactive
// still reports its temporal status.
func (m *Membership) ExpiryStatusAt(now time.Time) types.ExpiryStatus {
	remaining := m.RemainingDaysAt(now)
	switch {
	case remaining <= 0:
		return types.ExpiryStatusExpired
	case remaining <= 7:
		return types.ExpiryStatusExpiringSoon
	default:
		return types.ExpiryStatusActive
	}
}

// RemainingTimeFormattedAt renders the remaining time for list views.
func (m *Membership) RemainingTimeFormattedAt(now time.Time) string {
	remaining := m.RemainingDaysAt(now)
	if remaining <= 0 {
		return "Expired"
	}
	if remaining < 30 {
		return strconv.Itoa(remaining) + " days left"
	}
	months := int(math.Floor(float64(remaining) / 30))
	s := strconv.Itoa(months) + " month"
	if months > 1 {
		s += "s"
	}
	return s + " left"
}

// ActiveMembershipFrom picks the customer's current membership from a set of
// rows: status active and end_date in the future. When several match, the
// latest start_date wins, then the larger id, so the selection is
// deterministic.
func ActiveMembershipFrom(memberships []*Membership, now time.Time) *Membership {
	var best *Membership
	for _, m := range memberships {
		if m.Status != types.MembershipStatusActive || m.EndDate == nil || !m.EndDate.After(now) {
			continue
		}
		if best == nil {
			best = m
			continue
		}
		switch {
		case m.StartDate == nil:
		case best.StartDate == nil, m.StartDate.After(*best.StartDate):
			best = m
		case m.StartDate.Equal(*best.StartDate) && m.ID > best.ID:
			best = m
		}
	}
	return best
}
