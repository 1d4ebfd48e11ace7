package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitdesk/memberdesk/pkg/types"
)

func tp(t time.Time) *time.Time { return &t }

func TestMembership_RemainingDaysAt(t *testing.T) {
	now := time.Date(2025, 1, 29, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want int
	}{
		{"no end date", nil, 0},
		{"two days left", tp(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)), 2},
		{"ends today", tp(time.Date(2025, 1, 29, 23, 59, 0, 0, time.UTC)), 0},
		{"expired", tp(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Membership{Status: types.MembershipStatusActive, EndDate: tt.end}
			require.Equal(t, tt.want, m.RemainingDaysAt(now))
		})
	}
}

func TestMembership_ExpiryStatusAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want types.ExpiryStatus
	}{
		{"no end date", nil, types.ExpiryStatusExpired},
		{"expired", tp(now.AddDate(0, 0, -1)), types.ExpiryStatusExpired},
		{"one day left", tp(now.AddDate(0, 0, 1)), types.ExpiryStatusExpiringSoon},
		{"seven days left", tp(now.AddDate(0, 0, 7)), types.ExpiryStatusExpiringSoon},
		{"eight days left", tp(now.AddDate(0, 0, 8)), types.ExpiryStatusActive},
		{"far out", tp(now.AddDate(0, 6, 0)), types.ExpiryStatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Membership{Status: types.MembershipStatusActive, EndDate: tt.end}
			require.Equal(t, tt.want, m.ExpiryStatusAt(now))
		})
	}
}

// The administrative status and the temporal status are independent axes:
// a row flipped to inactive keeps reporting its date-derived expiry status.
func TestMembership_ExpiryStatusIgnoresAdminStatus(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m := &Membership{
		Status:  types.MembershipStatusInactive,
		EndDate: tp(now.AddDate(0, 0, 90)),
	}
	require.Equal(t, types.ExpiryStatusActive, m.ExpiryStatusAt(now))
	require.False(t, m.IsActiveAt(now))
}

func TestMembership_IsActiveAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	future := tp(now.AddDate(0, 0, 10))
	past := tp(now.AddDate(0, 0, -10))

	require.True(t, (&Membership{Status: types.MembershipStatusActive, EndDate: future}).IsActiveAt(now))
	require.False(t, (&Membership{Status: types.MembershipStatusActive, EndDate: past}).IsActiveAt(now))
	require.False(t, (&Membership{Status: types.MembershipStatusInactive, EndDate: future}).IsActiveAt(now))
}

func TestMembership_RemainingTimeFormattedAt(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  *time.Time
		want string
	}{
		{"expired", tp(now.AddDate(0, 0, -5)), "Expired"},
		{"no end date", nil, "Expired"},
		{"single day", tp(now.AddDate(0, 0, 1)), "1 days left"},
		{"under a month", tp(now.AddDate(0, 0, 15)), "15 days left"},
		{"one month", tp(now.AddDate(0, 0, 30)), "1 month left"},
		{"floors to one month", tp(now.AddDate(0, 0, 59)), "1 month left"},
		{"two months", tp(now.AddDate(0, 0, 60)), "2 months left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Membership{Status: types.MembershipStatusActive, EndDate: tt.end}
			require.Equal(t, tt.want, m.RemainingTimeFormattedAt(now))
		})
	}
}

func TestMembership_IsTemplate(t *testing.T) {
	cid := "0194a7e2-0000-7000-8000-000000000001"
	require.True(t, (&Membership{}).IsTemplate())
	require.False(t, (&Membership{CustomerID: &cid}).IsTemplate())
}

func TestActiveMembershipFrom(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	future := tp(now.AddDate(0, 0, 30))

	mk := func(id string, start time.Time, status types.MembershipStatus, end *time.Time) *Membership {
		return &Membership{ID: id, StartDate: tp(start), Status: status, EndDate: end}
	}

	t.Run("empty set", func(t *testing.T) {
		require.Nil(t, ActiveMembershipFrom(nil, now))
	})

	t.Run("end date equal to now is not active", func(t *testing.T) {
		rows := []*Membership{
			mk("a", now.AddDate(0, 0, -30), types.MembershipStatusActive, tp(now)),
		}
		require.Nil(t, ActiveMembershipFrom(rows, now))
	})

	t.Run("skips expired and inactive", func(t *testing.T) {
		rows := []*Membership{
			mk("a", now.AddDate(0, 0, -60), types.MembershipStatusActive, tp(now.AddDate(0, 0, -30))),
			mk("b", now.AddDate(0, 0, -10), types.MembershipStatusInactive, future),
		}
		require.Nil(t, ActiveMembershipFrom(rows, now))
	})

	t.Run("latest start date wins", func(t *testing.T) {
		rows := []*Membership{
			mk("a", now.AddDate(0, 0, -20), types.MembershipStatusActive, future),
			mk("b", now.AddDate(0, 0, -5), types.MembershipStatusActive, future),
			mk("c", now.AddDate(0, 0, -10), types.MembershipStatusActive, future),
		}
		got := ActiveMembershipFrom(rows, now)
		require.NotNil(t, got)
		require.Equal(t, "b", got.ID)
	})

	t.Run("equal start dates break on id", func(t *testing.T) {
		start := now.AddDate(0, 0, -5)
		rows := []*Membership{
			mk("a", start, types.MembershipStatusActive, future),
			mk("c", start, types.MembershipStatusActive, future),
			mk("b", start, types.MembershipStatusActive, future),
		}
		got := ActiveMembershipFrom(rows, now)
		require.NotNil(t, got)
		require.Equal(t, "c", got.ID)
	})
}
