package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitdesk/memberdesk/pkg/types"
)

func f64(v float64) *float64 { return &v }

func TestPlan_Pricing(t *testing.T) {
	tests := []struct {
		name          string
		original      float64
		discounted    *float64
		wantEffective float64
		wantDiscount  bool
		wantAmount    float64
		wantSavings   float64
	}{
		{
			name:          "no discount",
			original:      100,
			discounted:    nil,
			wantEffective: 100,
		},
		{
			name:          "discounted",
			original:      100,
			discounted:    f64(75),
			wantEffective: 75,
			wantDiscount:  true,
			wantAmount:    25,
			wantSavings:   25,
		},
		{
			name:          "savings rounds to one decimal",
			original:      90,
			discounted:    f64(60),
			wantEffective: 60,
			wantDiscount:  true,
			wantAmount:    30,
			wantSavings:   33.3,
		},
		{
			name:          "discount equal to original is not a discount",
			original:      50,
			discounted:    f64(50),
			wantEffective: 50,
		},
		{
			name:          "discount above original is not a discount",
			original:      50,
			discounted:    f64(60),
			wantEffective: 60,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Plan{OriginalPrice: tt.original, DiscountedPrice: tt.discounted}
			require.Equal(t, tt.wantEffective, p.EffectivePrice())
			require.Equal(t, tt.wantDiscount, p.HasDiscount())
			require.Equal(t, tt.wantAmount, p.DiscountAmount())
			require.Equal(t, tt.wantSavings, p.SavingsPercentage())
		})
	}
}

func TestPlan_IsValidAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		plan Plan
		at   time.Time
		want bool
	}{
		{"active without window", Plan{IsActive: true}, now, true},
		{"inactive without window", Plan{IsActive: false}, now, false},
		{"inside window", Plan{IsActive: true, ValidFrom: &from, ValidUntil: &until}, now, true},
		{"before window", Plan{IsActive: true, ValidFrom: &from}, from.AddDate(0, 0, -1), false},
		{"at lower bound", Plan{IsActive: true, ValidFrom: &from}, from, true},
		{"at upper bound", Plan{IsActive: true, ValidUntil: &until}, until, true},
		{"after window", Plan{IsActive: true, ValidUntil: &until}, until.Add(time.Second), false},
		{"inactive inside window", Plan{IsActive: false, ValidFrom: &from, ValidUntil: &until}, now, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.plan.IsValidAt(tt.at))
		})
	}
}

func TestPlan_DaysUntilExpiryAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)

	p := &Plan{IsActive: true}
	require.Nil(t, p.DaysUntilExpiryAt(now))

	until := time.Date(2025, 6, 20, 1, 0, 0, 0, time.UTC)
	p.ValidUntil = &until
	d := p.DaysUntilExpiryAt(now)
	require.NotNil(t, d)
	require.Equal(t, 5, *d)

	past := now.AddDate(0, 0, -3)
	p.ValidUntil = &past
	d = p.DaysUntilExpiryAt(now)
	require.NotNil(t, d)
	require.Equal(t, -3, *d)
}

func TestPlan_IsExpiringSoonAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	window := 30

	in10 := now.AddDate(0, 0, 10)
	in40 := now.AddDate(0, 0, 40)
	past := now.AddDate(0, 0, -1)

	require.False(t, (&Plan{}).IsExpiringSoonAt(now, window))
	require.True(t, (&Plan{ValidUntil: &in10}).IsExpiringSoonAt(now, window))
	require.False(t, (&Plan{ValidUntil: &in40}).IsExpiringSoonAt(now, window))
	require.False(t, (&Plan{ValidUntil: &past}).IsExpiringSoonAt(now, window))
}

func TestPlan_FormattedDuration(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{7, "7 days"},
		{21, "21 days"},
		{29, "29 days"},
		{30, "1 month"},
		{45, "1.5 months"},
		{90, "3 months"},
		{365, "12.2 months"},
	}
	for _, tt := range tests {
		p := &Plan{DurationDays: tt.days}
		require.Equal(t, tt.want, p.FormattedDuration(), "days=%d", tt.days)
	}
}

func TestPlan_CategoryDisplay(t *testing.T) {
	tests := []struct {
		category  types.PlanCategory
		theme     types.ColorTheme
		wantColor string
		wantBadge string
	}{
		{types.PlanCategoryBasic, "", "gray", "Basic"},
		{types.PlanCategoryStandard, "", "blue", "Standard"},
		{types.PlanCategoryPremium, "", "purple", "Premium"},
		{types.PlanCategoryVIP, "", "gold", "VIP"},
		{types.PlanCategoryEnterprise, "", "green", "Enterprise"},
		{"custom", types.ColorThemeRed, "red", "Custom"},
		{"custom", "", "blue", "Custom"},
	}
	for _, tt := range tests {
		p := &Plan{Category: tt.category, ColorTheme: tt.theme}
		require.Equal(t, tt.wantColor, p.CategoryColor())
		require.Equal(t, tt.wantBadge, p.TypeBadge())
	}
}

func TestPlan_IsGroupPlan(t *testing.T) {
	require.False(t, (&Plan{MaxMembers: 1}).IsGroupPlan())
	require.True(t, (&Plan{MaxMembers: 4}).IsGroupPlan())
}
