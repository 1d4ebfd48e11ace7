package types

// PlanCategory is the sellable tier of a plan.
type PlanCategory string

const (
	PlanCategoryBasic      PlanCategory = "basic"
	PlanCategoryStandard   PlanCategory = "standard"
	PlanCategoryPremium    PlanCategory = "premium"
	PlanCategoryVIP        PlanCategory = "vip"
	PlanCategoryEnterprise PlanCategory = "enterprise"
)

var PlanCategories = []PlanCategory{
	PlanCategoryBasic,
	PlanCategoryStandard,
	PlanCategoryPremium,
	PlanCategoryVIP,
	PlanCategoryEnterprise,
}

func (c PlanCategory) Valid() bool {
	for _, v := range PlanCategories {
		if c == v {
			return true
		}
	}
	return false
}

// ColorTheme drives plan card theming in the admin UI.
type ColorTheme string

const (
	ColorThemeBlue   ColorTheme = "blue"
	ColorThemeGreen  ColorTheme = "green"
	ColorThemePurple ColorTheme = "purple"
	ColorThemeGold   ColorTheme = "gold"
	ColorThemeRed    ColorTheme = "red"
)

var ColorThemes = []ColorTheme{
	ColorThemeBlue,
	ColorThemeGreen,
	ColorThemePurple,
	ColorThemeGold,
	ColorThemeRed,
}

func (t ColorTheme) Valid() bool {
	for _, v := range ColorThemes {
		if t == v {
			return true
		}
	}
	return false
}
