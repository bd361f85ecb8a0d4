package models

// HuntTheme defines the fixed set of themes a team can register under
type HuntTheme string

const (
	ThemeArtificialIntelligence HuntTheme = "artificial-intelligence"
	ThemeSpaceExploration       HuntTheme = "space-exploration"
	ThemeSustainableCity        HuntTheme = "sustainable-city"
	ThemeRobotics               HuntTheme = "robotics"
	ThemeCybersecurity          HuntTheme = "cybersecurity"
)

// IsValid checks if the HuntTheme is valid
func (t HuntTheme) IsValid() bool {
	switch t {
	case ThemeArtificialIntelligence, ThemeSpaceExploration, ThemeSustainableCity, ThemeRobotics, ThemeCybersecurity:
		return true
	}
	return false
}

// AllThemes returns every registrable theme, for validation messages and docs.
func AllThemes() []HuntTheme {
	return []HuntTheme{
		ThemeArtificialIntelligence,
		ThemeSpaceExploration,
		ThemeSustainableCity,
		ThemeRobotics,
		ThemeCybersecurity,
	}
}
