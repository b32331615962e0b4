package domain

type Screen string

const (
	ScreenWelcome        Screen = "WELCOME"
	ScreenIdentification Screen = "IDENTIFICATION"
	ScreenConfirmation   Screen = "CONFIRMATION"
	ScreenPayment        Screen = "PAYMENT"
	ScreenCompletion     Screen = "COMPLETION"
	ScreenReason         Screen = "REASON"
	ScreenScheduling     Screen = "SCHEDULING"
	ScreenProfile        Screen = "PROFILE"
	ScreenSpecialists    Screen = "SPECIALISTS"
	ScreenFaq            Screen = "FAQ"
)

var Screens = []Screen{
	ScreenWelcome,
	ScreenIdentification,
	ScreenConfirmation,
	ScreenPayment,
	ScreenCompletion,
	ScreenReason,
	ScreenScheduling,
	ScreenProfile,
	ScreenSpecialists,
	ScreenFaq,
}

func (s Screen) IsValid() bool {
	for _, screen := range Screens {
		if s == screen {
			return true
		}
	}
	return false
}

// IsDetour reports whether the screen is reachable from several places and
// returns to whatever screen was active before it.
func (s Screen) IsDetour() bool {
	return s == ScreenProfile || s == ScreenSpecialists || s == ScreenFaq
}

type NavigationState struct {
	Current  Screen `json:"current_screen"`
	Previous Screen `json:"previous_screen"`
}

type Theme string

const (
	ThemeDefault Theme = ""
	ThemeDark    Theme = "theme-dark"
	ThemePastel  Theme = "theme-pastel"
	ThemeMono    Theme = "theme-mono"
)

var Themes = []Theme{ThemeDefault, ThemeDark, ThemePastel, ThemeMono}

func (t Theme) IsValid() bool {
	for _, theme := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

func (t Theme) Label() string {
	switch t {
	case ThemeDark:
		return "Noite"
	case ThemePastel:
		return "Pastel"
	case ThemeMono:
		return "Monocromático"
	default:
		return "Amanhecer"
	}
}
