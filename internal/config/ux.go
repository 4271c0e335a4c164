package config

// Theme names accepted by ux.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UXConfig holds terminal presentation settings.
type UXConfig struct {
	// Theme selects the color palette (auto detects from COLORFGBG)
	Theme string `yaml:"theme"`

	// WordWrap is the column width for rendered lesson notes (0 = no wrap)
	WordWrap int `yaml:"word_wrap"`
}
