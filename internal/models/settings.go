package models

// Допустимые значения настроек интерфейса.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	LanguagePT = "pt"
	LanguageEN = "en"
)

// AppSettings хранит настройки интерфейса в рамках одной сессии
type AppSettings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	Language      string `json:"language"`
	PrivacyMode   bool   `json:"privacy_mode"`
}

// DefaultSettings возвращает настройки по умолчанию для новой сессии
func DefaultSettings() AppSettings {
	return AppSettings{
		Theme:         ThemeLight,
		Notifications: true,
		Language:      LanguagePT,
		PrivacyMode:   false,
	}
}
