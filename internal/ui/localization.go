package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyPasteImageURL  = "paste_image_url"
	KeyLoadFromURL    = "load_from_url"
	KeyDropPrompt     = "drop_prompt"
	KeyReset          = "reset"
	KeyToggleOnTop    = "toggle_on_top"
	KeyPleaseEnterURL = "please_enter_url"
	KeyInvalidURL     = "invalid_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Image Viewer",
		KeyPasteImageURL:  "Paste Image URL",
		KeyLoadFromURL:    "Load Image from URL",
		KeyDropPrompt:     "Drag and Drop an Image Here",
		KeyReset:          "Reset",
		KeyToggleOnTop:    "Toggle Always-on-Top",
		KeyPleaseEnterURL: "Please enter a URL",
		KeyInvalidURL:     "Invalid URL",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Просмотр изображений",
		KeyPasteImageURL:  "Вставьте URL изображения",
		KeyLoadFromURL:    "Загрузить по URL",
		KeyDropPrompt:     "Перетащите изображение сюда",
		KeyReset:          "Сброс",
		KeyToggleOnTop:    "Поверх всех окон",
		KeyPleaseEnterURL: "Пожалуйста, введите URL",
		KeyInvalidURL:     "Неверный URL",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Visualizador de Imagens",
		KeyPasteImageURL:  "Cole a URL da Imagem",
		KeyLoadFromURL:    "Carregar Imagem da URL",
		KeyDropPrompt:     "Arraste e Solte uma Imagem Aqui",
		KeyReset:          "Redefinir",
		KeyToggleOnTop:    "Sempre Visível",
		KeyPleaseEnterURL: "Por favor, digite uma URL",
		KeyInvalidURL:     "URL inválida",
	}
}
