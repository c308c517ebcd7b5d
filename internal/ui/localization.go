package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearch            = "search"
	KeyEnterQuery        = "enter_query"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyActivity          = "activity"
	KeyFullImage         = "full_image"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyShowInFolder      = "show_in_folder"
	KeyImageSaved        = "image_saved"
	KeySearchEndpoint    = "search_endpoint"
	KeyResultLimit       = "result_limit"
	KeyGridColumns       = "grid_columns"
	KeyThumbnailSize     = "thumbnail_size"
	KeyRequestTimeout    = "request_timeout"
	KeyFetchRate         = "fetch_rate"
	KeySaveDirectory     = "save_directory"
	KeySearchSettings    = "search_settings"
	KeyInterfaceSettings = "interface_settings"
	KeySettingsSaved     = "settings_saved"
	KeySearching         = "searching"
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
		"pl": "Polski",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "NASA Image Searcher",
		KeySearch:            "Search",
		KeyEnterQuery:        "Search NASA images (e.g. nebula, apollo 11)",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyActivity:          "Activity",
		KeyFullImage:         "Full Image",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyShowInFolder:      "Show in folder",
		KeyImageSaved:        "Image saved",
		KeySearchEndpoint:    "Search Endpoint",
		KeyResultLimit:       "Result Limit",
		KeyGridColumns:       "Grid Columns",
		KeyThumbnailSize:     "Thumbnail Size (px)",
		KeyRequestTimeout:    "Request Timeout (s)",
		KeyFetchRate:         "Requests per Second (0 = unlimited)",
		KeySaveDirectory:     "Save Directory",
		KeySearchSettings:    "Search Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySearching:         "Searching...",
	}

	l.texts["pl"] = map[string]string{
		KeyAppTitle:          "Wyszukiwarka zdjęć NASA",
		KeySearch:            "Szukaj",
		KeyEnterQuery:        "Szukaj zdjęć NASA (np. mgławica, apollo 11)",
		KeySettings:          "Ustawienia",
		KeyFile:              "Plik",
		KeyLanguage:          "Język",
		KeyActivity:          "Aktywność",
		KeyFullImage:         "Pełne zdjęcie",
		KeySave:              "Zapisz",
		KeyCancel:            "Anuluj",
		KeyBrowse:            "Przeglądaj",
		KeyShowInFolder:      "Pokaż w folderze",
		KeyImageSaved:        "Zdjęcie zapisane",
		KeySearchEndpoint:    "Adres wyszukiwania",
		KeyResultLimit:       "Limit wyników",
		KeyGridColumns:       "Liczba kolumn",
		KeyThumbnailSize:     "Rozmiar miniatury (px)",
		KeyRequestTimeout:    "Limit czasu żądania (s)",
		KeyFetchRate:         "Żądania na sekundę (0 = bez limitu)",
		KeySaveDirectory:     "Folder zapisu",
		KeySearchSettings:    "Ustawienia wyszukiwania",
		KeyInterfaceSettings: "Ustawienia interfejsu",
		KeySettingsSaved:     "Ustawienia zapisane!",
		KeySearching:         "Wyszukiwanie...",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Поиск изображений NASA",
		KeySearch:            "Найти",
		KeyEnterQuery:        "Поиск изображений NASA (например, туманность, apollo 11)",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyActivity:          "Журнал",
		KeyFullImage:         "Полное изображение",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyShowInFolder:      "Показать в папке",
		KeyImageSaved:        "Изображение сохранено",
		KeySearchEndpoint:    "Адрес поиска",
		KeyResultLimit:       "Лимит результатов",
		KeyGridColumns:       "Колонки сетки",
		KeyThumbnailSize:     "Размер миниатюры (px)",
		KeyRequestTimeout:    "Таймаут запроса (с)",
		KeyFetchRate:         "Запросов в секунду (0 = без ограничений)",
		KeySaveDirectory:     "Папка сохранения",
		KeySearchSettings:    "Настройки поиска",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySearching:         "Поиск...",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Buscador de Imagens da NASA",
		KeySearch:            "Buscar",
		KeyEnterQuery:        "Buscar imagens da NASA (ex.: nebulosa, apollo 11)",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyActivity:          "Atividade",
		KeyFullImage:         "Imagem Completa",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyImageSaved:        "Imagem salva",
		KeySearchEndpoint:    "Endpoint de Busca",
		KeyResultLimit:       "Limite de Resultados",
		KeyGridColumns:       "Colunas da Grade",
		KeyThumbnailSize:     "Tamanho da Miniatura (px)",
		KeyRequestTimeout:    "Tempo Limite (s)",
		KeyFetchRate:         "Requisições por Segundo (0 = ilimitado)",
		KeySaveDirectory:     "Diretório de Salvamento",
		KeySearchSettings:    "Configurações de Busca",
		KeyInterfaceSettings: "Configurações de Interface",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySearching:         "Buscando...",
	}
}
