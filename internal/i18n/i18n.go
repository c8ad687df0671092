package i18n

// Locale identifies one of the supported site languages. Each locale owns an
// independent copy of the content graph; numeric IDs are shared across
// locales, the text is not.
type Locale string

const (
	Polish    Locale = "pl"
	English   Locale = "en"
	Ukrainian Locale = "uk"
	German    Locale = "de"
)

// All returns the supported locales in their canonical order. Enumeration
// order matters: the static build and the sitemap must be reproducible.
func All() []Locale {
	return []Locale{Polish, English, Ukrainian, German}
}

// Default is the locale the root page redirects to.
const Default = Polish

// IsValid reports whether l is a supported locale.
func IsValid(l Locale) bool {
	switch l {
	case Polish, English, Ukrainian, German:
		return true
	}
	return false
}

// Strings holds the UI vocabulary for one locale.
type Strings struct {
	SiteName          string
	Tagline           string
	BrowseQuestions   string
	AllQuestions      string
	Categories        string
	QuestionsInSet    string
	BackToQuestions   string
	BackToCategory    string
	CorrectAnswer     string
	Description       string
	Explanation       string
	Points            string
	OfficialNumber    string
	LicenseCategories string
	PreviousQuestion  string
	NextQuestion      string
	FilterByLicense   string
	FilterHint        string
	Regulations       string
	Terms             string
	Privacy           string
	NotFound          string
	NotFoundHint      string
}

var tables = map[Locale]Strings{
	Polish: {
		SiteName:          "Prawo Jazdy",
		Tagline:           "Zdaj na prawo jazdy za pierwszym razem",
		BrowseQuestions:   "Przeglądaj pytania",
		AllQuestions:      "Wszystkie pytania",
		Categories:        "Kategorie",
		QuestionsInSet:    "pytań",
		BackToQuestions:   "Powrót do pytań",
		BackToCategory:    "Powrót do kategorii",
		CorrectAnswer:     "Poprawna odpowiedź",
		Description:       "Opis",
		Explanation:       "Wyjaśnienie",
		Points:            "pkt",
		OfficialNumber:    "Numer urzędowy",
		LicenseCategories: "Kategorie prawa jazdy",
		PreviousQuestion:  "Poprzednie pytanie",
		NextQuestion:      "Następne pytanie",
		FilterByLicense:   "Filtruj według kategorii",
		FilterHint:        "Wybierz kategorie prawa jazdy, które Cię interesują",
		Regulations:       "Przepisy ruchu drogowego",
		Terms:             "Regulamin",
		Privacy:           "Polityka prywatności",
		NotFound:          "Nie znaleziono strony",
		NotFoundHint:      "Strona, której szukasz, nie istnieje.",
	},
	English: {
		SiteName:          "Polish Driving License",
		Tagline:           "Pass your driving test on the first try",
		BrowseQuestions:   "Browse questions",
		AllQuestions:      "All questions",
		Categories:        "Categories",
		QuestionsInSet:    "questions",
		BackToQuestions:   "Back to questions",
		BackToCategory:    "Back to category",
		CorrectAnswer:     "Correct answer",
		Description:       "Description",
		Explanation:       "Explanation",
		Points:            "pts",
		OfficialNumber:    "Official number",
		LicenseCategories: "License categories",
		PreviousQuestion:  "Previous question",
		NextQuestion:      "Next question",
		FilterByLicense:   "Filter by license category",
		FilterHint:        "Pick the license categories you care about",
		Regulations:       "Traffic Regulations",
		Terms:             "Terms of Service",
		Privacy:           "Privacy Policy",
		NotFound:          "Page not found",
		NotFoundHint:      "The page you are looking for does not exist.",
	},
	Ukrainian: {
		SiteName:          "Водійські права",
		Tagline:           "Складіть іспит з першого разу",
		BrowseQuestions:   "Переглянути питання",
		AllQuestions:      "Усі питання",
		Categories:        "Категорії",
		QuestionsInSet:    "питань",
		BackToQuestions:   "Повернутися до питань",
		BackToCategory:    "Повернутися до категорії",
		CorrectAnswer:     "Правильна відповідь",
		Description:       "Опис",
		Explanation:       "Пояснення",
		Points:            "балів",
		OfficialNumber:    "Офіційний номер",
		LicenseCategories: "Категорії посвідчення",
		PreviousQuestion:  "Попереднє питання",
		NextQuestion:      "Наступне питання",
		FilterByLicense:   "Фільтрувати за категорією",
		FilterHint:        "Виберіть категорії посвідчення, які вас цікавлять",
		Regulations:       "Правила дорожнього руху",
		Terms:             "Умови користування",
		Privacy:           "Політика конфіденційності",
		NotFound:          "Сторінку не знайдено",
		NotFoundHint:      "Сторінка, яку ви шукаєте, не існує.",
	},
	German: {
		SiteName:          "Führerschein Polen",
		Tagline:           "Bestehen Sie die Fahrprüfung beim ersten Versuch",
		BrowseQuestions:   "Fragen durchsuchen",
		AllQuestions:      "Alle Fragen",
		Categories:        "Kategorien",
		QuestionsInSet:    "Fragen",
		BackToQuestions:   "Zurück zu Fragen",
		BackToCategory:    "Zurück zur Kategorie",
		CorrectAnswer:     "Richtige Antwort",
		Description:       "Beschreibung",
		Explanation:       "Erklärung",
		Points:            "Pkt",
		OfficialNumber:    "Offizielle Nummer",
		LicenseCategories: "Führerscheinklassen",
		PreviousQuestion:  "Vorherige Frage",
		NextQuestion:      "Nächste Frage",
		FilterByLicense:   "Nach Führerscheinklasse filtern",
		FilterHint:        "Wählen Sie die Führerscheinklassen, die Sie interessieren",
		Regulations:       "Verkehrsregeln",
		Terms:             "Nutzungsbedingungen",
		Privacy:           "Datenschutzerklärung",
		NotFound:          "Seite nicht gefunden",
		NotFoundHint:      "Die gesuchte Seite existiert nicht.",
	},
}

// T returns the UI strings for a locale, falling back to English for an
// unknown locale.
func T(l Locale) Strings {
	if s, ok := tables[l]; ok {
		return s
	}
	return tables[English]
}
