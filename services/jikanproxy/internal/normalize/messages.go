package normalize

import "strings"

// Messages holds every user-visible text the service produces.
type Messages struct {
	Locale string

	// NoSynopsis replaces a missing synopsis in list summaries.
	NoSynopsis string

	// NoDescription replaces a missing synopsis in the detail view.
	NoDescription string
	Untitled      string

	SearchLabel       string
	RegistrationLabel string

	Unavailable string
	Failure     string
	NotFound    string
	BadRequest  string

	// TooManyRequests answers callers over the inbound rate limit.
	TooManyRequests string
}

var russian = Messages{
	Locale:            "ru",
	NoSynopsis:        "Нет описания",
	NoDescription:     "Описание отсутствует",
	Untitled:          "Без названия",
	SearchLabel:       "поиск",
	RegistrationLabel: "поиск, требуется регистрация",
	Unavailable:       "Сервис временно недоступен, попробуй позже",
	Failure:           "Произошла ошибка, попробуй ещё раз",
	NotFound:          "Аниме не найдено",
	BadRequest:        "Некорректный запрос",
	TooManyRequests:   "Слишком много запросов, подожди немного",
}

var english = Messages{
	Locale:            "en",
	NoSynopsis:        "No synopsis",
	NoDescription:     "No description available",
	Untitled:          "Untitled",
	SearchLabel:       "search",
	RegistrationLabel: "search, registration required",
	Unavailable:       "Service is temporarily unavailable, please try later",
	Failure:           "Something went wrong, please try again",
	NotFound:          "Anime not found",
	BadRequest:        "Bad request",
	TooManyRequests:   "Too many requests, please slow down",
}

// MessagesFor returns the catalog for locale. Unknown locales get Russian.
func MessagesFor(locale string) Messages {
	if strings.EqualFold(strings.TrimSpace(locale), "en") {
		return english
	}
	return russian
}
