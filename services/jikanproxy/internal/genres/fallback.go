package genres

import "github.com/FogoReed/anime-app-full/services/jikanproxy/internal/jikan"

// fallback is served when the upstream genre listing is unavailable.
var fallback = []jikan.Genre{
	{MalID: 1, Name: "Action"},
	{MalID: 2, Name: "Adventure"},
	{MalID: 4, Name: "Comedy"},
	{MalID: 8, Name: "Drama"},
	{MalID: 10, Name: "Fantasy"},
	{MalID: 14, Name: "Horror"},
	{MalID: 7, Name: "Mystery"},
	{MalID: 22, Name: "Romance"},
	{MalID: 24, Name: "Sci-Fi"},
	{MalID: 36, Name: "Slice of Life"},
	{MalID: 30, Name: "Sports"},
	{MalID: 37, Name: "Supernatural"},
	{MalID: 41, Name: "Suspense"},
	{MalID: 9, Name: "Ecchi"},
	{MalID: 12, Name: "Hentai"},
	{MalID: 27, Name: "Shounen"},
	{MalID: 25, Name: "Shoujo"},
	{MalID: 42, Name: "Seinen"},
	{MalID: 43, Name: "Josei"},
	{MalID: 5, Name: "Avant Garde"},
	{MalID: 28, Name: "Boys Love"},
	{MalID: 26, Name: "Girls Love"},
	{MalID: 3, Name: "Racing"},
	{MalID: 6, Name: "Mythology"},
	{MalID: 13, Name: "Historical"},
	{MalID: 15, Name: "Kids"},
	{MalID: 16, Name: "Martial Arts"},
	{MalID: 17, Name: "Mecha"},
	{MalID: 18, Name: "Music"},
	{MalID: 19, Name: "Parody"},
	{MalID: 20, Name: "Samurai"},
	{MalID: 21, Name: "School"},
	{MalID: 23, Name: "Space"},
	{MalID: 29, Name: "Super Power"},
	{MalID: 31, Name: "Vampire"},
	{MalID: 32, Name: "Yaoi"},
	{MalID: 33, Name: "Yuri"},
	{MalID: 34, Name: "Harem"},
	{MalID: 35, Name: "Slice of Life"},
	{MalID: 38, Name: "Military"},
	{MalID: 39, Name: "Police"},
	{MalID: 40, Name: "Psychological"},
	{MalID: 44, Name: "Award Winning"},
	{MalID: 45, Name: "Gourmet"},
	{MalID: 46, Name: "Work Life"},
	{MalID: 47, Name: "Erotica"},
}

// Fallback returns a copy of the static genre list.
func Fallback() []jikan.Genre {
	out := make([]jikan.Genre, len(fallback))
	copy(out, fallback)
	return out
}
