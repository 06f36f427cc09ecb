package jikan

// Genre is a genre reference as embedded in anime records and as listed by
// /genres/anime (which also fills Count).
type Genre struct {
	MalID int    `json:"mal_id"`
	Type  string `json:"type,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Count int    `json:"count,omitempty"`
}

type Images struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		SmallImageURL string `json:"small_image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

// AnimeData is the shared data block returned by list and single endpoints.
// Every field may be missing or null upstream; zero values stand for absent.
type AnimeData struct {
	MalID         int      `json:"mal_id"`
	Title         string   `json:"title"`
	TitleEnglish  string   `json:"title_english"`
	TitleJapanese string   `json:"title_japanese"`
	TitleRussian  string   `json:"title_russian"`
	Synopsis      string   `json:"synopsis"`
	Type          string   `json:"type"`
	Status        string   `json:"status"`
	Rating        string   `json:"rating"`
	Episodes      int      `json:"episodes"`
	Score         *float64 `json:"score"`
	Popularity    int      `json:"popularity"`
	Members       int      `json:"members"`
	Favorites     int      `json:"favorites"`
	Year          int      `json:"year"`
	Aired         struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"aired"`
	Genres         []Genre `json:"genres"`
	ExplicitGenres []Genre `json:"explicit_genres"`
	Images         Images  `json:"images"`
}

type PaginationItems struct {
	Count   int `json:"count"`
	Total   int `json:"total"`
	PerPage int `json:"per_page"`
}

// Pagination carries the list metadata. Items is nil when upstream omits it.
type Pagination struct {
	LastVisiblePage int              `json:"last_visible_page"`
	HasNextPage     bool             `json:"has_next_page"`
	CurrentPage     int              `json:"current_page"`
	Items           *PaginationItems `json:"items,omitempty"`
}

type AnimeResponse struct {
	Data AnimeData `json:"data"`
}

type AnimeListResponse struct {
	Data       []AnimeData `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

type GenreListResponse struct {
	Data []Genre `json:"data"`
}
