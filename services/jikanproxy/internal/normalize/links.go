package normalize

import (
	"net/url"
	"strconv"
)

// BuildLinks returns the ranked list of places to find a title. The order is
// fixed: MyAnimeList, the general sites (non-explicit only), Shikimori, then
// WatchHentai by main and English title (explicit only).
func (n *Normalizer) BuildLinks(malID int, titleMain, titleEN string, explicit bool) []ExternalLink {
	q := url.QueryEscape(titleMain)
	search := " (" + n.msgs.SearchLabel + ")"

	links := []ExternalLink{{
		URL:   "https://myanimelist.net/anime/" + strconv.Itoa(malID),
		Label: "MyAnimeList",
	}}
	if !explicit {
		links = append(links,
			ExternalLink{URL: "https://animego.org/search/anime?q=" + q, Label: "AnimeGo" + search},
			ExternalLink{URL: "https://anilib.me/ru/catalog?q=" + q, Label: "AnimeLIB" + search},
			ExternalLink{URL: "https://hdrezka.ag/search/?do=search&subaction=search&q=" + q, Label: "HDRezka" + search},
		)
	}

	shikimori := "Shikimori" + search
	if explicit {
		shikimori = "Shikimori (" + n.msgs.RegistrationLabel + ")"
	}
	links = append(links, ExternalLink{URL: "https://shikimori.one/animes?search=" + q, Label: shikimori})

	if explicit {
		links = append(links, ExternalLink{URL: "https://watchhentai.net/?s=" + q, Label: "WatchHentai" + search})
		if titleEN != "" && titleEN != titleMain {
			links = append(links, ExternalLink{
				URL:   "https://watchhentai.net/?s=" + url.QueryEscape(titleEN),
				Label: "WatchHentai (" + n.msgs.SearchLabel + " EN)",
			})
		}
	}
	return links
}
