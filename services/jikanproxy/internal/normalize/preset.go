package normalize

// Preset holds the per-call-site defaults for list summaries. The search and
// random paths disagree on several fallbacks and both are kept as-is.
type Preset struct {
	Name           string
	SynopsisBudget int
	GenreCap       int
	// ZeroScore renders a missing score as 0 instead of null.
	ZeroScore           bool
	YearPlaceholder     string
	EpisodesPlaceholder string
	DefaultType         string
	// UntitledFallback uses the localized untitled text when both titles are empty.
	UntitledFallback bool
}

var (
	SearchDefaults = Preset{
		Name:                "search",
		SynopsisBudget:      200,
		GenreCap:            3,
		YearPlaceholder:     "N/A",
		EpisodesPlaceholder: "?",
		DefaultType:         "TV",
	}
	RandomDefaults = Preset{
		Name:                "random",
		SynopsisBudget:      250,
		GenreCap:            5,
		ZeroScore:           true,
		YearPlaceholder:     "—",
		EpisodesPlaceholder: "?",
		DefaultType:         "TV",
		UntitledFallback:    true,
	}
)

const (
	ellipsis          = "..."
	detailPlaceholder = "—"
	rewriteCredit     = "[Written by MAL Rewrite]"
)
