package domain

// Category classifies a campaign into one of a closed set of project
// domains. It carries no behaviour beyond validity checking and is exposed
// verbatim as selectable option values by the HTTP layer.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryArt        Category = "Art"
	CategoryGames      Category = "Games"
	CategoryFilm       Category = "Film"
	CategoryMusic      Category = "Music"
	CategoryOther      Category = "Other"
)

// Categories returns the full closed set in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryArt,
		CategoryGames,
		CategoryFilm,
		CategoryMusic,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTechnology, CategoryArt, CategoryGames, CategoryFilm, CategoryMusic, CategoryOther:
		return true
	}
	return false
}
