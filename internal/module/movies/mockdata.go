package movies

import "github.com/omnidash/omnidash/internal/domain"

// mockMovies and mockGenres are the demo datasets served whenever the proxy
// path fails. Built once at package init; treat as immutable.
var (
	mockMovies = buildMockMovies()
	mockGenres = []domain.Genre{
		{ID: 28, Name: "Action"},
		{ID: 12, Name: "Adventure"},
		{ID: 16, Name: "Animation"},
		{ID: 35, Name: "Comedy"},
		{ID: 80, Name: "Crime"},
		{ID: 99, Name: "Documentary"},
		{ID: 18, Name: "Drama"},
		{ID: 10751, Name: "Family"},
		{ID: 14, Name: "Fantasy"},
		{ID: 36, Name: "History"},
		{ID: 27, Name: "Horror"},
		{ID: 10402, Name: "Music"},
		{ID: 9648, Name: "Mystery"},
		{ID: 10749, Name: "Romance"},
		{ID: 878, Name: "Science Fiction"},
		{ID: 53, Name: "Thriller"},
		{ID: 10752, Name: "War"},
		{ID: 37, Name: "Western"},
	}
)

func buildMockMovies() []domain.Movie {
	str := func(s string) *string { return &s }

	return []domain.Movie{
		{
			ID:               1,
			Title:            "The Matrix",
			Overview:         "A computer hacker learns about the true nature of reality and his role in the war against its controllers.",
			PosterPath:       str("/f89U3ADr1oiB1s9GkdPOEpXUk5H.jpg"),
			BackdropPath:     str("/fNG7i7RqMErkcqhohV2a6cV1Ehy.jpg"),
			ReleaseDate:      "1999-03-30",
			VoteAverage:      8.2,
			VoteCount:        24000,
			GenreIDs:         []int{28, 878},
			Popularity:       89.5,
			OriginalLanguage: "en",
		},
		{
			ID:               2,
			Title:            "Inception",
			Overview:         "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea.",
			PosterPath:       str("/9gk7adHYeDvHkCSEqAvQNLV5Ber.jpg"),
			BackdropPath:     str("/s3TBrRGB1iav7gFOCNx3H31MoES.jpg"),
			ReleaseDate:      "2010-07-15",
			VoteAverage:      8.4,
			VoteCount:        35000,
			GenreIDs:         []int{28, 878, 12},
			Popularity:       95.2,
			OriginalLanguage: "en",
		},
		{
			ID:               3,
			Title:            "Interstellar",
			Overview:         "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			PosterPath:       str("/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg"),
			BackdropPath:     str("/xJHokMbljvjADYdit5fK5VQsXEG.jpg"),
			ReleaseDate:      "2014-11-05",
			VoteAverage:      8.4,
			VoteCount:        32000,
			GenreIDs:         []int{12, 18, 878},
			Popularity:       92.8,
			OriginalLanguage: "en",
		},
		{
			ID:               4,
			Title:            "The Dark Knight",
			Overview:         "Batman raises the stakes in his war on crime with the help of allies to dismantle the remaining criminal organizations.",
			PosterPath:       str("/qJ2tW6WMUDux911r6m7haRef0WH.jpg"),
			BackdropPath:     str("/hkBaDkMWbLaf8B1lsWsKX7Ew3Xq.jpg"),
			ReleaseDate:      "2008-07-16",
			VoteAverage:      8.5,
			VoteCount:        30000,
			GenreIDs:         []int{28, 80, 18},
			Popularity:       88.7,
			OriginalLanguage: "en",
		},
		{
			ID:               5,
			Title:            "Pulp Fiction",
			Overview:         "The lives of two mob hitmen, a boxer, and others intertwine in four tales of violence and redemption.",
			PosterPath:       str("/d5iIlFn5s0ImszYzBPb8JPIfbXD.jpg"),
			BackdropPath:     str("/suaEOtk1N1sgg2MTM7oZd2cfVp3.jpg"),
			ReleaseDate:      "1994-09-10",
			VoteAverage:      8.5,
			VoteCount:        26000,
			GenreIDs:         []int{80, 53},
			Popularity:       78.4,
			OriginalLanguage: "en",
		},
		{
			ID:               6,
			Title:            "Fight Club",
			Overview:         "An insomniac office worker and a soap salesman build a global organization to help vent male aggression.",
			PosterPath:       str("/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"),
			BackdropPath:     str("/52AfXWuXCHn3UjD17rBruA9f5qb.jpg"),
			ReleaseDate:      "1999-10-15",
			VoteAverage:      8.4,
			VoteCount:        27000,
			GenreIDs:         []int{18},
			Popularity:       85.3,
			OriginalLanguage: "en",
		},
	}
}
