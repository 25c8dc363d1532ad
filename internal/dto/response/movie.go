package response

import "video-rental/internal/data/entity"

// MovieResponse echoes the embedded genre snapshot, not the live genre
type MovieResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Genre           GenreSnapshot `json:"genre"`
	NumberInStock   int           `json:"numberInStock"`
	DailyRentalRate float64       `json:"dailyRentalRate"`
}

type GenreSnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:    movie.ID.String(),
		Title: movie.Title,
		Genre: GenreSnapshot{
			ID:   movie.GenreID.String(),
			Name: movie.GenreName,
		},
		NumberInStock:   movie.NumberInStock,
		DailyRentalRate: movie.DailyRentalRate,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
