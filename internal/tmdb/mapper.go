package tmdb

import "github.com/rgray/cinelog/internal/domain"

// mapItem converts a list-endpoint result to a domain CatalogItem
func mapItem(r itemResult, kind domain.MediaKind) domain.CatalogItem {
	item := domain.CatalogItem{
		ID:           r.ID,
		Title:        r.Title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  r.ReleaseDate,
		VoteAverage:  r.VoteAverage,
		Popularity:   r.Popularity,
		GenreIDs:     r.GenreIDs,
		Kind:         kind,
	}
	// TV payloads use name/first_air_date
	if item.Title == "" {
		item.Title = r.Name
	}
	if item.ReleaseDate == "" {
		item.ReleaseDate = r.FirstAirDate
	}
	return item
}

// mapPage converts a list-endpoint response to a domain CatalogPage
func mapPage(r *pageResponse, kind domain.MediaKind) *domain.CatalogPage {
	page := &domain.CatalogPage{
		Results:    make([]domain.CatalogItem, 0, len(r.Results)),
		Page:       r.Page,
		TotalPages: r.TotalPages,
	}
	for _, item := range r.Results {
		page.Results = append(page.Results, mapItem(item, kind))
	}
	return page
}

// mapDetail converts a detail-endpoint result, carrying the genre names
func mapDetail(r *detailResult, kind domain.MediaKind) *domain.CatalogItem {
	item := mapItem(r.itemResult, kind)
	item.Runtime = r.Runtime
	for _, g := range r.Genres {
		item.Genres = append(item.Genres, g.Name)
		item.GenreIDs = append(item.GenreIDs, g.ID)
	}
	return &item
}

// mapGenres converts the genre list response
func mapGenres(r *genreListResponse) []domain.Genre {
	genres := make([]domain.Genre, 0, len(r.Genres))
	for _, g := range r.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres
}
