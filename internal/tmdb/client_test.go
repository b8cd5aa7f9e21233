package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rgray/cinelog/internal/adapter"
	"github.com/rgray/cinelog/internal/domain"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-key", "", adapter.NullLogger()), srv
}

func TestTrendingMapsMovieAndTVFields(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/tv/day" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "test-key" {
			t.Errorf("missing api key")
		}
		w.Write([]byte(`{
			"page": 1,
			"total_pages": 3,
			"results": [
				{"id": 1396, "name": "Breaking Bad", "first_air_date": "2008-01-20", "vote_average": 8.9, "genre_ids": [18, 80]}
			]
		}`))
	})
	defer srv.Close()

	page, err := c.Trending(context.Background(), domain.MediaKindTV, 1)
	if err != nil {
		t.Fatalf("trending: %v", err)
	}
	if page.Page != 1 || page.TotalPages != 3 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	item := page.Results[0]
	if item.Title != "Breaking Bad" {
		t.Errorf("name not mapped to title, got %q", item.Title)
	}
	if item.ReleaseDate != "2008-01-20" {
		t.Errorf("first_air_date not mapped, got %q", item.ReleaseDate)
	}
	if item.Kind != domain.MediaKindTV {
		t.Errorf("kind not stamped, got %q", item.Kind)
	}
	if len(item.GenreIDs) != 2 || item.GenreIDs[0] != 18 {
		t.Errorf("genre ids not mapped: %v", item.GenreIDs)
	}
}

func TestSearchSetsQueryParams(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("query") != "the matrix" {
			t.Errorf("query param missing, got %q", q.Get("query"))
		}
		if q.Get("include_adult") != "false" {
			t.Errorf("include_adult not set")
		}
		if q.Get("page") != "2" {
			t.Errorf("page not set, got %q", q.Get("page"))
		}
		w.Write([]byte(`{"page": 2, "total_pages": 2, "results": []}`))
	})
	defer srv.Close()

	page, err := c.Search(context.Background(), domain.MediaKindMovie, "the matrix", 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if page.Page != 2 || len(page.Results) != 0 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestDiscoverYearParamPerKind(t *testing.T) {
	var gotQuery map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"primary_release_year": q.Get("primary_release_year"),
			"first_air_date_year":  q.Get("first_air_date_year"),
			"with_genres":          q.Get("with_genres"),
			"vote_average.gte":     q.Get("vote_average.gte"),
			"sort_by":              q.Get("sort_by"),
		}
		w.Write([]byte(`{"page": 1, "total_pages": 1, "results": []}`))
	})
	defer srv.Close()

	filter := domain.DiscoverFilter{GenreID: 28, Year: "1999", MinVote: 7.5}

	if _, err := c.Discover(context.Background(), domain.MediaKindMovie, filter, 1); err != nil {
		t.Fatalf("discover movie: %v", err)
	}
	if gotQuery["primary_release_year"] != "1999" || gotQuery["first_air_date_year"] != "" {
		t.Errorf("movie year params wrong: %+v", gotQuery)
	}
	if gotQuery["with_genres"] != "28" || gotQuery["vote_average.gte"] != "7.5" {
		t.Errorf("filter params wrong: %+v", gotQuery)
	}
	if gotQuery["sort_by"] != "popularity.desc" {
		t.Errorf("default sort not applied: %+v", gotQuery)
	}

	if _, err := c.Discover(context.Background(), domain.MediaKindTV, filter, 1); err != nil {
		t.Fatalf("discover tv: %v", err)
	}
	if gotQuery["first_air_date_year"] != "1999" || gotQuery["primary_release_year"] != "" {
		t.Errorf("tv year params wrong: %+v", gotQuery)
	}
}

func TestDetailCarriesGenreNames(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"release_date": "1999-03-30",
			"runtime": 136,
			"genres": [{"id": 28, "name": "Action"}, {"id": 878, "name": "Science Fiction"}]
		}`))
	})
	defer srv.Close()

	item, err := c.Detail(context.Background(), domain.MediaKindMovie, 603)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if item.Runtime != 136 {
		t.Errorf("runtime not mapped, got %d", item.Runtime)
	}
	if len(item.Genres) != 2 || item.Genres[1] != "Science Fiction" {
		t.Errorf("genre names not mapped: %v", item.Genres)
	}
	if len(item.GenreIDs) != 2 || item.GenreIDs[0] != 28 {
		t.Errorf("genre ids not backfilled: %v", item.GenreIDs)
	}
}

func TestGenres(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 18, "name": "Drama"}]}`))
	})
	defer srv.Close()

	genres, err := c.Genres(context.Background(), domain.MediaKindMovie)
	if err != nil {
		t.Fatalf("genres: %v", err)
	}
	if len(genres) != 2 || genres[0].Name != "Action" || genres[1].ID != 18 {
		t.Fatalf("unexpected genres: %+v", genres)
	}
}

func TestUnauthorizedMapsToAuthFailed(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	defer srv.Close()

	_, err := c.Trending(context.Background(), domain.MediaKindMovie, 1)
	if !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestNotFoundMapsToItemNotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	_, err := c.Detail(context.Background(), domain.MediaKindMovie, 999999)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestNetworkErrorMapsToCatalogUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // client now dials a dead server

	c := NewClient(srv.URL, "test-key", "", adapter.NullLogger())
	_, err := c.Trending(context.Background(), domain.MediaKindMovie, 1)
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestConfiguredLanguageSentOnRequests(t *testing.T) {
	var gotLang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("language")
		w.Write([]byte(`{"page": 1, "total_pages": 1, "results": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "de-DE", adapter.NullLogger())
	if _, err := c.Popular(context.Background(), domain.MediaKindMovie, 1); err != nil {
		t.Fatalf("popular: %v", err)
	}
	if gotLang != "de-DE" {
		t.Fatalf("expected configured language on the wire, got %q", gotLang)
	}

	// Empty language falls back to the default
	c = NewClient(srv.URL, "test-key", "", adapter.NullLogger())
	if _, err := c.Popular(context.Background(), domain.MediaKindMovie, 1); err != nil {
		t.Fatalf("popular: %v", err)
	}
	if gotLang != "en-US" {
		t.Fatalf("expected default language, got %q", gotLang)
	}
}
