package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/streamsync/core/internal/config"
	"github.com/streamsync/core/internal/model"
)

// Client talks to the TMDb discovery API. Every call is bounded by the
// configured timeout; callers treat failures per their own degrade policy.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(cfg config.Catalog) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type discoverResultDTO struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`          // movies
	Name         string  `json:"name"`           // tv
	Overview     string  `json:"overview"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	ReleaseDate  string  `json:"release_date"`   // movies
	FirstAirDate string  `json:"first_air_date"` // tv
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int64 `json:"genre_ids"`
}

type discoverResponseDTO struct {
	Page         int                 `json:"page"`
	TotalPages   int                 `json:"total_pages"`
	TotalResults int                 `json:"total_results"`
	Results      []discoverResultDTO `json:"results"`
}

// Discover queries /discover/{mediaType} filtered to flatrate availability on
// the given providers in the given region, sorted by descending popularity.
func (c *Client) Discover(ctx context.Context, mediaType model.MediaType, providers []int64, region string, page int) ([]model.TitleCard, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("watch_region", region)
	params.Set("with_watch_monetization_types", "flatrate")
	params.Set("with_watch_providers", joinProviders(providers))
	params.Set("sort_by", "popularity.desc")
	params.Set("page", strconv.Itoa(page))

	endpoint := fmt.Sprintf("%s/discover/%s?%s", c.baseURL, mediaType, params.Encode())

	var resp discoverResponseDTO
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	cards := make([]model.TitleCard, 0, len(resp.Results))
	for _, r := range resp.Results {
		cards = append(cards, r.toCard(mediaType, providers))
	}

	return cards, nil
}

// Details fetches a single title for match metadata enrichment.
func (c *Client) Details(ctx context.Context, titleID int64, mediaType model.MediaType) (model.TitleCard, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)

	endpoint := fmt.Sprintf("%s/%s/%d?%s", c.baseURL, mediaType, titleID, params.Encode())

	var r discoverResultDTO
	if err := c.get(ctx, endpoint, &r); err != nil {
		return model.TitleCard{}, err
	}

	card := r.toCard(mediaType, nil)
	card.TitleID = titleID
	return card, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (r discoverResultDTO) toCard(mediaType model.MediaType, providers []int64) model.TitleCard {
	title := r.Title
	if title == "" {
		title = r.Name
	}
	if title == "" {
		title = "Unknown"
	}

	var releaseDate *string
	if date := firstNonEmpty(r.ReleaseDate, r.FirstAirDate); date != "" {
		releaseDate = &date
	}

	genreIDs := r.GenreIDs
	if genreIDs == nil {
		genreIDs = []int64{}
	}
	if providers == nil {
		providers = []int64{}
	}

	return model.TitleCard{
		TitleID:      r.ID,
		MediaType:    mediaType,
		Title:        title,
		Overview:     r.Overview,
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		ReleaseDate:  releaseDate,
		VoteAverage:  r.VoteAverage,
		GenreIDs:     genreIDs,
		ProviderIDs:  providers,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// TMDb expects the provider filter as id|id|id (match any).
func joinProviders(providers []int64) string {
	parts := make([]string, len(providers))
	for i, id := range providers {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, "|")
}
