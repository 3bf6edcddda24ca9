package model

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

func (m MediaType) Valid() bool {
	return m == MediaTypeMovie || m == MediaTypeTV
}

type Decision string

const (
	DecisionLike      Decision = "like"
	DecisionNope      Decision = "nope"
	DecisionSuperlike Decision = "superlike"
)

func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionNope || d == DecisionSuperlike
}

// Superlike counts as a like for matching.
func (d Decision) Positive() bool {
	return d == DecisionLike || d == DecisionSuperlike
}

type MatchRule string

const MatchRuleAnyTwo MatchRule = "any_two"

const (
	DefaultRegion = "US"

	// No O/0/1/I so codes stay readable when shared out loud.
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	RoomCodeLength   = 5
)

type User struct {
	ID          uuid.UUID
	DisplayName string
	CreatedAt   time.Time
}

type Room struct {
	ID        uuid.UUID
	Code      string
	Region    string
	MatchRule MatchRule
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

type Member struct {
	RoomID          uuid.UUID
	UserID          uuid.UUID
	DisplayName     string
	ActiveProviders []int64
	Ready           bool
}

type Swipe struct {
	RoomID    uuid.UUID
	UserID    uuid.UUID
	TitleID   int64
	MediaType MediaType
	Decision  Decision
	CreatedAt time.Time
}

// Match carries a snapshot of title metadata taken at match time so that
// listing matches never needs a catalog round-trip.
type Match struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	TitleID     int64
	MediaType   MediaType
	Title       string
	Overview    string
	PosterPath  string
	ReleaseDate string
	VoteAverage float64
	MatchedAt   time.Time
}

// TitleCard is serialized as-is into the stack cache and socket events,
// so it keeps wire-format JSON tags.
type TitleCard struct {
	TitleID      int64     `json:"tmdbId"`
	MediaType    MediaType `json:"mediaType"`
	Title        string    `json:"title"`
	Overview     string    `json:"overview"`
	PosterPath   *string   `json:"posterPath"`
	BackdropPath *string   `json:"backdropPath"`
	ReleaseDate  *string   `json:"releaseDate"`
	VoteAverage  float64   `json:"voteAverage"`
	GenreIDs     []int64   `json:"genreIds"`
	ProviderIDs  []int64   `json:"providerIds"`
}

type Stack struct {
	Cards   []TitleCard
	Page    int
	HasMore bool
}

type MatchFound struct {
	RoomID    string    `json:"roomId"`
	TitleID   int64     `json:"tmdbId"`
	MediaType MediaType `json:"mediaType"`
	MatchedAt string    `json:"matchedAt"`
	Title     TitleCard `json:"title"`
}
