package domain

import "context"

type DestinationRepository interface {
	CreateDestination(ctx context.Context, d Destination) error
	UpdateDestination(ctx context.Context, d Destination) error
	DeleteDestination(ctx context.Context, id string) error
	GetDestination(ctx context.Context, id string) (Destination, error)
	DestinationExists(ctx context.Context, id string) (bool, error)

	// ListDestinationViews joins live vote/comment counts for voterID.
	ListDestinationViews(ctx context.Context, voterID string) ([]DestinationView, error)
	GetDestinationView(ctx context.Context, id, voterID string) (DestinationView, error)
	// ListDestinations returns bare rows, newest first.
	ListDestinations(ctx context.Context) ([]Destination, error)
}

type VoteRepository interface {
	FindVote(ctx context.Context, destinationID, voterID string) (Vote, error)
	// InsertVote returns ErrConflict when the (destination, voter) pair exists.
	InsertVote(ctx context.Context, destinationID, voterID string) error
	// DeleteVote reports whether a row was removed.
	DeleteVote(ctx context.Context, destinationID, voterID string) (bool, error)
	CountVotes(ctx context.Context, destinationID string) (int, error)
}

type CommentRepository interface {
	ListComments(ctx context.Context, destinationID string) ([]Comment, error)
	InsertComment(ctx context.Context, c Comment) error
	GetComment(ctx context.Context, id string) (Comment, error)
	UpdateComment(ctx context.Context, c Comment) error
	DeleteComment(ctx context.Context, id string) error
}

type Geocoder interface {
	// Geocode returns ErrNotFound when the address has no match.
	Geocode(ctx context.Context, address string) (Coords, error)
}

type WeatherArchive interface {
	DailyTemps(ctx context.Context, c Coords, startDate, endDate string) (DailyTemps, error)
}

type ListingPages interface {
	// ImageMeta returns the raw og:image / twitter:image value of a page,
	// or "" when the page has none.
	ImageMeta(ctx context.Context, pageURL string) (string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type VoterTokens interface {
	// GetOrCreate returns the token stored under key, storing candidate
	// first when none exists yet.
	GetOrCreate(ctx context.Context, key, candidate string) (string, error)
}
