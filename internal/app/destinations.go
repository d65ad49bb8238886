package app

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tripvote/internal/domain"
)

const (
	SortNewest = ""
	SortVotes  = "votes"
	SortName   = "name"
)

type DestinationService struct {
	repo domain.DestinationRepository
}

func NewDestinationService(r domain.DestinationRepository) *DestinationService {
	return &DestinationService{repo: r}
}

// List returns every destination with live aggregates for q.VoterID.
// When the vote/comment tables are missing it serves bare rows with zeroed
// aggregates instead of failing.
func (s *DestinationService) List(ctx context.Context, q domain.DestinationsQuery) ([]domain.DestinationView, error) {
	views, err := s.repo.ListDestinationViews(ctx, q.VoterID)
	if errors.Is(err, domain.ErrSchemaUnavailable) {
		log.Warn().Err(err).Msg("aggregates unavailable, listing bare destinations")
		bare, berr := s.repo.ListDestinations(ctx)
		if berr != nil {
			return nil, berr
		}
		views = make([]domain.DestinationView, len(bare))
		for i, d := range bare {
			views[i] = domain.DestinationView{Destination: d}
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	sortViews(views, q.Sort)
	return views, nil
}

// sortViews reorders the newest-first slice in place; unknown keys keep it.
func sortViews(v []domain.DestinationView, key string) {
	switch key {
	case SortVotes:
		sort.SliceStable(v, func(i, j int) bool { return v[i].VoteCount > v[j].VoteCount })
	case SortName:
		// Collator is not safe for concurrent use; build one per call.
		c := collate.New(language.English, collate.IgnoreCase, collate.IgnoreDiacritics)
		sort.SliceStable(v, func(i, j int) bool { return c.CompareString(v[i].Name, v[j].Name) < 0 })
	}
}

func (s *DestinationService) Get(ctx context.Context, id, voterID string) (domain.DestinationView, error) {
	v, err := s.repo.GetDestinationView(ctx, id, voterID)
	if errors.Is(err, domain.ErrSchemaUnavailable) {
		log.Warn().Err(err).Str("id", id).Msg("aggregates unavailable, serving bare destination")
		var d domain.Destination
		d, err = s.repo.GetDestination(ctx, id)
		v = domain.DestinationView{Destination: d}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DestinationView{}, domain.NotFound("Destination not found.")
	}
	if err != nil {
		return domain.DestinationView{}, err
	}
	return v, nil
}

func (s *DestinationService) Create(ctx context.Context, payload map[string]any) (domain.Destination, error) {
	d, err := mapDestination(payload)
	if err != nil {
		return domain.Destination{}, err
	}
	d.ID = newID()
	d.CreatedAt = now()
	d.UpdatedAt = d.CreatedAt
	if err := s.repo.CreateDestination(ctx, d); err != nil {
		return domain.Destination{}, err
	}
	return d, nil
}

// Update replaces every field of destination id with payload.
func (s *DestinationService) Update(ctx context.Context, id string, payload map[string]any) (domain.Destination, error) {
	d, err := mapDestination(payload)
	if err != nil {
		return domain.Destination{}, err
	}
	d.ID = id
	d.UpdatedAt = now()
	if err := s.repo.UpdateDestination(ctx, d); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Destination{}, domain.NotFound("Destination not found.")
		}
		return domain.Destination{}, err
	}
	return s.repo.GetDestination(ctx, id)
}

// Delete removes the destination; its votes and comments go with it.
func (s *DestinationService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteDestination(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("Destination not found.")
	}
	return err
}
