package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"tripvote/internal/domain"
)

const (
	maxToggleAttempts = 3
	// Matches the votes.voter_id column width.
	maxVoterIDLen = 191
)

type VoteService struct {
	votes        domain.VoteRepository
	destinations domain.DestinationRepository
}

func NewVoteService(v domain.VoteRepository, d domain.DestinationRepository) *VoteService {
	return &VoteService{votes: v, destinations: d}
}

// Toggle adds the voter's vote when absent and removes it when present.
// A unique-key conflict on insert means a concurrent toggle created the vote
// first; the toggle is retried and then sees the vote as existing.
func (s *VoteService) Toggle(ctx context.Context, destinationID, voterID string) (domain.VoteState, error) {
	if err := checkVoterID(voterID); err != nil {
		return domain.VoteState{}, err
	}
	if err := s.requireDestination(ctx, destinationID); err != nil {
		return domain.VoteState{}, err
	}

	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		hasVoted, err := s.toggleOnce(ctx, destinationID, voterID)
		if errors.Is(err, domain.ErrConflict) {
			log.Debug().Str("destination", destinationID).Int("attempt", attempt).Msg("vote insert raced, retrying")
			continue
		}
		if err != nil {
			return domain.VoteState{}, err
		}
		return s.state(ctx, destinationID, hasVoted)
	}
	return domain.VoteState{}, fmt.Errorf("toggle vote on %s: still conflicting after %d attempts", destinationID, maxToggleAttempts)
}

func (s *VoteService) toggleOnce(ctx context.Context, destinationID, voterID string) (bool, error) {
	_, err := s.votes.FindVote(ctx, destinationID, voterID)
	switch {
	case err == nil:
		// A zero-row delete means someone else removed it; the outcome is the same.
		if _, err := s.votes.DeleteVote(ctx, destinationID, voterID); err != nil {
			return false, err
		}
		return false, nil
	case !errors.Is(err, domain.ErrNotFound):
		return false, err
	}

	if err := s.votes.InsertVote(ctx, destinationID, voterID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.NotFound("Destination not found")
		}
		return false, err
	}
	return true, nil
}

// Remove deletes the voter's vote if there is one.
func (s *VoteService) Remove(ctx context.Context, destinationID, voterID string) (domain.VoteState, error) {
	if err := checkVoterID(voterID); err != nil {
		return domain.VoteState{}, err
	}
	if _, err := s.votes.DeleteVote(ctx, destinationID, voterID); err != nil {
		return domain.VoteState{}, err
	}
	return s.state(ctx, destinationID, false)
}

func (s *VoteService) state(ctx context.Context, destinationID string, hasVoted bool) (domain.VoteState, error) {
	n, err := s.votes.CountVotes(ctx, destinationID)
	if err != nil {
		return domain.VoteState{}, err
	}
	return domain.VoteState{VoteCount: n, HasVoted: hasVoted}, nil
}

func (s *VoteService) requireDestination(ctx context.Context, id string) error {
	ok, err := s.destinations.DestinationExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound("Destination not found")
	}
	return nil
}

func checkVoterID(voterID string) error {
	if strings.TrimSpace(voterID) == "" {
		return domain.Invalid("voterId is required")
	}
	if utf8.RuneCountInString(voterID) > maxVoterIDLen {
		return domain.Invalid("voterId is too long")
	}
	return nil
}
