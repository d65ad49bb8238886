package app

import (
	"context"
	"errors"
	"strings"

	"tripvote/internal/domain"
)

// CommentService scopes comments to destinations. Edits and deletes are
// allowed when the requester's display name equals the stored author name;
// this is a courtesy check, not access control.
type CommentService struct {
	comments     domain.CommentRepository
	destinations domain.DestinationRepository
}

func NewCommentService(c domain.CommentRepository, d domain.DestinationRepository) *CommentService {
	return &CommentService{comments: c, destinations: d}
}

// List returns the destination's comments, newest first.
func (s *CommentService) List(ctx context.Context, destinationID string) ([]domain.Comment, error) {
	return s.comments.ListComments(ctx, destinationID)
}

func (s *CommentService) Create(ctx context.Context, destinationID, content, authorName string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" || strings.TrimSpace(authorName) == "" {
		return domain.Comment{}, domain.Invalid("Content and author name are required.")
	}
	ok, err := s.destinations.DestinationExists(ctx, destinationID)
	if err != nil {
		return domain.Comment{}, err
	}
	if !ok {
		return domain.Comment{}, domain.NotFound("Destination not found.")
	}

	ts := now()
	c := domain.Comment{
		ID:            newID(),
		DestinationID: destinationID,
		Content:       content,
		AuthorName:    authorName,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if err := s.comments.InsertComment(ctx, c); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Comment{}, domain.NotFound("Destination not found.")
		}
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, destinationID, commentID, content, requesterAuthorName string) (domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, domain.Invalid("Content is required.")
	}
	c, err := s.owned(ctx, destinationID, commentID, requesterAuthorName, "You can only edit your own comments.")
	if err != nil {
		return domain.Comment{}, err
	}
	c.Content = content
	c.UpdatedAt = now()
	if err := s.comments.UpdateComment(ctx, c); err != nil {
		return domain.Comment{}, err
	}
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, destinationID, commentID, requesterAuthorName string) error {
	if strings.TrimSpace(requesterAuthorName) == "" {
		return domain.Invalid("Author name is required.")
	}
	if _, err := s.owned(ctx, destinationID, commentID, requesterAuthorName, "You can only delete your own comments."); err != nil {
		return err
	}
	err := s.comments.DeleteComment(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NotFound("Comment not found.")
	}
	return err
}

// owned loads the destination's comment and checks the requester wrote it.
// A comment under another destination is reported as missing.
func (s *CommentService) owned(ctx context.Context, destinationID, commentID, requester, forbidden string) (domain.Comment, error) {
	c, err := s.comments.GetComment(ctx, commentID)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && c.DestinationID != destinationID) {
		return domain.Comment{}, domain.NotFound("Comment not found.")
	}
	if err != nil {
		return domain.Comment{}, err
	}
	if c.AuthorName != requester {
		return domain.Comment{}, domain.Forbidden(forbidden)
	}
	return c, nil
}
