package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/encoder"
	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/mq"
	"github.com/Staillim/YourSubLink-sub000/pkg/util"

	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidURL is returned when the URL is invalid
	ErrInvalidURL = errors.New("invalid URL")
	// ErrLinkNotFound is returned when the link is not found
	ErrLinkNotFound = errors.New("link not found")
	// ErrMaxCapacityReached is returned when maximum capacity is reached
	ErrMaxCapacityReached = errors.New("maximum capacity reached")
)

// LinkService handles gated-link operations
type LinkService struct {
	encoder   *encoder.Base32Encoder
	mysqlRepo MySQLRepositoryInterface
	producer  mq.ProducerInterface
	domain    string
	now       func() time.Time
}

// NewLinkService creates a new LinkService
func NewLinkService(mysqlRepo MySQLRepositoryInterface, producer mq.ProducerInterface, domain string) *LinkService {
	return &LinkService{
		encoder:   encoder.NewBase32Encoder(),
		mysqlRepo: mysqlRepo,
		producer:  producer,
		domain:    domain,
		now:       time.Now,
	}
}

// Create creates a gated link with its rules
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest) (*model.CreateLinkResponse, error) {
	if req.URL == "" {
		return nil, ErrInvalidURL
	}

	shortCode, err := s.generateWithCollision(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	rules := make([]model.Rule, 0, len(req.Rules))
	for i, rule := range req.Rules {
		rules = append(rules, model.Rule{
			Title:    rule.Title,
			URL:      rule.URL,
			Position: i,
		})
	}

	link := &model.Link{
		OwnerID:            req.OwnerID,
		ShortCode:          shortCode,
		OriginalURL:        req.URL,
		Title:              req.Title,
		Description:        req.Description,
		MonetizationStatus: model.MonetizationActive,
		Rules:              rules,
	}

	if err := s.mysqlRepo.SaveLink(ctx, link); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to save link")
		return nil, fmt.Errorf("failed to save link: %w", err)
	}

	return &model.CreateLinkResponse{
		ShortLink:   fmt.Sprintf("%s/%s", s.domain, shortCode),
		ShortCode:   shortCode,
		OriginalURL: req.URL,
		Monetizable: link.Monetizable(),
	}, nil
}

// GetByCode retrieves a link by its short code
func (s *LinkService) GetByCode(ctx context.Context, shortCode string) (*model.Link, error) {
	link, err := s.mysqlRepo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// Suspend suspends monetization for a link and notifies its owner
func (s *LinkService) Suspend(ctx context.Context, linkID int64) error {
	link, err := s.mysqlRepo.GetLinkByID(ctx, linkID)
	if err != nil {
		return ErrLinkNotFound
	}

	if err := s.mysqlRepo.SetMonetizationStatus(ctx, linkID, model.MonetizationSuspended); err != nil {
		return fmt.Errorf("failed to suspend link: %w", err)
	}

	s.notify(ctx, link.OwnerID, model.NotifyLinkSuspended, "Link suspended",
		fmt.Sprintf("Monetization for %s has been suspended.", link.ShortCode))
	return nil
}

// Activate re-enables monetization for a link
func (s *LinkService) Activate(ctx context.Context, linkID int64) error {
	if err := s.mysqlRepo.SetMonetizationStatus(ctx, linkID, model.MonetizationActive); err != nil {
		return fmt.Errorf("failed to activate link: %w", err)
	}
	return nil
}

// Delete soft-deletes a link (admin action) and notifies its owner. The
// visitor path never deletes; accrued earnings stay on the row.
func (s *LinkService) Delete(ctx context.Context, linkID int64) error {
	link, err := s.mysqlRepo.GetLinkByID(ctx, linkID)
	if err != nil {
		return ErrLinkNotFound
	}

	if err := s.mysqlRepo.DeleteLink(ctx, linkID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	s.notify(ctx, link.OwnerID, model.NotifyLinkDeleted, "Link deleted",
		fmt.Sprintf("Your link %s has been removed.", link.ShortCode))
	return nil
}

// Events returns the click-event audit log for a link, newest first
func (s *LinkService) Events(ctx context.Context, shortCode string, limit int) ([]model.ClickEvent, error) {
	link, err := s.mysqlRepo.GetLinkByCode(ctx, shortCode)
	if err != nil {
		return nil, ErrLinkNotFound
	}
	return s.mysqlRepo.GetClickEvents(ctx, link.ID, limit)
}

// generateWithCollision generates a short code with collision handling
func (s *LinkService) generateWithCollision(ctx context.Context, url string) (string, error) {
	for length := encoder.MinLength; length <= encoder.MaxLength; length++ {
		hash := util.HashString(url)

		for i := 0; i < 1000; i++ {
			shortCode := s.encoder.Encode(hash+uint64(i), length)

			exists, err := s.mysqlRepo.CheckExistsByCode(ctx, shortCode)
			if err != nil {
				return "", fmt.Errorf("failed to check short code: %w", err)
			}
			if !exists {
				return shortCode, nil
			}

			// Collision detected, increment hash
		}

		// All codes of this length are used, try longer length
	}

	return "", ErrMaxCapacityReached
}

// notify publishes a notification message; best effort
func (s *LinkService) notify(ctx context.Context, userID, kind, title, body string) {
	if s.producer == nil {
		return
	}
	msg := &mq.NotificationMessage{
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.producer.SendNotification(ctx, msg); err != nil {
		log.Error().Err(err).Str("user_id", userID).Str("kind", kind).Msg("Failed to send notification")
	}
}
