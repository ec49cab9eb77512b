package service

import (
	"context"
	"time"

	"github.com/Staillim/YourSubLink-sub000/internal/model"
	"github.com/Staillim/YourSubLink-sub000/internal/repository"
)

// ErrSponsorLimitReached mirrors the repository error at the service boundary
var ErrSponsorLimitReached = repository.ErrSponsorLimitReached

// SponsorService enforces the per-link sponsor cap and filters live
// placements for the gate and for admin statistics
type SponsorService struct {
	mysqlRepo MySQLRepositoryInterface
	now       func() time.Time
}

// NewSponsorService creates a new SponsorService
func NewSponsorService(mysqlRepo MySQLRepositoryInterface) *SponsorService {
	return &SponsorService{
		mysqlRepo: mysqlRepo,
		now:       time.Now,
	}
}

// ActiveSponsors filters a link's sponsor rules down to those currently
// gating visits: active and not expired
func (s *SponsorService) ActiveSponsors(sponsors []model.SponsorRule) []model.SponsorRule {
	now := s.now()
	live := make([]model.SponsorRule, 0, len(sponsors))
	for _, sponsor := range sponsors {
		if sponsor.Live(now) {
			live = append(live, sponsor)
		}
	}
	return live
}

// CanAddSponsor reports whether the link is below the live-sponsor cap.
// Advisory for UI; the cap is enforced again inside the create transaction.
func (s *SponsorService) CanAddSponsor(ctx context.Context, linkID int64) (bool, error) {
	count, err := s.mysqlRepo.CountLiveSponsors(ctx, linkID, s.now())
	if err != nil {
		return false, err
	}
	return count < model.MaxActiveSponsorsPerLink, nil
}

// CreateSponsor attaches a sponsor placement to a link. The cap check runs
// inside the insert transaction, so concurrent admins cannot overshoot it.
func (s *SponsorService) CreateSponsor(ctx context.Context, linkID int64, req *model.CreateSponsorRequest) (*model.SponsorRule, error) {
	sponsor := &model.SponsorRule{
		LinkID:    linkID,
		Title:     req.Title,
		URL:       req.URL,
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if err := s.mysqlRepo.CreateSponsorRule(ctx, sponsor, s.now()); err != nil {
		return nil, err
	}
	return sponsor, nil
}
