package service

import (
	"context"
	"strings"
	"time"

	"hunt-service/internal/config"
	"hunt-service/internal/models"
	"hunt-service/internal/repository"
)

// SubmissionStore is the persistence contract the engine needs. The unique
// constraint on team_id lives behind Insert: the FindCorrectByTeam pre-check
// is only a fast path, the store decides races.
type SubmissionStore interface {
	FindCorrectByTeam(ctx context.Context, teamID int) (*models.Submission, error)
	Insert(ctx context.Context, sub *models.Submission) (repository.InsertStatus, error)
	CountCorrect(ctx context.Context) (int64, error)
	ListByCreated(ctx context.Context) ([]models.Submission, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type SubmissionService struct {
	Repo   SubmissionStore
	roster map[int]struct{}
	answer string
	slots  int64
	now    func() time.Time
}

func NewSubmissionService(repo SubmissionStore, cfg *config.Config) *SubmissionService {
	roster := make(map[int]struct{}, len(cfg.TeamIDs))
	for _, id := range cfg.TeamIDs {
		roster[id] = struct{}{}
	}
	return &SubmissionService{
		Repo:   repo,
		roster: roster,
		answer: strings.TrimSpace(cfg.CorrectAnswer),
		slots:  int64(cfg.SelectionSlots),
		now:    time.Now,
	}
}

// ValidTeam reports whether teamID belongs to the configured roster.
func (s *SubmissionService) ValidTeam(teamID int) bool {
	_, ok := s.roster[teamID]
	return ok
}

// AnswerMatches compares a submitted answer against the configured one:
// trim surrounding whitespace, then case-insensitive equality. No partial
// credit, no alternates.
func (s *SubmissionService) AnswerMatches(submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), s.answer)
}

// Submit runs one attempt through the qualification rules and returns its
// Outcome. The already-answered check runs before roster validation, so a
// team that already answered correctly stays blocked whatever it resubmits.
// A non-nil error means a storage failure; the Outcome is then meaningless.
func (s *SubmissionService) Submit(ctx context.Context, teamID int, answer string) (Outcome, error) {
	existing, err := s.Repo.FindCorrectByTeam(ctx, teamID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return OutcomeAlreadyAnswered, nil
	}

	if !s.ValidTeam(teamID) {
		return OutcomeInvalidTeam, nil
	}

	if !s.AnswerMatches(answer) {
		// Not an error: the team may retry. Nothing is persisted.
		return OutcomeIncorrect, nil
	}

	sub := &models.Submission{
		TeamID:    teamID,
		Answer:    answer,
		IsCorrect: true,
		CreatedAt: s.now().UTC(),
	}
	status, err := s.Repo.Insert(ctx, sub)
	if err != nil {
		return 0, err
	}
	if status == repository.DuplicateTeam {
		// Lost a same-team race to a concurrent request; same terminal
		// outcome as the fast path above.
		return OutcomeAlreadyAnswered, nil
	}

	// Rank by count before this insert. The count is not isolated from
	// concurrent inserts by other teams; near the cutoff that race is
	// accepted (the slots are advisory, not a scarce allocation).
	count, err := s.Repo.CountCorrect(ctx)
	if err != nil {
		return 0, err
	}
	if count-1 < s.slots {
		return OutcomeSelected, nil
	}
	return OutcomeSlotsFilled, nil
}

func (s *SubmissionService) List(ctx context.Context) ([]models.Submission, error) {
	return s.Repo.ListByCreated(ctx)
}

func (s *SubmissionService) Reset(ctx context.Context) (int64, error) {
	return s.Repo.DeleteAll(ctx)
}
