package service

import (
	"context"
	"fmt"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/service/ports"
)

// ScoreService aggregates a student's activity score from attended events and
// approved proofs.
//
// The default event rule credits the sum of every role score defined on an
// attended event, not only the role the student registered under. ownRoleOnly
// switches to crediting the student's own role score instead.
type ScoreService struct {
	studentRepo ports.StudentRepo
	proofRepo   ports.ProofRepo
	ownRoleOnly bool
}

func NewScoreService(studentRepo ports.StudentRepo, proofRepo ports.ProofRepo, ownRoleOnly bool) *ScoreService {
	return &ScoreService{
		studentRepo: studentRepo,
		proofRepo:   proofRepo,
		ownRoleOnly: ownRoleOnly,
	}
}

func (s *ScoreService) Breakdown(ctx context.Context, studentID string) (*domain.ScoreBreakdown, error) {
	events, err := s.studentRepo.AttendedEventScores(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load attended events: %w", err)
	}

	breakdown := &domain.ScoreBreakdown{NumberOfEvents: len(events)}
	for _, e := range events {
		if s.ownRoleOnly {
			breakdown.EventScore += e.OwnRoleScore
		} else {
			breakdown.EventScore += e.AllRolesScore
		}
	}

	proofs, err := s.proofRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load proofs: %w", err)
	}

	breakdown.NumberOfProofs = len(proofs)
	for _, p := range proofs {
		if p.Status != domain.ProofStatusApproved {
			continue
		}
		breakdown.NumberOfApprovedProofs++
		breakdown.ProofScore += p.Score()
	}

	return breakdown, nil
}

func (s *ScoreService) Total(ctx context.Context, studentID string) (float64, error) {
	breakdown, err := s.Breakdown(ctx, studentID)
	if err != nil {
		return 0, err
	}
	return breakdown.Total(), nil
}

// EducationProgramResult compares the student's accumulated score against the
// required activity score of their education program.
func (s *ScoreService) EducationProgramResult(ctx context.Context, studentID string) (*domain.EducationProgramResult, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	program, err := s.studentRepo.GetProgram(ctx, student.EducationProgramID)
	if err != nil {
		return nil, fmt.Errorf("get education program: %w", err)
	}

	breakdown, err := s.Breakdown(ctx, studentID)
	if err != nil {
		return nil, err
	}

	total := breakdown.Total()
	return &domain.EducationProgramResult{
		Program:   *program,
		Breakdown: *breakdown,
		Total:     total,
		Completed: total >= program.RequiredActivityScore,
	}, nil
}
