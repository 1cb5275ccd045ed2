package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ProofService struct {
	repo      ports.ProofRepo
	eventRepo ports.EventRepo
	log       logger.Logger
}

func NewProofService(repo ports.ProofRepo, eventRepo ports.EventRepo, log logger.Logger) *ProofService {
	return &ProofService{repo: repo, eventRepo: eventRepo, log: log}
}

func (s *ProofService) SubmitInternal(ctx context.Context, studentID string, input domain.InternalProofInput) (*domain.Proof, error) {
	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check referenced event: %w", err)
	}

	proof := newProof(studentID, domain.ProofKindInternal, input.Description, input.ImageURL, input.AttendanceAt)
	proof.Internal = &domain.InternalProof{
		EventID:     input.EventID,
		EventRoleID: input.EventRoleID,
	}

	return s.create(ctx, proof)
}

func (s *ProofService) SubmitExternal(ctx context.Context, studentID string, input domain.ExternalProofInput) (*domain.Proof, error) {
	proof := newProof(studentID, domain.ProofKindExternal, input.Description, input.ImageURL, input.AttendanceAt)
	proof.External = &domain.ExternalProof{
		EventName:        input.EventName,
		OrganizationName: input.OrganizationName,
		Address:          input.Address,
		StartAt:          input.StartAt,
		EndAt:            input.EndAt,
		Role:             input.Role,
		Score:            input.Score,
	}

	return s.create(ctx, proof)
}

func (s *ProofService) SubmitSpecial(ctx context.Context, studentID string, input domain.SpecialProofInput) (*domain.Proof, error) {
	proof := newProof(studentID, domain.ProofKindSpecial, input.Description, input.ImageURL, time.Time{})
	proof.Special = &domain.SpecialProof{
		Title:   input.Title,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
		Role:    input.Role,
		Score:   input.Score,
	}

	return s.create(ctx, proof)
}

// EditInternal rewrites an internal proof's payload. The kind chosen at
// creation is immutable; editing resets the proof to Pending for another
// moderation round.
func (s *ProofService) EditInternal(ctx context.Context, id, studentID string, input domain.InternalProofInput) (*domain.Proof, error) {
	proof, err := s.loadOwned(ctx, id, studentID, domain.ProofKindInternal)
	if err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check referenced event: %w", err)
	}

	proof.Description = input.Description
	proof.ImageURL = input.ImageURL
	proof.AttendanceAt = input.AttendanceAt
	proof.Internal = &domain.InternalProof{
		EventID:     input.EventID,
		EventRoleID: input.EventRoleID,
	}

	return s.update(ctx, proof)
}

func (s *ProofService) EditExternal(ctx context.Context, id, studentID string, input domain.ExternalProofInput) (*domain.Proof, error) {
	proof, err := s.loadOwned(ctx, id, studentID, domain.ProofKindExternal)
	if err != nil {
		return nil, err
	}

	proof.Description = input.Description
	proof.ImageURL = input.ImageURL
	proof.AttendanceAt = input.AttendanceAt
	proof.External = &domain.ExternalProof{
		EventName:        input.EventName,
		OrganizationName: input.OrganizationName,
		Address:          input.Address,
		StartAt:          input.StartAt,
		EndAt:            input.EndAt,
		Role:             input.Role,
		Score:            input.Score,
	}

	return s.update(ctx, proof)
}

func (s *ProofService) EditSpecial(ctx context.Context, id, studentID string, input domain.SpecialProofInput) (*domain.Proof, error) {
	proof, err := s.loadOwned(ctx, id, studentID, domain.ProofKindSpecial)
	if err != nil {
		return nil, err
	}

	proof.Description = input.Description
	proof.ImageURL = input.ImageURL
	proof.Special = &domain.SpecialProof{
		Title:   input.Title,
		StartAt: input.StartAt,
		EndAt:   input.EndAt,
		Role:    input.Role,
		Score:   input.Score,
	}

	return s.update(ctx, proof)
}

func (s *ProofService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get proof: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete proof: %w", err)
	}

	s.log.Info("proof deleted", logger.String("proof_id", id))
	return nil
}

func (s *ProofService) Approve(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get proof: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.ProofStatusApproved, ""); err != nil {
		return fmt.Errorf("approve proof: %w", err)
	}

	s.log.Info("proof approved", logger.String("proof_id", id))
	return nil
}

func (s *ProofService) Reject(ctx context.Context, id, reason string) error {
	if reason == "" {
		return fmt.Errorf("%w: reject reason is required", domain.ErrValidation)
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get proof: %w", err)
	}
	if err := s.repo.UpdateStatus(ctx, id, domain.ProofStatusRejected, reason); err != nil {
		return fmt.Errorf("reject proof: %w", err)
	}

	s.log.Info("proof rejected", logger.String("proof_id", id))
	return nil
}

func (s *ProofService) GetByID(ctx context.Context, id string) (*domain.Proof, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProofService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Proof, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *ProofService) create(ctx context.Context, proof *domain.Proof) (*domain.Proof, error) {
	if err := s.repo.Create(ctx, proof); err != nil {
		return nil, fmt.Errorf("create proof: %w", err)
	}

	s.log.Info("proof submitted",
		logger.String("proof_id", proof.ID),
		logger.String("student_id", proof.StudentID),
		logger.String("kind", string(proof.Kind)),
	)

	return proof, nil
}

func (s *ProofService) update(ctx context.Context, proof *domain.Proof) (*domain.Proof, error) {
	proof.Status = domain.ProofStatusPending
	proof.RejectReason = ""
	proof.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, proof); err != nil {
		return nil, fmt.Errorf("update proof: %w", err)
	}

	return proof, nil
}

func (s *ProofService) loadOwned(ctx context.Context, id, studentID string, kind domain.ProofKind) (*domain.Proof, error) {
	proof, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get proof: %w", err)
	}
	if proof.StudentID != studentID {
		return nil, domain.ErrProofNotFound
	}
	if proof.Kind != kind {
		return nil, fmt.Errorf("%w: proof kind is immutable", domain.ErrValidation)
	}
	return proof, nil
}

func newProof(studentID string, kind domain.ProofKind, description, imageURL string, attendanceAt time.Time) *domain.Proof {
	now := time.Now().UTC()
	return &domain.Proof{
		ID:           uuid.New().String(),
		StudentID:    studentID,
		Kind:         kind,
		Status:       domain.ProofStatusPending,
		Description:  description,
		ImageURL:     imageURL,
		AttendanceAt: attendanceAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
