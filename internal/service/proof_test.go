package service

import (
	"context"
	"testing"
	"time"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProofService_SubmitInternal(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	proof, err := svc.SubmitInternal(context.Background(), "s1", domain.InternalProofInput{
		EventID:     "e1",
		EventRoleID: "r1",
		Description: "volunteered at the registration desk",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProofKindInternal, proof.Kind)
	assert.Equal(t, domain.ProofStatusPending, proof.Status)
	require.NotNil(t, proof.Internal)
	assert.Equal(t, "e1", proof.Internal.EventID)
}

func TestProofService_SubmitInternal_EventMissing(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.SubmitInternal(context.Background(), "s1", domain.InternalProofInput{EventID: "missing"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestProofService_SubmitExternal(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	proof, err := svc.SubmitExternal(context.Background(), "s1", domain.ExternalProofInput{
		EventName:        "City Marathon",
		OrganizationName: "Da Nang Youth Union",
		Score:            5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProofKindExternal, proof.Kind)
	require.NotNil(t, proof.External)
	assert.Equal(t, 5.0, proof.Score())
}

func TestProofService_EditSpecial_ResetsToPending(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Proof{
		ID: "p1", StudentID: "s1", Kind: domain.ProofKindSpecial,
		Status: domain.ProofStatusRejected, RejectReason: "blurry photo",
		Special: &domain.SpecialProof{Title: "old", Score: 1},
	}, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	proof, err := svc.EditSpecial(context.Background(), "p1", "s1", domain.SpecialProofInput{
		Title: "Provincial olympiad volunteer",
		Score: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ProofStatusPending, proof.Status)
	assert.Empty(t, proof.RejectReason)
	assert.Equal(t, 2.0, proof.Special.Score)
}

func TestProofService_Edit_KindMismatch(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Proof{
		ID: "p1", StudentID: "s1", Kind: domain.ProofKindExternal,
		External: &domain.ExternalProof{},
	}, nil)

	_, err := svc.EditSpecial(context.Background(), "p1", "s1", domain.SpecialProofInput{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProofService_Edit_WrongStudent(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Proof{
		ID: "p1", StudentID: "someone-else", Kind: domain.ProofKindSpecial,
		Special: &domain.SpecialProof{},
	}, nil)

	_, err := svc.EditSpecial(context.Background(), "p1", "s1", domain.SpecialProofInput{Title: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProofNotFound)
}

func TestProofService_Approve(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().GetByID(mock.Anything, "p1").Return(&domain.Proof{
		ID: "p1", Kind: domain.ProofKindSpecial, Status: domain.ProofStatusPending,
		Special: &domain.SpecialProof{},
	}, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "p1", domain.ProofStatusApproved, "").Return(nil)

	err := svc.Approve(context.Background(), "p1")

	require.NoError(t, err)
}

func TestProofService_Reject_RequiresReason(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	err := svc.Reject(context.Background(), "p1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProofService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrProofNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProofNotFound)
}

func TestProofService_SubmitSpecial_NoAttendanceAt(t *testing.T) {
	repo := mocks.NewMockProofRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	log := newTestLogger(t)

	svc := NewProofService(repo, eventRepo, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	proof, err := svc.SubmitSpecial(context.Background(), "s1", domain.SpecialProofInput{
		Title:   "Outstanding volunteer of the year",
		StartAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Score:   10,
	})

	require.NoError(t, err)
	assert.True(t, proof.AttendanceAt.IsZero())
}
