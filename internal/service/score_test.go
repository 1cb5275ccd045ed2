package service

import (
	"context"
	"testing"

	"github.com/Tannang0903/campus-events/internal/domain"
	"github.com/Tannang0903/campus-events/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScoreService_Breakdown_IgnoresUnapprovedProofs(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepo(t)
	proofRepo := mocks.NewMockProofRepo(t)

	svc := NewScoreService(studentRepo, proofRepo, false)

	studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return([]domain.AttendedEventScore{
		{EventID: "e1", AllRolesScore: 3, OwnRoleScore: 3},
	}, nil)
	proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return([]*domain.Proof{
		{
			ID: "p1", Kind: domain.ProofKindSpecial, Status: domain.ProofStatusApproved,
			Special: &domain.SpecialProof{Score: 5},
		},
		{
			ID: "p2", Kind: domain.ProofKindSpecial, Status: domain.ProofStatusPending,
			Special: &domain.SpecialProof{Score: 10},
		},
	}, nil)

	breakdown, err := svc.Breakdown(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 3.0, breakdown.EventScore)
	assert.Equal(t, 5.0, breakdown.ProofScore)
	assert.Equal(t, 8.0, breakdown.Total())
	assert.Equal(t, 1, breakdown.NumberOfEvents)
	assert.Equal(t, 2, breakdown.NumberOfProofs)
	assert.Equal(t, 1, breakdown.NumberOfApprovedProofs)
}

func TestScoreService_Breakdown_AllRolesVersusOwnRole(t *testing.T) {
	scores := []domain.AttendedEventScore{
		{EventID: "e1", AllRolesScore: 7, OwnRoleScore: 3},
		{EventID: "e2", AllRolesScore: 4, OwnRoleScore: 4},
	}

	t.Run("all roles", func(t *testing.T) {
		studentRepo := mocks.NewMockStudentRepo(t)
		proofRepo := mocks.NewMockProofRepo(t)
		svc := NewScoreService(studentRepo, proofRepo, false)

		studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return(scores, nil)
		proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return(nil, nil)

		breakdown, err := svc.Breakdown(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, 11.0, breakdown.EventScore)
	})

	t.Run("own role only", func(t *testing.T) {
		studentRepo := mocks.NewMockStudentRepo(t)
		proofRepo := mocks.NewMockProofRepo(t)
		svc := NewScoreService(studentRepo, proofRepo, true)

		studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return(scores, nil)
		proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return(nil, nil)

		breakdown, err := svc.Breakdown(context.Background(), "s1")
		require.NoError(t, err)
		assert.Equal(t, 7.0, breakdown.EventScore)
	})
}

func TestScoreService_Breakdown_InternalProofUsesRoleScore(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepo(t)
	proofRepo := mocks.NewMockProofRepo(t)

	svc := NewScoreService(studentRepo, proofRepo, false)

	studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return(nil, nil)
	proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return([]*domain.Proof{
		{
			ID: "p1", Kind: domain.ProofKindInternal, Status: domain.ProofStatusApproved,
			Internal: &domain.InternalProof{EventID: "e1", EventRoleID: "r1", RoleScore: 2.5},
		},
	}, nil)

	breakdown, err := svc.Breakdown(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 2.5, breakdown.ProofScore)
}

func TestScoreService_EducationProgramResult(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepo(t)
	proofRepo := mocks.NewMockProofRepo(t)

	svc := NewScoreService(studentRepo, proofRepo, false)

	studentRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Student{
		ID: "s1", EducationProgramID: "ep1",
	}, nil)
	studentRepo.EXPECT().GetProgram(mock.Anything, "ep1").Return(&domain.EducationProgram{
		ID: "ep1", Name: "Software Engineering", RequiredActivityScore: 10,
	}, nil)
	studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return([]domain.AttendedEventScore{
		{EventID: "e1", AllRolesScore: 6, OwnRoleScore: 6},
	}, nil)
	proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return([]*domain.Proof{
		{
			ID: "p1", Kind: domain.ProofKindExternal, Status: domain.ProofStatusApproved,
			External: &domain.ExternalProof{Score: 4},
		},
	}, nil)

	result, err := svc.EducationProgramResult(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 10.0, result.Total)
	assert.True(t, result.Completed) // exactly the required score completes
}

func TestScoreService_EducationProgramResult_Incomplete(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepo(t)
	proofRepo := mocks.NewMockProofRepo(t)

	svc := NewScoreService(studentRepo, proofRepo, false)

	studentRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Student{
		ID: "s1", EducationProgramID: "ep1",
	}, nil)
	studentRepo.EXPECT().GetProgram(mock.Anything, "ep1").Return(&domain.EducationProgram{
		ID: "ep1", RequiredActivityScore: 50,
	}, nil)
	studentRepo.EXPECT().AttendedEventScores(mock.Anything, "s1").Return(nil, nil)
	proofRepo.EXPECT().ListByStudent(mock.Anything, "s1").Return(nil, nil)

	result, err := svc.EducationProgramResult(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Total)
	assert.False(t, result.Completed)
}

func TestScoreService_StudentNotFound(t *testing.T) {
	studentRepo := mocks.NewMockStudentRepo(t)
	proofRepo := mocks.NewMockProofRepo(t)

	svc := NewScoreService(studentRepo, proofRepo, false)

	studentRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrStudentNotFound)

	_, err := svc.EducationProgramResult(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}
