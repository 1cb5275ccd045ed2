package domain

import "time"

type Student struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Fullname           string    `json:"fullname"`
	Email              string    `json:"email"`
	EducationProgramID string    `json:"education_program_id"`
	CreatedAt          time.Time `json:"created_at"`
}

type EducationProgram struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	RequiredActivityScore float64 `json:"required_activity_score"`
}

// AttendedEventScore is one attended event's scoring view: the sum of every
// role score defined on the event and the score of the role the student
// registered under.
type AttendedEventScore struct {
	EventID       string
	AllRolesScore float64
	OwnRoleScore  float64
}

// ScoreBreakdown reports how a student's total activity score is composed.
type ScoreBreakdown struct {
	EventScore             float64 `json:"event_score"`
	ProofScore             float64 `json:"proof_score"`
	NumberOfEvents         int     `json:"number_of_events"`
	NumberOfProofs         int     `json:"number_of_proofs"`
	NumberOfApprovedProofs int     `json:"number_of_approved_proofs"`
}

func (b ScoreBreakdown) Total() float64 {
	return b.EventScore + b.ProofScore
}

// EducationProgramResult compares a student's accumulated score against the
// program requirement.
type EducationProgramResult struct {
	Program   EducationProgram `json:"program"`
	Breakdown ScoreBreakdown   `json:"breakdown"`
	Total     float64          `json:"total"`
	Completed bool             `json:"completed"`
}
