package domain

import "time"

type ProofStatus string

const (
	ProofStatusPending  ProofStatus = "Pending"
	ProofStatusApproved ProofStatus = "Approved"
	ProofStatusRejected ProofStatus = "Rejected"
)

type ProofKind string

const (
	ProofKindInternal ProofKind = "Internal"
	ProofKindExternal ProofKind = "External"
	ProofKindSpecial  ProofKind = "Special"
)

// Proof is a tagged union: Kind selects which of the three payload pointers is
// populated. Consumers switch on Kind, never on pointer nil-ness.
type Proof struct {
	ID           string      `json:"id"`
	StudentID    string      `json:"student_id"`
	Kind         ProofKind   `json:"kind"`
	Status       ProofStatus `json:"status"`
	Description  string      `json:"description"`
	ImageURL     string      `json:"image_url"`
	RejectReason string      `json:"reject_reason,omitempty"`
	AttendanceAt time.Time   `json:"attendance_at"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	Internal *InternalProof `json:"internal,omitempty"`
	External *ExternalProof `json:"external,omitempty"`
	Special  *SpecialProof  `json:"special,omitempty"`
}

// InternalProof references an event and role already in the system. EventName
// and RoleScore are loaded from the referenced rows, not stored on the proof.
type InternalProof struct {
	EventID     string  `json:"event_id"`
	EventRoleID string  `json:"event_role_id"`
	EventName   string  `json:"event_name,omitempty"`
	RoleName    string  `json:"role_name,omitempty"`
	RoleScore   float64 `json:"role_score,omitempty"`
}

type ExternalProof struct {
	EventName        string    `json:"event_name"`
	OrganizationName string    `json:"organization_name"`
	Address          string    `json:"address"`
	StartAt          time.Time `json:"start_at"`
	EndAt            time.Time `json:"end_at"`
	Role             string    `json:"role"`
	Score            float64   `json:"score"`
}

type SpecialProof struct {
	Title   string    `json:"title"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Role    string    `json:"role"`
	Score   float64   `json:"score"`
}

// Score returns the proof's contribution when approved: the linked role's
// score for internal proofs, the stored value otherwise.
func (p *Proof) Score() float64 {
	switch p.Kind {
	case ProofKindInternal:
		if p.Internal == nil {
			return 0
		}
		return p.Internal.RoleScore
	case ProofKindExternal:
		if p.External == nil {
			return 0
		}
		return p.External.Score
	case ProofKindSpecial:
		if p.Special == nil {
			return 0
		}
		return p.Special.Score
	}
	return 0
}

type InternalProofInput struct {
	EventID      string
	EventRoleID  string
	AttendanceAt time.Time
	Description  string
	ImageURL     string
}

type ExternalProofInput struct {
	EventName        string
	OrganizationName string
	Address          string
	StartAt          time.Time
	EndAt            time.Time
	Role             string
	Score            float64
	AttendanceAt     time.Time
	Description      string
	ImageURL         string
}

type SpecialProofInput struct {
	Title       string
	StartAt     time.Time
	EndAt       time.Time
	Role        string
	Score       float64
	Description string
	ImageURL    string
}
