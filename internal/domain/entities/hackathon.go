package entities

import (
	"time"

	"github.com/google/uuid"
)

type ParticipantRole string

const (
	ParticipantRoleLeader ParticipantRole = "LEADER"
	ParticipantRoleMember ParticipantRole = "MEMBER"
)

func (r ParticipantRole) Valid() bool {
	return r == ParticipantRoleLeader || r == ParticipantRoleMember
}

// HackathonTeam owns its participants; deleting a team deletes them too.
type HackathonTeam struct {
	ID                uuid.UUID              `json:"id"`
	TeamName          string                 `json:"team_name"`
	TotalParticipants int                    `json:"total_participants"`
	Participants      []HackathonParticipant `json:"participants"`
	CreatedAt         time.Time              `json:"created_at"`
}

// HackathonParticipant belongs to exactly one team. Position keeps the order
// in which participants were submitted.
type HackathonParticipant struct {
	ID        uuid.UUID       `json:"id"`
	TeamID    uuid.UUID       `json:"team"`
	FullName  string          `json:"full_name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	Branch    string          `json:"branch"`
	Section   string          `json:"section"`
	Year      string          `json:"year"`
	Role      ParticipantRole `json:"role"`
	Position  int             `json:"-"`
	CreatedAt time.Time       `json:"-"`
}
