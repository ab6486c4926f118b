package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"corpsite.backend/internal/domain/entities"
	"corpsite.backend/internal/usecases"
)

const teamBody = `{
	"team_name": "Null Pointers",
	"total_participants": 3,
	"participants": [
		{"full_name": "Ann", "email": "ann@example.com", "phone": "1", "branch": "CSE", "section": "A", "year": "3", "role": "LEADER"},
		{"full_name": "Bob", "email": "bob@example.com", "phone": "2", "branch": "ECE", "section": "B", "year": "2", "role": "MEMBER"},
		{"full_name": "Cy", "email": "cy@example.com", "phone": "3", "branch": "ME", "section": "C", "year": "1", "role": "MEMBER"}
	]
}`

type warningRecorder struct {
	kind     string
	warnings []string
}

func (w *warningRecorder) hook(_ context.Context, kind string, warnings []string) {
	w.kind = kind
	w.warnings = append(w.warnings, warnings...)
}

func participants(team *entities.HackathonTeam, role entities.ParticipantRole) []*entities.HackathonParticipant {
	var out []*entities.HackathonParticipant
	for i := range team.Participants {
		if team.Participants[i].Role == role {
			out = append(out, &team.Participants[i])
		}
	}
	return out
}

func TestHackathonPipeline_Submit(t *testing.T) {
	repo := new(MockHackathonRepository)
	queue := &queueStub{}
	warn := &warningRecorder{}
	p := usecases.NewHackathonPipeline(repo, testDest, queue, nil, usecases.WithWarningHook(warn.hook))

	teamID := uuid.New()
	var stored *entities.HackathonTeam
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.HackathonTeam")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entities.HackathonTeam)
			stored.ID = teamID
		}).Return(nil).Once()

	team, err := p.Submit(context.Background(), jsonBind(teamBody))
	require.NoError(t, err)
	require.Equal(t, teamID, team.ID)
	require.Len(t, team.Participants, 3)
	require.Equal(t, 2, team.Participants[2].Position)
	require.Empty(t, warn.warnings)

	repo.On("ParticipantsOf", mock.Anything, teamID, entities.ParticipantRoleLeader).
		Return(participants(stored, entities.ParticipantRoleLeader), nil).Once()
	repo.On("ParticipantsOf", mock.Anything, teamID, entities.ParticipantRoleMember).
		Return(participants(stored, entities.ParticipantRoleMember), nil).Once()

	text, err := queue.only().Render(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Hackathon Registration\n\n"+
		"Team Name: Null Pointers\nTotal Participants: 3\n\n"+
		"Leader:\nName: Ann\nEmail: ann@example.com\nPhone: 1\nBranch: CSE\nSection: A\nYear: 3\n"+
		"\nMember 1:\nName: Bob\nEmail: bob@example.com\nPhone: 2\nBranch: ECE\nSection: B\nYear: 2\n"+
		"\nMember 2:\nName: Cy\nEmail: cy@example.com\nPhone: 3\nBranch: ME\nSection: C\nYear: 1\n", text)
	repo.AssertExpectations(t)
}

func TestHackathonPipeline_WarningsDoNotReject(t *testing.T) {
	repo := new(MockHackathonRepository)
	warn := &warningRecorder{}
	p := usecases.NewHackathonPipeline(repo, testDest, &queueStub{}, nil, usecases.WithWarningHook(warn.hook))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := p.Submit(context.Background(), jsonBind(`{
		"team_name": "Solo", "total_participants": 4,
		"participants": [{"full_name": "Ann", "email": "ann@example.com", "phone": "1", "branch": "CSE", "section": "A", "year": "3", "role": "MEMBER"}]
	}`))
	require.NoError(t, err)
	require.Equal(t, usecases.KindHackathon, warn.kind)
	require.Equal(t, []string{
		"total_participants is 4 but 1 participants were submitted",
		"expected exactly one LEADER, got 0",
	}, warn.warnings)
}

func TestHackathonPipeline_NestedValidationKeys(t *testing.T) {
	repo := new(MockHackathonRepository)
	p := usecases.NewHackathonPipeline(repo, testDest, &queueStub{}, nil)

	_, err := p.Submit(context.Background(), jsonBind(`{
		"team_name": "Bad", "total_participants": 2,
		"participants": [
			{"full_name": "Ann", "email": "ann@example.com", "phone": "1", "branch": "CSE", "section": "A", "year": "3", "role": "CAPTAIN"},
			{"full_name": "Bob", "email": "nope", "phone": "2", "branch": "ECE", "section": "B", "year": "2", "role": "MEMBER"}
		]
	}`))
	fields := requireValidation(t, err)
	require.Equal(t, []string{`"CAPTAIN" is not a valid choice.`}, fields["participants[0].role"])
	require.Equal(t, []string{"Enter a valid email address."}, fields["participants[1].email"])
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHackathonPipeline_EmptyParticipants(t *testing.T) {
	repo := new(MockHackathonRepository)
	p := usecases.NewHackathonPipeline(repo, testDest, &queueStub{}, nil)

	_, err := p.Submit(context.Background(), jsonBind(`{"team_name": "Ghosts", "total_participants": 1, "participants": []}`))
	fields := requireValidation(t, err)
	require.Equal(t, []string{"This list may not be empty."}, fields["participants"])

	_, err = p.Submit(context.Background(), jsonBind(`{"team_name": "Ghosts", "total_participants": 0}`))
	fields = requireValidation(t, err)
	require.Equal(t, []string{"This field is required."}, fields["participants"])
	require.Equal(t, []string{"Ensure this value is greater than or equal to 1."}, fields["total_participants"])
}

func TestHackathonPipeline_ComposeFailureIsReportedToDispatcher(t *testing.T) {
	repo := new(MockHackathonRepository)
	queue := &queueStub{}
	p := usecases.NewHackathonPipeline(repo, testDest, queue, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("ParticipantsOf", mock.Anything, mock.Anything, entities.ParticipantRoleLeader).
		Return(nil, errors.New("gone")).Once()

	_, err := p.Submit(context.Background(), jsonBind(teamBody))
	require.NoError(t, err)

	_, err = queue.only().Render(context.Background())
	require.Error(t, err)
}

func TestHackathonPipeline_NoLeaderSectionWhenAbsent(t *testing.T) {
	repo := new(MockHackathonRepository)
	queue := &queueStub{}
	p := usecases.NewHackathonPipeline(repo, testDest, queue, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("ParticipantsOf", mock.Anything, mock.Anything, entities.ParticipantRoleLeader).
		Return([]*entities.HackathonParticipant{}, nil).Once()
	repo.On("ParticipantsOf", mock.Anything, mock.Anything, entities.ParticipantRoleMember).
		Return([]*entities.HackathonParticipant{{FullName: "Bob", Role: entities.ParticipantRoleMember}}, nil).Once()

	_, err := p.Submit(context.Background(), jsonBind(teamBody))
	require.NoError(t, err)

	text, err := queue.only().Render(context.Background())
	require.NoError(t, err)
	require.NotContains(t, text, "Leader:")
	require.Contains(t, text, "Total Participants: 3\n\n\nMember 1:\nName: Bob\n")
}
