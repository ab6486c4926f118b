package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"corpsite.backend/internal/domain/entities"
	domainRepos "corpsite.backend/internal/domain/repositories"
	"corpsite.backend/internal/infrastructure/models"
	"corpsite.backend/pkg/utils"
)

type HackathonRepository struct {
	db  *gorm.DB
	uow domainRepos.UnitOfWork
}

func NewHackathonRepository(db *gorm.DB, uow domainRepos.UnitOfWork) *HackathonRepository {
	return &HackathonRepository{db: db, uow: uow}
}

// Create writes the team and all of its participants in one transaction.
func (r *HackathonRepository) Create(ctx context.Context, team *entities.HackathonTeam) error {
	if team.ID == uuid.Nil {
		team.ID = utils.GenerateUUIDv7()
	}
	return r.uow.Do(ctx, func(txCtx context.Context) error {
		tm := &models.HackathonTeam{
			ID:                team.ID,
			TeamName:          team.TeamName,
			TotalParticipants: team.TotalParticipants,
			CreatedAt:         team.CreatedAt,
		}
		if err := GetDB(txCtx, r.db).Omit("Participants").Create(tm).Error; err != nil {
			return err
		}
		team.CreatedAt = tm.CreatedAt

		if len(team.Participants) == 0 {
			return nil
		}
		pms := make([]models.HackathonParticipant, 0, len(team.Participants))
		for i := range team.Participants {
			p := &team.Participants[i]
			if p.ID == uuid.Nil {
				p.ID = utils.GenerateUUIDv7()
			}
			p.TeamID = team.ID
			p.Position = i
			pms = append(pms, r.participantToModel(p))
		}
		if err := GetDB(txCtx, r.db).Create(&pms).Error; err != nil {
			return err
		}
		for i := range pms {
			team.Participants[i].CreatedAt = pms[i].CreatedAt
		}
		return nil
	})
}

func (r *HackathonRepository) List(ctx context.Context) ([]*entities.HackathonTeam, error) {
	var ms []models.HackathonTeam
	if err := GetDB(ctx, r.db).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.HackathonTeam, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

// Delete removes the team and cascades to its participants.
func (r *HackathonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.uow.Do(ctx, func(txCtx context.Context) error {
		if err := GetDB(txCtx, r.db).Where("team_id = ?", id).Delete(&models.HackathonParticipant{}).Error; err != nil {
			return err
		}
		return deleteByID[models.HackathonTeam](txCtx, r.db, id)
	})
}

func (r *HackathonRepository) ParticipantsOf(ctx context.Context, teamID uuid.UUID, role entities.ParticipantRole) ([]*entities.HackathonParticipant, error) {
	var ms []models.HackathonParticipant
	if err := GetDB(ctx, r.db).
		Where("team_id = ? AND role = ?", teamID, string(role)).
		Order("position ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.HackathonParticipant, 0, len(ms))
	for i := range ms {
		p := r.participantToEntity(&ms[i])
		items = append(items, &p)
	}
	return items, nil
}

func (r *HackathonRepository) toEntity(m *models.HackathonTeam) *entities.HackathonTeam {
	team := &entities.HackathonTeam{
		ID:                m.ID,
		TeamName:          m.TeamName,
		TotalParticipants: m.TotalParticipants,
		CreatedAt:         m.CreatedAt,
		Participants:      make([]entities.HackathonParticipant, 0, len(m.Participants)),
	}
	for i := range m.Participants {
		team.Participants = append(team.Participants, r.participantToEntity(&m.Participants[i]))
	}
	return team
}

func (r *HackathonRepository) participantToEntity(m *models.HackathonParticipant) entities.HackathonParticipant {
	return entities.HackathonParticipant{
		ID:        m.ID,
		TeamID:    m.TeamID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Branch:    m.Branch,
		Section:   m.Section,
		Year:      m.Year,
		Role:      entities.ParticipantRole(m.Role),
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

func (r *HackathonRepository) participantToModel(e *entities.HackathonParticipant) models.HackathonParticipant {
	return models.HackathonParticipant{
		ID:        e.ID,
		TeamID:    e.TeamID,
		FullName:  e.FullName,
		Email:     e.Email,
		Phone:     e.Phone,
		Branch:    e.Branch,
		Section:   e.Section,
		Year:      e.Year,
		Role:      string(e.Role),
		Position:  e.Position,
		CreatedAt: e.CreatedAt,
	}
}
