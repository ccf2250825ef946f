package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/taskdeck-app/taskdeck/backend/models"
)

type TeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{db}
}

// FindAll returns all teams with members, ordered by name
func (r *TeamRepo) FindAll(ctx context.Context) ([]*models.Team, error) {
	var teams []*models.Team
	err := r.db.WithContext(ctx).Preload("Members").Order("name ASC").Find(&teams).Error
	return teams, err
}

// FindByID returns a team by its ID, or nil when no such team exists
func (r *TeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).Preload("Members").First(&team, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Add inserts a new team
func (r *TeamRepo) Add(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// AddMember puts a user on a team
func (r *TeamRepo) AddMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Team{ID: teamID}).
		Association("Members").
		Append(&models.User{ID: userID})
}
