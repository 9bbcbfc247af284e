package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slmontgomery/bugtracking/internal/domain/team"
)

type TeamRepo interface {
	CreateTeam(t *team.Team) error
	GetTeamBySlug(slug string) (team.Team, error)
	// GetTeamForUpdate locks the team row for the rest of the
	// transaction. Admin-role transitions take it first so their
	// count-then-write pairs are serialized per team.
	GetTeamForUpdate(id uint) (team.Team, error)
	UpdateTeam(t *team.Team) error
	ListTeamsByUser(userID uint) ([]team.Team, error)
	TeamSlugExists(slug string) (bool, error)
	WithTx(tx *gorm.DB) TeamRepo
}

type DBTeamRepo struct {
	db *gorm.DB
}

func NewTeamRepo(db *gorm.DB) *DBTeamRepo {
	return &DBTeamRepo{db: db}
}

func (r *DBTeamRepo) WithTx(tx *gorm.DB) TeamRepo {
	return &DBTeamRepo{db: tx}
}

func (r *DBTeamRepo) CreateTeam(t *team.Team) error {
	return r.db.Create(t).Error
}

func (r *DBTeamRepo) GetTeamBySlug(slug string) (team.Team, error) {
	var t team.Team
	err := r.db.Where("slug = ?", slug).
		Preload("Memberships").
		Preload("Memberships.User").
		First(&t).Error
	return t, err
}

func (r *DBTeamRepo) GetTeamForUpdate(id uint) (team.Team, error) {
	var t team.Team
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&t, id).Error
	return t, err
}

func (r *DBTeamRepo) UpdateTeam(t *team.Team) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTeamRepo) ListTeamsByUser(userID uint) ([]team.Team, error) {
	var teams []team.Team
	err := r.db.
		Joins("JOIN team_memberships ON team_memberships.team_id = teams.id").
		Where("team_memberships.user_id = ?", userID).
		Preload("Memberships").
		Preload("Memberships.User").
		Find(&teams).Error
	return teams, err
}

func (r *DBTeamRepo) TeamSlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&team.Team{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}
