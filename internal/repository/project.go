package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slmontgomery/bugtracking/internal/domain/project"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectBySlug(teamID uint, slug string) (project.Project, error)
	// GetProjectForUpdate locks the project row for the rest of the
	// transaction. Manager swaps take it first so two reassignments
	// cannot interleave.
	GetProjectForUpdate(id uint) (project.Project, error)
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	ListProjectsByTeam(teamID uint) ([]project.Project, error)
	ListProjectsByTeamMember(teamID, userID uint) ([]project.Project, error)
	ProjectSlugExists(teamID uint, slug string) (bool, error)
	SetManager(projectID uint, managerID *uint) error
	// ClearManagerForUser nulls manager_id on every project of the team
	// where it points at the user. Part of the removal cascade.
	ClearManagerForUser(teamID, userID uint) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	return &DBProjectRepo{db: tx}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectBySlug(teamID uint, slug string) (project.Project, error) {
	var p project.Project
	err := r.db.Where("team_id = ? AND slug = ?", teamID, slug).
		Preload("Manager").
		Preload("Memberships").
		Preload("Memberships.User").
		First(&p).Error
	return p, err
}

func (r *DBProjectRepo) GetProjectForUpdate(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, id).Error
	return p, err
}

// UpdateProject writes the row's own columns only. The loaded aggregate
// carries preloaded associations whose state may be older than membership
// writes earlier in the same transaction; saving them back would undo
// those writes.
func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Omit(clause.Associations).Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *DBProjectRepo) ListProjectsByTeam(teamID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("team_id = ?", teamID).
		Preload("Manager").
		Order("title").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByTeamMember(teamID, userID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.
		Joins("JOIN project_memberships ON project_memberships.project_id = projects.id").
		Where("projects.team_id = ? AND project_memberships.user_id = ?", teamID, userID).
		Preload("Manager").
		Order("projects.title").
		Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ProjectSlugExists(teamID uint, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&project.Project{}).
		Where("team_id = ? AND slug = ?", teamID, slug).
		Count(&count).Error
	return count > 0, err
}

func (r *DBProjectRepo) SetManager(projectID uint, managerID *uint) error {
	return r.db.Model(&project.Project{}).
		Where("id = ?", projectID).
		Update("manager_id", managerID).Error
}

func (r *DBProjectRepo) ClearManagerForUser(teamID, userID uint) error {
	return r.db.Model(&project.Project{}).
		Where("team_id = ? AND manager_id = ?", teamID, userID).
		Update("manager_id", nil).Error
}
