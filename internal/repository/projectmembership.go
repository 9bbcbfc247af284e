package repository

import (
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/project"
)

type ProjectMembershipRepo interface {
	GetMembership(projectID, userID uint) (project.Membership, error)
	CreateMembership(m *project.Membership) error
	UpdateMembership(m *project.Membership) error
	DeleteMembership(projectID, userID uint) error
	ListMembershipsByProject(projectID uint) ([]project.Membership, error)
	GetManager(projectID uint) (project.Membership, error)
	// DeleteMembershipsInTeam removes the user's membership on every
	// project of the team. Part of the removal cascade.
	DeleteMembershipsInTeam(teamID, userID uint) error
	WithTx(tx *gorm.DB) ProjectMembershipRepo
}

type DBProjectMembershipRepo struct {
	db *gorm.DB
}

func NewProjectMembershipRepo(db *gorm.DB) *DBProjectMembershipRepo {
	return &DBProjectMembershipRepo{db: db}
}

func (r *DBProjectMembershipRepo) WithTx(tx *gorm.DB) ProjectMembershipRepo {
	return &DBProjectMembershipRepo{db: tx}
}

func (r *DBProjectMembershipRepo) GetMembership(projectID, userID uint) (project.Membership, error) {
	var m project.Membership
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&m).Error
	return m, err
}

func (r *DBProjectMembershipRepo) CreateMembership(m *project.Membership) error {
	return r.db.Create(m).Error
}

func (r *DBProjectMembershipRepo) UpdateMembership(m *project.Membership) error {
	return r.db.Save(m).Error
}

func (r *DBProjectMembershipRepo) DeleteMembership(projectID, userID uint) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&project.Membership{}).Error
}

func (r *DBProjectMembershipRepo) ListMembershipsByProject(projectID uint) ([]project.Membership, error) {
	var members []project.Membership
	err := r.db.Where("project_id = ?", projectID).Preload("User").Find(&members).Error
	return members, err
}

func (r *DBProjectMembershipRepo) GetManager(projectID uint) (project.Membership, error) {
	var m project.Membership
	err := r.db.Where("project_id = ? AND role = ?", projectID, project.RoleManager).
		First(&m).Error
	return m, err
}

func (r *DBProjectMembershipRepo) DeleteMembershipsInTeam(teamID, userID uint) error {
	subquery := r.db.Model(&project.Project{}).Select("id").Where("team_id = ?", teamID)
	return r.db.Where("user_id = ? AND project_id IN (?)", userID, subquery).
		Delete(&project.Membership{}).Error
}
