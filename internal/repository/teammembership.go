package repository

import (
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/team"
)

type TeamMembershipRepo interface {
	GetMembership(teamID, userID uint) (team.Membership, error)
	CreateMembership(m *team.Membership) error
	UpdateMembership(m *team.Membership) error
	DeleteMembership(teamID, userID uint) error
	ListMembershipsByTeam(teamID uint) ([]team.Membership, error)
	// ListAdmins and CountAdmins are always scoped to one team; role
	// queries without the team key are the classic cross-tenant leak.
	ListAdmins(teamID uint) ([]team.Membership, error)
	CountAdmins(teamID uint) (int64, error)
	WithTx(tx *gorm.DB) TeamMembershipRepo
}

type DBTeamMembershipRepo struct {
	db *gorm.DB
}

func NewTeamMembershipRepo(db *gorm.DB) *DBTeamMembershipRepo {
	return &DBTeamMembershipRepo{db: db}
}

func (r *DBTeamMembershipRepo) WithTx(tx *gorm.DB) TeamMembershipRepo {
	return &DBTeamMembershipRepo{db: tx}
}

func (r *DBTeamMembershipRepo) GetMembership(teamID, userID uint) (team.Membership, error) {
	var m team.Membership
	err := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).First(&m).Error
	return m, err
}

func (r *DBTeamMembershipRepo) CreateMembership(m *team.Membership) error {
	return r.db.Create(m).Error
}

func (r *DBTeamMembershipRepo) UpdateMembership(m *team.Membership) error {
	return r.db.Save(m).Error
}

func (r *DBTeamMembershipRepo) DeleteMembership(teamID, userID uint) error {
	return r.db.Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&team.Membership{}).Error
}

func (r *DBTeamMembershipRepo) ListMembershipsByTeam(teamID uint) ([]team.Membership, error) {
	var members []team.Membership
	err := r.db.Where("team_id = ?", teamID).Preload("User").Find(&members).Error
	return members, err
}

func (r *DBTeamMembershipRepo) ListAdmins(teamID uint) ([]team.Membership, error) {
	var admins []team.Membership
	err := r.db.Where("team_id = ? AND role = ?", teamID, team.RoleAdmin).
		Preload("User").
		Find(&admins).Error
	return admins, err
}

func (r *DBTeamMembershipRepo) CountAdmins(teamID uint) (int64, error) {
	var count int64
	err := r.db.Model(&team.Membership{}).
		Where("team_id = ? AND role = ?", teamID, team.RoleAdmin).
		Count(&count).Error
	return count, err
}
