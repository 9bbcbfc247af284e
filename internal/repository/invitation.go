package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/team"
)

type InvitationRepo interface {
	CreateInvitation(inv *team.Invitation) error
	GetInvitationByID(id uuid.UUID) (team.Invitation, error)
	UpdateInvitation(inv *team.Invitation) error
	DeleteInvitation(id uuid.UUID) error
	ListInvitationsByTeam(teamID uint) ([]team.Invitation, error)
	// LatestInvitation returns the most recent invitation for the
	// (team, email) pair regardless of status.
	LatestInvitation(teamID uint, email string) (team.Invitation, error)
	WithTx(tx *gorm.DB) InvitationRepo
}

type DBInvitationRepo struct {
	db *gorm.DB
}

func NewInvitationRepo(db *gorm.DB) *DBInvitationRepo {
	return &DBInvitationRepo{db: db}
}

func (r *DBInvitationRepo) WithTx(tx *gorm.DB) InvitationRepo {
	return &DBInvitationRepo{db: tx}
}

func (r *DBInvitationRepo) CreateInvitation(inv *team.Invitation) error {
	return r.db.Create(inv).Error
}

func (r *DBInvitationRepo) GetInvitationByID(id uuid.UUID) (team.Invitation, error) {
	var inv team.Invitation
	err := r.db.Where("id = ?", id).
		Preload("Team").
		Preload("Inviter").
		First(&inv).Error
	return inv, err
}

func (r *DBInvitationRepo) UpdateInvitation(inv *team.Invitation) error {
	return r.db.Save(inv).Error
}

func (r *DBInvitationRepo) DeleteInvitation(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&team.Invitation{}).Error
}

func (r *DBInvitationRepo) ListInvitationsByTeam(teamID uint) ([]team.Invitation, error) {
	var invs []team.Invitation
	err := r.db.Where("team_id = ?", teamID).
		Preload("Inviter").
		Order("created_at DESC").
		Find(&invs).Error
	return invs, err
}

func (r *DBInvitationRepo) LatestInvitation(teamID uint, email string) (team.Invitation, error) {
	var inv team.Invitation
	err := r.db.Where("team_id = ? AND lower(invitee_email) = lower(?)", teamID, email).
		Order("created_at DESC").
		First(&inv).Error
	return inv, err
}
