package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
)

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	GetTicketBySlug(projectID uint, slug string) (ticket.Ticket, error)
	UpdateTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	ListTicketsByProject(projectID uint) ([]ticket.Ticket, error)
	// ListTicketsForUserInProject returns tickets the user submitted or
	// is assigned to, for members who are not project members.
	ListTicketsForUserInProject(projectID, userID uint) ([]ticket.Ticket, error)
	TicketSlugExists(projectID uint, slug string) (bool, error)
	ClearDeveloperForUserInProject(projectID, userID uint) error
	// ClearDeveloperForUserInTeam nulls developer_id on every ticket
	// under the team's projects. Part of the removal cascade.
	ClearDeveloperForUserInTeam(teamID, userID uint) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	return &DBTicketRepo{db: tx}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetTicketBySlug(projectID uint, slug string) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Where("project_id = ? AND slug = ?", projectID, slug).
		Preload("Submitter").
		Preload("Developer").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.Author").
		First(&t).Error
	return t, err
}

func (r *DBTicketRepo) UpdateTicket(t *ticket.Ticket) error {
	return r.db.Omit(clause.Associations).Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) ListTicketsByProject(projectID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("project_id = ?", projectID).
		Preload("Submitter").
		Preload("Developer").
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListTicketsForUserInProject(projectID, userID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("project_id = ? AND (submitter_id = ? OR developer_id = ?)",
		projectID, userID, userID).
		Preload("Submitter").
		Preload("Developer").
		Order("created_at DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) TicketSlugExists(projectID uint, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&ticket.Ticket{}).
		Where("project_id = ? AND slug = ?", projectID, slug).
		Count(&count).Error
	return count > 0, err
}

func (r *DBTicketRepo) ClearDeveloperForUserInProject(projectID, userID uint) error {
	return r.db.Model(&ticket.Ticket{}).
		Where("project_id = ? AND developer_id = ?", projectID, userID).
		Update("developer_id", nil).Error
}

func (r *DBTicketRepo) ClearDeveloperForUserInTeam(teamID, userID uint) error {
	subquery := r.db.Model(&project.Project{}).Select("id").Where("team_id = ?", teamID)
	return r.db.Model(&ticket.Ticket{}).
		Where("developer_id = ? AND project_id IN (?)", userID, subquery).
		Update("developer_id", nil).Error
}
