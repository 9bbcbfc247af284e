package repository

import (
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
)

type CommentRepo interface {
	CreateComment(cm *ticket.Comment) error
	ListCommentsByTicket(ticketID uint) ([]ticket.Comment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	return &DBCommentRepo{db: tx}
}

func (r *DBCommentRepo) CreateComment(cm *ticket.Comment) error {
	return r.db.Create(cm).Error
}

func (r *DBCommentRepo) ListCommentsByTicket(ticketID uint) ([]ticket.Comment, error) {
	var comments []ticket.Comment
	err := r.db.Where("ticket_id = ?", ticketID).
		Preload("Author").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
