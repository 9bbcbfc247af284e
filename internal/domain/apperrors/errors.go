package apperrors

import "errors"

// The four failure categories every service operation may report.
// Handlers translate them to HTTP status codes; the services themselves
// never reference HTTP.

// ValidationError is a business-rule violation on the input
// (bad target user, immutable field change, missing precondition).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PermissionError means the actor lacks the role the action requires.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}

// NotFoundError covers both genuinely missing entities and nested
// entities the actor is not allowed to know about.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError is a uniqueness violation, typically raced.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewValidation(msg string) error { return &ValidationError{Message: msg} }
func NewPermission(msg string) error { return &PermissionError{Message: msg} }
func NewNotFound(msg string) error   { return &NotFoundError{Message: msg} }
func NewConflict(msg string) error   { return &ConflictError{Message: msg} }

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsPermission(err error) bool {
	var e *PermissionError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// Canonical messages shared between services and tests.
const (
	MsgPermissionDenied    = "Permission denied."
	MsgTeamNotFound        = "Team not found."
	MsgProjectNotFound     = "Project not found."
	MsgTicketNotFound      = "Ticket not found."
	MsgInvitationNotFound  = "Invitation not found."
	MsgUserNotFound        = "User not found."
	MsgTeamsUndeletable    = "Teams cannot be deleted."
	MsgTitleImmutable      = "Team title cannot be changed."
	MsgNotTeamMember       = "User is not a member of this team."
	MsgAlreadyTeamMember   = "User is already a member of this team."
	MsgNotAdminCandidate   = "Cannot make user an admin. User is not a member of your team."
	MsgLastAdmin           = "Cannot step down as admin. A team must have at least one admin."
	MsgRemoveLastAdmin     = "Cannot remove the last administrator from a team."
	MsgNotManagerCandidate = "Cannot make user a manager. User is not a member of this project."
	MsgManagerAdminOnly    = "Only a team administrator may change the manager of a project."
	MsgDeveloperRoleOnly   = "Only a team administrator or the project manager may change the assigned developer."
	MsgDeveloperNotMember  = "Cannot assign ticket. User is not a member of this project."
	MsgInvitationCooldown  = "An invitation for this email address was created recently. Please wait before re-inviting."
	MsgEmptyComment        = "Comment text cannot be empty."
	MsgBadCredentials      = "Invalid username or password."
)
