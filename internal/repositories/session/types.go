package session

import "github.com/hosogai/enkai/internal/models"

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput contains the result of retrieving a session
type GetSessionOutput struct {
	Session *models.MansionSession
}

// SaveSessionInput contains parameters for storing a session
type SaveSessionInput struct {
	Session *models.MansionSession
}

// DeleteSessionInput contains parameters for removing a session
type DeleteSessionInput struct {
	SessionID string
}
