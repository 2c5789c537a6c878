package service

import (
	"github.com/notewall/notewall/internal/config"
	"github.com/notewall/notewall/internal/logger"
	"github.com/notewall/notewall/internal/store"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService
	NoteService
	SessionService
}

// NewServices wires all services on top of the repositories.
func NewServices(repos *store.Repositories, cfg config.App, log *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, cfg.BcryptCost, log),
		NoteService:    NewNoteService(repos.NoteRepository, log),
		SessionService: NewSessionService(repos.SessionRepository, cfg.SessionTTL, log),
	}
}
