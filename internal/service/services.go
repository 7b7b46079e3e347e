package service

import (
	"github.com/Sniper-Code/auth-server/internal/config"
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/store"
)

type Services struct {
	AuthService AuthService
	CSRFService CSRFService
	UserService UserService
}

func NewServices(repositories store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.App, logger),
		CSRFService: NewCSRFService(cfg.App, logger),
		UserService: NewUserService(repositories.UserRepository, cfg.App, logger),
	}
}
