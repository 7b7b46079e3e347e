package http

import (
	"github.com/Sniper-Code/auth-server/internal/logger"
	"github.com/Sniper-Code/auth-server/internal/service"
	"github.com/Sniper-Code/auth-server/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}
