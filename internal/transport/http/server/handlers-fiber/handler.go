// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"integrador-hub/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the REST API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
