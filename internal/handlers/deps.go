package handlers

import (
	"log/slog"

	"github.com/lendbridge/intake-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	ValidationSvc   ValidationService
	RPDSvc          RPDService
	Demo            bool
}
