package handlers

import (
	"log/slog"

	"replenishhq/internal/auth"
	"replenishhq/internal/data"
)

// Handlers bundles everything the HTTP layer needs. Every handler is a
// method on this struct so nothing reaches for globals.
type Handlers struct {
	Data *data.Manager
	Auth *auth.Service
	Log  *slog.Logger
}

func New(mgr *data.Manager, svc *auth.Service, log *slog.Logger) *Handlers {
	return &Handlers{Data: mgr, Auth: svc, Log: log}
}
