package handler

import (
	"github.com/vacinabr/vaccination-api/internal/server"
)

// Handler is the base type concrete handlers embed for access to the
// shared application dependencies.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. It returns the struct by value;
// copying is cheap since it only holds a pointer.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
