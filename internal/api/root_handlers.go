package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerRootRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getWelcome",
		Method:      http.MethodGet,
		Path:        "/api",
		Summary:     "API welcome",
		Description: "Returns the welcome message with server version and instance identity",
		Tags:        []string{"Meta"},
	}, s.handleWelcome)
}

// welcomeMessage is shown by clients on their about screen.
const welcomeMessage = "Welcome to Shloka API - Bhagavad Gita wisdom for modern emotions"

// WelcomeResponse identifies the server to clients.
type WelcomeResponse struct {
	Message    string `json:"message" doc:"Welcome message"`
	Version    string `json:"version" doc:"Server version"`
	InstanceID string `json:"instance_id" doc:"Installation identity"`
}

// WelcomeOutput wraps the welcome response for Huma.
type WelcomeOutput struct {
	Body WelcomeResponse
}

func (s *Server) handleWelcome(ctx context.Context, _ *struct{}) (*WelcomeOutput, error) {
	instance, err := s.services.Instance.GetInstance(ctx)
	if err != nil {
		return nil, err
	}

	return &WelcomeOutput{
		Body: WelcomeResponse{
			Message:    welcomeMessage,
			Version:    instance.Version,
			InstanceID: instance.ID,
		},
	}, nil
}
