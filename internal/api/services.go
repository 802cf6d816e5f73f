package api

import "github.com/shloka-app/shloka-server/internal/service"

// Services groups the business logic services used by the API server.
type Services struct {
	Content  *service.ContentService
	Instance *service.InstanceService
}
