package endpoints

import (
	"github.com/doodlesbykumbi/translatable/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterLocalesEndpoints(srv)
	RegisterResourcesEndpoints(srv)
}
