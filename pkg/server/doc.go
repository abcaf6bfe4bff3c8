// Package server provides the HTTP admin API hosting translatable fields.
//
// The server holds a configuration snapshot and a registry of resources
// built from it. Each resource is bound to a translations store; fields are
// built per request from the snapshot in effect when the request arrives.
//
// # Server Setup
//
//	srv := server.NewServer(cfg, db, "0.0.0.0", "80")
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//   - / - Service status
//   - /locales - Locales offered by translatable fields
//   - /resources/{resource}/fields - Field descriptors of a resource
//   - /resources/{resource}/{id} - Read and write a record's translations
package server
