package server

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/doodlesbykumbi/translatable/pkg/config"
	"github.com/doodlesbykumbi/translatable/pkg/field"
	"github.com/doodlesbykumbi/translatable/pkg/server/store"
	gormstore "github.com/doodlesbykumbi/translatable/pkg/server/store/gorm"
)

// StoreFactory opens the translations store of a resource
type StoreFactory func(table store.TranslationTable) store.TranslationsStore

// Resource is an editable resource and its translatable fields
type Resource struct {
	Name   string
	Store  store.TranslationsStore
	Fields []config.FieldConfig
}

// Translatables builds the resource's fields for one request. Fields are
// labelled by l10n and read their locales from cfg.
func (r Resource) Translatables(cfg *config.TranslatableConfig, l10n field.Localizer) []*field.Translatable {
	fields := make([]*field.Translatable, 0, len(r.Fields))
	for _, fc := range r.Fields {
		f := field.NewTranslatable(fc.Name, fc.Attribute, nil, cfg.FieldConfig(), l10n)
		if len(fc.Locales) > 0 {
			set := field.LocaleSet{}
			for _, code := range fc.Locales {
				set = set.With(code, l10n.Translate(code))
			}
			f.Locales(set)
		}
		if fc.IndexLocale != "" {
			f.IndexLocale(fc.IndexLocale)
		}
		if fc.SingleLine {
			f.SingleLine()
		}
		if fc.Rich {
			f.Rich()
		}
		fields = append(fields, f)
	}
	return fields
}

type Server struct {
	Router      *mux.Router
	DB          *gorm.DB
	HealthStore store.HealthStore
	NewStore    StoreFactory

	mu        sync.RWMutex
	config    *config.TranslatableConfig
	resources map[string]Resource

	srv *http.Server
}

// NewServer creates a server backed by GORM stores on db
func NewServer(cfg *config.TranslatableConfig, db *gorm.DB, host string, port string) *Server {
	s := New(cfg, gormstore.NewHealthStore(db), func(table store.TranslationTable) store.TranslationsStore {
		return gormstore.NewTranslationsStore(db, table)
	}, host, port)
	s.DB = db
	return s
}

// New creates a server over the given stores
func New(
	cfg *config.TranslatableConfig,
	healthStore store.HealthStore,
	newStore StoreFactory,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    net.JoinHostPort(host, port),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	s := &Server{
		Router:      router,
		HealthStore: healthStore,
		NewStore:    newStore,
		srv:         srv,
	}
	s.SetConfig(cfg)
	return s
}

// Config returns the configuration snapshot requests are served from
func (s *Server) Config() *config.TranslatableConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// SetConfig swaps the configuration and rebuilds the resource registry.
// Requests already in flight keep the previous snapshot.
func (s *Server) SetConfig(cfg *config.TranslatableConfig) {
	resources := make(map[string]Resource, len(cfg.Resources))
	for _, rc := range cfg.Resources {
		resources[rc.Name] = Resource{
			Name: rc.Name,
			Store: s.NewStore(store.TranslationTable{
				Name:       rc.TranslationsTable,
				ForeignKey: rc.ForeignKey,
				LocaleKey:  cfg.LocaleKey,
			}),
			Fields: append([]config.FieldConfig(nil), rc.Fields...),
		}
	}

	s.mu.Lock()
	s.config = cfg
	s.resources = resources
	s.mu.Unlock()
}

// Resource returns the registered resource with the given name
func (s *Server) Resource(name string) (Resource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.resources[name]
	return r, ok
}

// Handler returns the server's HTTP handler including the access log
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.srv.Addr
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Serve accepts connections on l until the server is shut down
func (s *Server) Serve(l net.Listener) error {
	return s.srv.Serve(l)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
