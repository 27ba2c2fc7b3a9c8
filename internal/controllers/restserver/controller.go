// Package restserver exposes the analysis operations over HTTP. It is the
// thin collaborator boundary around the numeric core: routing, parameter
// parsing, and error-to-status mapping live here and nowhere deeper.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/subsurfaceio/petrolog/internal/availability"
	"github.com/subsurfaceio/petrolog/internal/wellog"
	"github.com/subsurfaceio/petrolog/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	cfg      *config.ConfigData
	Server   http.Server
	wells    map[string]*wellog.Dataset
	avail    *availability.Cache
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a new REST server controller serving the given
// well datasets.
func NewController(ctx context.Context, wg *sync.WaitGroup, cfg *config.ConfigData, wells map[string]*wellog.Dataset, logger *zap.SugaredLogger) (*Controller, error) {
	if len(wells) == 0 {
		return nil, fmt.Errorf("no wells loaded - at least one LAS file must be present in %s", cfg.Data.LASDir)
	}

	ttl := time.Duration(cfg.Availability.TTLSeconds) * time.Second
	ctrl := &Controller{
		ctx:    ctx,
		wg:     wg,
		cfg:    cfg,
		wells:  wells,
		avail:  availability.New(ttl, nil),
		logger: logger,
	}
	ctrl.handlers = NewHandlers(ctrl)

	router := mux.NewRouter()
	router.HandleFunc("/api/wells", ctrl.handlers.ListWells).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{well}/curves", ctrl.handlers.WellCurves).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{well}/evaluation", ctrl.handlers.Evaluation).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{well}/intervals", ctrl.handlers.Intervals).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{well}/statistics", ctrl.handlers.Statistics).Methods(http.MethodGet)
	router.HandleFunc("/api/wells/{well}/availability", ctrl.handlers.InvalidateAvailability).Methods(http.MethodDelete)

	ctrl.Server = http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.ListenAddr, cfg.Server.ListenPort()),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return ctrl, nil
}

// StartController starts the HTTP listener and shuts it down when the
// controller context is canceled.
func (c *Controller) StartController() error {
	c.logger.Infof("REST server listening on %s", c.Server.Addr)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Errorf("REST server error: %v", err)
		}
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		<-c.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Server.Shutdown(shutdownCtx); err != nil {
			c.logger.Errorf("REST server shutdown error: %v", err)
		}
	}()

	return nil
}

// wellNames returns the loaded well names sorted for stable listings.
func (c *Controller) wellNames() []string {
	names := make([]string, 0, len(c.wells))
	for name := range c.wells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dataset resolves a well by name.
func (c *Controller) dataset(well string) (*wellog.Dataset, bool) {
	ds, ok := c.wells[well]
	return ds, ok
}

// wellAvailability returns the cached availability entry for a well,
// computing and caching it on miss or expiry.
func (c *Controller) wellAvailability(ds *wellog.Dataset) availability.WellAvailability {
	if entry, ok := c.avail.Get(ds.Well); ok {
		return entry
	}
	entry := availability.WellAvailability{
		Well:       ds.Well,
		Curves:     ds.CurveNames(),
		Analyzable: ds.HasCurve("RHOB") && ds.HasCurve("NPHI"),
	}
	c.avail.Put(entry)
	return entry
}
