// Package app implements the application layer for anvil.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"go.trai.ch/anvil/internal/adapters/render"
	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/anvil/internal/engine/planner"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader  ports.RequestLoader
	planner *planner.Planner
	logger  ports.Logger
	tracer  ports.Tracer
	watcher ports.Watcher
	stdout  io.Writer
}

// New creates a new App instance.
func New(
	loader ports.RequestLoader,
	p *planner.Planner,
	log ports.Logger,
	tracer ports.Tracer,
	watcher ports.Watcher,
) *App {
	return &App{
		loader:  loader,
		planner: p,
		logger:  log,
		tracer:  tracer,
		watcher: watcher,
		stdout:  os.Stdout,
	}
}

// WithStdout redirects plan output. Used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	RequestPath string
	Format      string
	Watch       bool
}

// Resolve loads the request, resolves every target, and renders the plans.
// In watch mode it then re-runs on every request file change until the
// context is cancelled.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	renderer := render.ForFormat(render.ResolveFormat(opts.Format))

	if err := a.resolveOnce(ctx, cwd, opts.RequestPath, renderer); err != nil {
		if !opts.Watch {
			return err
		}
		// Watch mode keeps running on a broken request; the next save may fix it.
		a.logger.Error(err)
	}

	if !opts.Watch {
		return nil
	}

	return a.watch(ctx, cwd, opts.RequestPath, renderer)
}

// resolveOnce is one full load-resolve-render pass.
func (a *App) resolveOnce(ctx context.Context, cwd, requestPath string, renderer ports.Renderer) error {
	ctx, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	request, err := a.loader.Load(cwd, requestPath)
	if err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to load resolve request")
	}
	span.SetAttribute("targets", len(request.Targets))

	plans, err := a.resolveTargets(ctx, request)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := renderer.Render(a.stdout, plans); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "failed to render plans")
	}

	a.logger.Info(fmt.Sprintf("resolved %d target(s)", len(plans)))
	return nil
}

// resolveTargets resolves all targets concurrently. The configurator
// registry is sealed and read-only, so independent targets share no mutable
// state. Output order is by target name regardless of completion order.
func (a *App) resolveTargets(ctx context.Context, request *domain.Request) ([]*domain.Plan, error) {
	if len(request.Targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	seen := make(map[string]bool, len(request.Targets))
	for _, t := range request.Targets {
		if seen[t.Name] {
			return nil, zerr.With(domain.ErrDuplicateTargetName, "target", t.Name)
		}
		seen[t.Name] = true
	}

	plans := make([]*domain.Plan, len(request.Targets))

	g, ctx := errgroup.WithContext(ctx)
	for i, target := range request.Targets {
		g.Go(func() error {
			_, span := a.tracer.Start(ctx, "resolve.target",
				ports.WithAttribute("target", target.Name),
				ports.WithAttribute("triple", target.Platform.Triple.String()),
			)
			defer span.End()

			plan, err := a.planner.Resolve(target)
			if err != nil {
				span.RecordError(err)
				return err
			}
			span.SetAttribute("fingerprint", plan.Fingerprint)
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(domain.ErrResolutionFailed, err)
	}

	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Target < plans[j].Target
	})
	return plans, nil
}

// watch re-resolves on every request file change until ctx is done.
func (a *App) watch(ctx context.Context, cwd, requestPath string, renderer ports.Renderer) error {
	path, err := a.loader.Locate(cwd, requestPath)
	if err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, path); err != nil {
		return zerr.Wrap(err, "failed to start request watcher")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + path)

	for event := range a.watcher.Events() {
		if event.Operation == ports.OpRemove {
			a.logger.Warn("request file removed: " + event.Path)
			continue
		}
		if err := a.resolveOnce(ctx, cwd, requestPath, renderer); err != nil {
			a.logger.Error(err)
		}
	}

	// Event channel closes on cancellation; a signal-driven exit is clean.
	return nil
}
