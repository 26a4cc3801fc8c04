package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"mottak/internal/benefit"
	"mottak/internal/casesystem"
	"mottak/internal/identity"
	"mottak/internal/journal"
	"mottak/internal/legacy"
	"mottak/internal/lifeevent"
	lifeeventmetrics "mottak/internal/lifeevent/metrics"
	"mottak/internal/office"
	"mottak/internal/platform/config"
	"mottak/internal/platform/httpserver"
	"mottak/internal/platform/logger"
	"mottak/internal/routing"
	routingmetrics "mottak/internal/routing/metrics"
	"mottak/internal/task"
	"mottak/internal/task/handlers"
	taskmetrics "mottak/internal/task/metrics"
	httptransport "mottak/internal/transport/http"
	"mottak/internal/workitem"
)

// main wires dependencies and runs the HTTP surface next to the task
// worker. Business logic lives in the internal packages; real back-end
// clients replace the in-memory ones when their HTTP wrappers land.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	reg := prometheus.NewRegistry()
	routingCollector := routingmetrics.New(reg)
	lifeeventCollector := lifeeventmetrics.New(reg)
	taskCollector := taskmetrics.New(reg)

	registry := identity.NewMemoryRegistry()
	childBenefitCases := casesystem.NewMemoryClient()
	cashForCareCases := casesystem.NewMemoryClient()
	legacyClient := legacy.NewMemoryClient()
	journals := journal.NewMemoryClient()
	officeRegister := office.NewMemoryClient()
	items := workitem.NewMemoryClient()

	resolver, err := identity.NewResolver(registry, identity.WithLogger(log))
	if err != nil {
		fatal(log, "identity resolver", err)
	}
	officeResolver, err := office.NewResolver(officeRegister, resolver, office.WithLogger(log))
	if err != nil {
		fatal(log, "office resolver", err)
	}
	gateway, err := workitem.NewGateway(items, journals, workitem.WithLogger(log))
	if err != nil {
		fatal(log, "work-item gateway", err)
	}

	routingEngines := make(map[benefit.Line]*routing.Engine, 2)
	for line, cases := range map[benefit.Line]casesystem.Client{
		benefit.ChildBenefit: childBenefitCases,
		benefit.CashForCare:  cashForCareCases,
	} {
		engine, err := routing.NewEngine(resolver, cases, legacyClient,
			routing.WithLogger(log), routing.WithRecorder(routingCollector))
		if err != nil {
			fatal(log, "routing engine", err)
		}
		routingEngines[line] = engine
	}

	consolidation, err := lifeevent.NewEngine(resolver, legacyClient, gateway,
		[]lifeevent.Policy{
			lifeevent.NewChildBenefitPolicy(childBenefitCases),
			lifeevent.NewCashForCarePolicy(cashForCareCases),
		},
		lifeevent.WithLogger(log),
		lifeevent.WithRecorder(lifeeventCollector))
	if err != nil {
		fatal(log, "life-event engine", err)
	}

	routeHandler, err := handlers.NewJournalRouting(routingEngines, gateway, officeResolver,
		handlers.WithFilingRecorder(routingCollector), handlers.WithRoutingLogger(log))
	if err != nil {
		fatal(log, "journal routing handler", err)
	}
	eventHandler, err := handlers.NewLifeEvent(consolidation)
	if err != nil {
		fatal(log, "life-event handler", err)
	}
	caseHandler, err := handlers.NewCaseHandling(gateway, officeResolver)
	if err != nil {
		fatal(log, "case-handling handler", err)
	}

	dispatcher, err := task.NewDispatcher(routeHandler, eventHandler, caseHandler)
	if err != nil {
		fatal(log, "task dispatcher", err)
	}
	worker, err := task.NewWorker(dispatcher, cfg.TaskInboxSize,
		task.WithLogger(log), task.WithRecorder(taskCollector))
	if err != nil {
		fatal(log, "task worker", err)
	}

	router := httptransport.NewRouter(httptransport.NewHandler(worker, log), reg)
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting mottak", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		fatal(log, "run", err)
	}
	log.Info("mottak stopped")
}

func fatal(log *slog.Logger, what string, err error) {
	log.Error(what+" failed", "error", err)
	os.Exit(1)
}
