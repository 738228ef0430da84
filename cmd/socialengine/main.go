// Command socialengine runs the antibot admission engine as a single HTTP
// service, grounded on the teacher's cmd/arc/main.go (flag parsing, config
// load, logger, profiler/prometheus side-goroutines, signal-driven shutdown)
// collapsed from ARC's multi-service flag set to this repository's single
// process.
package main

import (
	stdctx "context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ordishs/go-bitcoin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/socialchain/antibot/config"
	"github.com/socialchain/antibot/internal/antibot"
	"github.com/socialchain/antibot/internal/antibot/classifier"
	antibotctx "github.com/socialchain/antibot/internal/antibot/context"
	"github.com/socialchain/antibot/internal/antibot/limits"
	"github.com/socialchain/antibot/internal/antibot/metrics"
	"github.com/socialchain/antibot/internal/antibot/reputation"
	"github.com/socialchain/antibot/internal/antibot/userstate"
	"github.com/socialchain/antibot/internal/api"
	"github.com/socialchain/antibot/internal/cache"
	"github.com/socialchain/antibot/internal/ledger"
	socialLogger "github.com/socialchain/antibot/internal/logger"
	"github.com/socialchain/antibot/internal/mempool"
	"github.com/socialchain/antibot/internal/social"
	"github.com/socialchain/antibot/internal/socialdb/postgresql"
	"github.com/socialchain/antibot/internal/tracing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("failed to run social antibot engine: %v", err)
	}
	os.Exit(0)
}

func run() error {
	configDir := parseFlags()

	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	logger, err := socialLogger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	hostname, err := os.Hostname()
	if err == nil {
		logger = logger.With(slog.String("host", hostname))
	}

	logger.Info("starting social antibot engine")

	var tracingAttrs []attribute.KeyValue
	if cfg.Tracing != nil && cfg.Tracing.DialAddr != "" {
		cleanup, err := tracing.Enable(logger, "social-antibot-engine", cfg.Tracing.DialAddr)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			defer cleanup()
			tracingAttrs = cfg.Tracing.TracingAttributes()
		}
	}
	tracingEnabled := len(tracingAttrs) > 0 || (cfg.Tracing != nil && cfg.Tracing.DialAddr != "")

	go func() {
		if cfg.ProfilerAddr != "" {
			logger.Info(fmt.Sprintf("starting profiler on http://%s/debug/pprof", cfg.ProfilerAddr))
			if err := http.ListenAndServe(cfg.ProfilerAddr, nil); err != nil {
				logger.Error("failed to start profiler server", slog.String("err", err.Error()))
			}
		}
	}()

	go func() {
		if cfg.PrometheusAddr != "" {
			logger.Info("starting prometheus", slog.String("endpoint", cfg.PrometheusEndpoint))
			mux := http.NewServeMux()
			mux.Handle(cfg.PrometheusEndpoint, promhttp.Handler())
			if err := http.ListenAndServe(cfg.PrometheusAddr, mux); err != nil {
				logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
			}
		}
	}()

	store, closeStore, err := buildSocialDB(cfg, tracingEnabled, tracingAttrs)
	if err != nil {
		return err
	}
	defer closeStore()

	bitcoind, err := bitcoin.New(cfg.PeerRpc.Host, cfg.PeerRpc.Port, cfg.PeerRpc.User, cfg.PeerRpc.Password, false)
	if err != nil {
		return fmt.Errorf("failed to connect to node: %w", err)
	}
	var ledgerOpts []func(*ledger.Ledger)
	if tracingEnabled {
		ledgerOpts = append(ledgerOpts, ledger.WithTracer(tracingAttrs...))
	}
	coinLedger := ledger.New(bitcoind, ledgerOpts...)

	cacheCfg := cache.Config{Engine: cache.Engine(cfg.Cache.Engine)}
	cacheCfg.Redis.Addr = cfg.Cache.Addr
	cacheCfg.Memory.DefaultTTL = cfg.Cache.TTL
	cacheStore, err := cache.New(cacheCfg)
	if err != nil {
		return fmt.Errorf("failed to create cache store: %w", err)
	}

	thresholds := resolveThresholds(cfg)
	table := resolveLimitsTable(cfg)

	mempoolStore := mempool.New()
	repLedger := reputation.New(store, thresholds, cacheStore, cfg.Cache.TTL)
	cls := classifier.New(coinLedger, store, repLedger, thresholds)

	engine := antibot.New(coinLedger, store, mempoolStore, repLedger, cls, table, thresholds)
	stateView := antibotctx.New(antibotctx.MempoolMask, store, nil, mempoolStore)
	stateCls := classifier.New(coinLedger, stateView, repLedger, thresholds)
	reporter := userstate.New(stateView, coinLedger, stateCls, table, thresholds)

	verdictMetrics, err := metrics.NewVerdicts()
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	handler := api.New(engine, reporter, verdictMetrics, logger)
	echoServer := api.NewEcho(logger, handler, tracingEnabled)

	go func() {
		logger.Info("starting API server", slog.String("address", cfg.Api.Address))
		if err := echoServer.Start(cfg.Api.Address); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start API server", slog.String("err", err.Error()))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-signalChan
	logger.Info("received shutdown signal", slog.String("reason", sig.String()))

	shutdownCtx, cancel := stdctx.WithTimeout(stdctx.Background(), 10*time.Second)
	defer cancel()
	if err := echoServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to close API server", slog.String("err", err.Error()))
	}

	return nil
}

func buildSocialDB(cfg *config.EngineConfig, tracingEnabled bool, attrs []attribute.KeyValue) (*postgresql.Store, func(), error) {
	var opts []func(*postgresql.Store)
	if tracingEnabled {
		opts = append(opts, postgresql.WithTracer(attrs...))
	}

	pg := cfg.SocialDB.Postgres
	store, err := postgresql.New(pg.DSN(), pg.MaxIdleConns, pg.MaxOpenConns, opts...)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to open socialdb: %w", err)
	}

	if pg.MigrationsPath != "" {
		if err := store.Migrate(pg.MigrationsPath); err != nil {
			return nil, func() {}, fmt.Errorf("failed to migrate socialdb: %w", err)
		}
	}

	return store, func() { _ = store.Close() }, nil
}

// resolveThresholds starts from limits.DefaultThresholds and applies any
// non-zero override from config, letting operators tune placeholder
// coefficients without a redeploy (config.ThresholdsConfig doc comment).
func resolveThresholds(cfg *config.EngineConfig) limits.Thresholds {
	t := limits.DefaultThresholds()
	if cfg.Thresholds == nil {
		return t
	}
	o := cfg.Thresholds
	applyOverride(&t.ScoringReputation, o.ScoringReputation)
	applyOverride(&t.OverPostReputation, o.OverPostReputation)
	applyOverride(&t.OverPostWindowSeconds, o.OverPostWindowSeconds)
	applyOverride(&t.BadReputationCutoff, o.BadReputationCutoff)
	applyOverride(&t.ComplaintEligibilityReputation, o.ComplaintEligibilityReputation)
	applyOverride(&t.FullReputationMin, o.FullReputationMin)
	applyOverride(&t.TrialBalanceMin, o.TrialBalanceMin)
	applyOverride(&t.FullBalanceMin, o.FullBalanceMin)
	applyOverride(&t.TrialRegistrationAge, o.TrialRegistrationAge)
	applyOverride(&t.FullRegistrationAge, o.FullRegistrationAge)
	applyOverride(&t.PostEditCutoffSeconds, o.PostEditCutoffSeconds)
	return t
}

func applyOverride(field *int64, override int64) {
	if override != 0 {
		*field = override
	}
}

func resolveLimitsTable(cfg *config.EngineConfig) *limits.Table {
	if cfg.Limits == nil || len(cfg.Limits.Overrides) == 0 {
		return limits.DefaultTable()
	}

	entries := []limits.Entry{{FromHeight: 0, Values: defaultTableValues()}}
	byHeight := make(map[int32]map[social.Kind]map[limits.Class]int)
	for _, o := range cfg.Limits.Overrides {
		kind, err := social.ParseKind(o.Kind)
		if err != nil {
			continue
		}
		row, ok := byHeight[o.FromHeight]
		if !ok {
			row = defaultTableValues()
			byHeight[o.FromHeight] = row
		}
		row[kind] = map[limits.Class]int{limits.Trial: o.Trial, limits.Full: o.Full}
	}
	for height, values := range byHeight {
		entries = append(entries, limits.Entry{FromHeight: height, Values: values})
	}
	return limits.NewTable(entries...)
}

func defaultTableValues() map[social.Kind]map[limits.Class]int {
	d := limits.DefaultTable()
	values := make(map[social.Kind]map[limits.Class]int)
	for _, kind := range []social.Kind{
		social.KindPost, social.KindPostEdit, social.KindScore, social.KindComplaint,
		social.KindComment, social.KindCommentEdit, social.KindCommentScore, social.KindProfileChange,
	} {
		values[kind] = map[limits.Class]int{
			limits.Trial: d.Limit(kind, limits.Trial, 0),
			limits.Full:  d.Limit(kind, limits.Full, 0),
		}
	}
	return values
}

func parseFlags() string {
	help := flag.Bool("help", false, "show help")
	configDir := flag.String("config", "", "path to configuration file directory")
	flag.Parse()

	if *help {
		fmt.Println("usage: socialengine [options]")
		fmt.Println("    -config=/location   directory to look for config.yaml (default='')")
		os.Exit(0)
	}

	return *configDir
}
