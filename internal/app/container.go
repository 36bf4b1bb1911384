package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/incentive-ledger/internal/adapter/analyzer"
	"github.com/heartmarshall/incentive-ledger/internal/adapter/blobstore"
	"github.com/heartmarshall/incentive-ledger/internal/adapter/events"
	"github.com/heartmarshall/incentive-ledger/internal/adapter/postgres"
	accountrepo "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres/account"
	planrepo "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres/plan"
	settlementrepo "github.com/heartmarshall/incentive-ledger/internal/adapter/postgres/settlement"
	"github.com/heartmarshall/incentive-ledger/internal/adapter/redislock"
	"github.com/heartmarshall/incentive-ledger/internal/adapter/spreadsheet"
	"github.com/heartmarshall/incentive-ledger/internal/auth"
	"github.com/heartmarshall/incentive-ledger/internal/config"
	"github.com/heartmarshall/incentive-ledger/internal/domain"
	"github.com/heartmarshall/incentive-ledger/internal/metrics"
	"github.com/heartmarshall/incentive-ledger/internal/service/account"
	"github.com/heartmarshall/incentive-ledger/internal/service/ingest"
	"github.com/heartmarshall/incentive-ledger/internal/service/plan"
	"github.com/heartmarshall/incentive-ledger/internal/service/verification"
	"github.com/heartmarshall/incentive-ledger/internal/visibility"
)

// settlementPublisher is satisfied by events.Publisher and events.Noop.
type settlementPublisher interface {
	PublishSettlement(ctx context.Context, ev domain.SettlementEvent) error
}

// submissionLocker is satisfied by redislock.Locker and redislock.Noop.
type submissionLocker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// receiptAnalyzer is satisfied by analyzer.Client and analyzer.Disabled.
type receiptAnalyzer interface {
	Analyze(ctx context.Context, image []byte, contentType string, rc domain.ReceiptContext) (domain.ExtractionResult, error)
}

// Container holds the wired services and the resources behind them.
// Close releases everything Open acquired.
type Container struct {
	Config config.Config
	Log    *slog.Logger

	Pool     *pgxpool.Pool
	Redis    *redis.Client
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	Accounts     *account.Service
	Plans        *plan.Service
	Ingest       *ingest.Service
	Verification *verification.Service
	Sheets       *spreadsheet.Reader
	Analyzer     receiptAnalyzer

	closers []func() error
}

// Infra is the set of external collaborators the services are built on.
// Redis is optional and only used for health checks.
type Infra struct {
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Proofs    *blobstore.ProofStore
	Locker    submissionLocker
	Publisher settlementPublisher
	Analyzer  receiptAnalyzer
}

// Open connects to every configured collaborator and builds the services.
// Optional collaborators (Redis, Pub/Sub, analyzer) fall back to their
// no-op variants when unconfigured.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Container, error) {
	var closers []func() error
	fail := func(err error) (*Container, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	closers = append(closers, func() error { pool.Close(); return nil })

	proofs, err := blobstore.Open(ctx, logger, cfg.Storage)
	if err != nil {
		return fail(fmt.Errorf("open proof storage: %w", err))
	}
	closers = append(closers, proofs.Close)

	infra := Infra{
		Pool:      pool,
		Proofs:    proofs,
		Locker:    redislock.Noop{},
		Publisher: events.Noop{},
		Analyzer:  analyzer.Disabled{},
	}

	if cfg.Redis.Enabled() {
		rdb, err := redislock.Connect(ctx, cfg.Redis)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, rdb.Close)
		infra.Redis = rdb
		infra.Locker = redislock.New(logger, rdb, cfg.Redis.LockTTL, cfg.Redis.LockWait)
	} else {
		logger.Warn("redis not configured, submissions are not locked")
	}

	if cfg.Events.Enabled() {
		pub, err := events.NewPublisher(ctx, logger, cfg.Events)
		if err != nil {
			return fail(fmt.Errorf("open event publisher: %w", err))
		}
		closers = append(closers, pub.Close)
		infra.Publisher = pub
	}

	if cfg.Analyzer.Enabled() {
		infra.Analyzer = analyzer.New(logger, cfg.Analyzer)
	} else {
		logger.Warn("analyzer api key not configured, every proof goes to manual review")
	}

	c := Wire(cfg, logger, infra)
	c.closers = closers
	return c, nil
}

// Wire builds the services on top of already opened infrastructure. The
// returned Container does not own infra; its Close is a no-op.
func Wire(cfg config.Config, logger *slog.Logger, infra Infra) *Container {
	c := &Container{
		Config: cfg,
		Log:    logger,
		Pool:   infra.Pool,
		Redis:  infra.Redis,
	}
	if cfg.Metrics.Enabled {
		c.Registry = prometheus.NewRegistry()
		c.Metrics = metrics.New(c.Registry)
	}

	accounts := accountrepo.New(infra.Pool)
	plans := planrepo.New(infra.Pool)
	settlements := settlementrepo.New(infra.Pool)
	tx := postgres.NewTxManager(infra.Pool)
	filter := visibility.NewFilter(visibility.DefaultTaxonomies())
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	c.Accounts = account.NewService(logger, accounts, tokens, cfg.Auth)
	c.Plans = plan.NewService(logger, plan.Deps{
		Plans:       plans,
		Settlements: settlements,
		Tx:          tx,
		Filter:      filter,
		Proofs:      infra.Proofs,
		Events:      infra.Publisher,
	})
	c.Ingest = ingest.NewService(logger, plans, tx)
	c.Verification = verification.NewService(logger, verification.Deps{
		Plans:       plans,
		Settlements: settlements,
		Tx:          tx,
		Access:      filter,
		Proofs:      infra.Proofs,
		Analyzer:    infra.Analyzer,
		Locker:      infra.Locker,
		Events:      infra.Publisher,
		Metrics:     c.Metrics,
	})
	c.Sheets = spreadsheet.NewReader(logger)
	c.Analyzer = infra.Analyzer
	return c
}

// Close releases resources in reverse acquisition order.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
