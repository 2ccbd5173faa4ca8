package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jacwu/toy-store/internal/adapter/memory"
	"github.com/jacwu/toy-store/internal/adapter/postgres"
	pgcomment "github.com/jacwu/toy-store/internal/adapter/postgres/comment"
	pgtoy "github.com/jacwu/toy-store/internal/adapter/postgres/toy"
	pgtoytype "github.com/jacwu/toy-store/internal/adapter/postgres/toytype"
	pguser "github.com/jacwu/toy-store/internal/adapter/postgres/user"
	"github.com/jacwu/toy-store/internal/adapter/sqlite"
	"github.com/jacwu/toy-store/internal/config"
	"github.com/jacwu/toy-store/internal/domain"
)

// ToyTypeRepo is the toy type repository contract shared by all backends.
type ToyTypeRepo interface {
	FindAll(ctx context.Context) ([]domain.ToyType, error)
	FindByID(ctx context.Context, id int64) (*domain.ToyType, error)
	Create(ctx context.Context, tt domain.ToyType) (*domain.ToyType, error)
	Update(ctx context.Context, id int64, params domain.ToyTypeUpdateParams) (*domain.ToyType, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ToyRepo is the toy repository contract shared by all backends.
type ToyRepo interface {
	FindAll(ctx context.Context) ([]domain.Toy, error)
	FindByToyTypeID(ctx context.Context, toyTypeID int64) ([]domain.Toy, error)
	FindByID(ctx context.Context, id int64) (*domain.Toy, error)
	Create(ctx context.Context, t domain.Toy) (*domain.Toy, error)
	Update(ctx context.Context, id int64, params domain.ToyUpdateParams) (*domain.Toy, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepo is the comment repository contract shared by all backends.
type CommentRepo interface {
	FindAll(ctx context.Context) ([]domain.Comment, error)
	FindByToyID(ctx context.Context, toyID int64) ([]domain.Comment, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	Update(ctx context.Context, id int64, params domain.CommentUpdateParams) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

// UserRepo is the user repository contract shared by all backends.
type UserRepo interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// TxManager runs fn inside a transaction when the backend supports one.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage is one opened repository backend.
type Storage struct {
	Driver   string
	ToyTypes ToyTypeRepo
	Toys     ToyRepo
	Comments CommentRepo
	Users    UserRepo
	Tx       TxManager

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend's connections.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStorage returns empty process-local stores.
func NewMemoryStorage() *Storage {
	return &Storage{
		Driver:   config.DriverMemory,
		ToyTypes: memory.NewToyTypeStore(),
		Toys:     memory.NewToyStore(),
		Comments: memory.NewCommentStore(),
		Users:    memory.NewUserStore(),
		Tx:       memory.TxManager{},
	}
}

// OpenStorage opens the backend selected by cfg.Storage.Driver.
func OpenStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return NewMemoryStorage(), nil
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.Database, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.SQLite, log)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Storage, error) {
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DSN, log); err != nil {
			return nil, fmt.Errorf("storage: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Storage{
		Driver:   config.DriverPostgres,
		ToyTypes: pgtoytype.New(pool),
		Toys:     pgtoy.New(pool),
		Comments: pgcomment.New(pool),
		Users:    pguser.New(pool),
		Tx:       postgres.NewTxManager(pool),
		ping:     pool.Ping,
		close:    pool.Close,
	}, nil
}

func openSQLite(ctx context.Context, cfg config.SQLiteConfig, log *slog.Logger) (*Storage, error) {
	db, err := sqlite.Open(ctx, cfg.Path, log)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Storage{
		Driver:   config.DriverSQLite,
		ToyTypes: sqlite.NewToyTypeRepo(db),
		Toys:     sqlite.NewToyRepo(db),
		Comments: sqlite.NewCommentRepo(db),
		Users:    sqlite.NewUserRepo(db),
		Tx:       sqlite.NewTxManager(db),
		ping:     db.PingContext,
		close:    func() { _ = db.Close() },
	}, nil
}

// RegisterMetrics exposes the record count of every store as
// toystore_store_records{entity=...}. Counts are read at scrape time.
func (s *Storage) RegisterMetrics(reg prometheus.Registerer, log *slog.Logger) error {
	counters := map[string]func(context.Context) (int, error){
		"toy_types": s.ToyTypes.Count,
		"toys":      s.Toys.Count,
		"comments":  s.Comments.Count,
		"users":     s.Users.Count,
	}

	for entity, count := range counters {
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "toystore_store_records",
			Help:        "Number of records held by each store.",
			ConstLabels: prometheus.Labels{"entity": entity, "driver": s.Driver},
		}, func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			n, err := count(ctx)
			if err != nil {
				log.Warn("count store records", slog.String("entity", entity), slog.String("error", err.Error()))
				return 0
			}
			return float64(n)
		})
		if err := reg.Register(gauge); err != nil {
			return fmt.Errorf("register %s gauge: %w", entity, err)
		}
	}
	return nil
}
