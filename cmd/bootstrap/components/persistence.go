package components

import (
	"log/slog"

	"stay-booking/internal/infra/memstore"
	"stay-booking/internal/infra/readstore"
	"stay-booking/internal/infra/repository"
	sqlc "stay-booking/internal/infra/sqlc/generated"
	"stay-booking/internal/infra/uow"
	"stay-booking/internal/pkg/config"
	"stay-booking/internal/usecase/notify"
	"stay-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds its own property and reservation repositories per transaction
		uow.NewPostgresUoW,
		// Notification recipients
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.UserQueries)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(notify.RecipientLookup)),
		),
	),
)

// MemoryPersistenceModule keeps everything in process. Properties come from
// STORAGE_SEED_FILE when set.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		memstore.NewUnitOfWork,
		memstore.NewReadStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewMemoryStore(cfg config.Config) (*memstore.Store, error) {
	store := memstore.NewStore()
	if cfg.Storage.SeedFile == "" {
		slog.Warn("memory storage started without STORAGE_SEED_FILE; no properties are bookable")
		return store, nil
	}
	n, err := store.LoadSeedFile(cfg.Storage.SeedFile)
	if err != nil {
		return nil, err
	}
	slog.Info("memory storage seeded", "file", cfg.Storage.SeedFile, "properties", n)
	return store, nil
}
