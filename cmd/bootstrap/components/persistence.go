package components

import (
	"loyalty-wallet/internal/infra/db"
	"loyalty-wallet/internal/infra/readstore"
	"loyalty-wallet/internal/infra/uow"
	"loyalty-wallet/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewPassReadStore,
			fx.As(new(queries.PassReadStore)),
		),
	),
)

// repositories are reached through the unit of work only
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
