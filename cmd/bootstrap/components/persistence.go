package components

import (
	"parkhub/internal/infra/db"
	"parkhub/internal/infra/readstore"
	"parkhub/internal/infra/uow"
	"parkhub/internal/usecase/queries"
	"parkhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// Write side goes through the unit of work; repositories are
		// constructed per transaction inside it.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Read side runs on the pool directly, outside any transaction.
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationQueries)),
		),
		fx.Annotate(
			readstore.NewSectorReadStore,
			fx.As(new(queries.SectorQueries)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
