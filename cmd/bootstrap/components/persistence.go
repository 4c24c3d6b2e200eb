package components

import (
	"salon-loyalty/internal/infra/readstore"
	sqlc "salon-loyalty/internal/infra/sqlc/generated"
	"salon-loyalty/internal/infra/uow"
	"salon-loyalty/internal/usecase/queries"
	"salon-loyalty/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Repositories are built per transaction inside the unit of work, so only
// the read side is provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileReadQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		// Salon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.SalonReadQueries)),
		),
		fx.Annotate(
			readstore.NewSalonReadStore,
			fx.As(new(queries.SalonReadStore)),
		),
		// Stats
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StatsReadQueries)),
		),
		fx.Annotate(
			readstore.NewStatsReadStore,
			fx.As(new(queries.SalonStatsReadStore)),
		),
		// LoyaltyCard
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LoyaltyCardReadQueries)),
		),
		fx.Annotate(
			readstore.NewLoyaltyCardReadStore,
			fx.As(new(queries.LoyaltyCardReadStore)),
		),
		// Visit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.VisitReadQueries)),
		),
		fx.Annotate(
			readstore.NewVisitReadStore,
			fx.As(new(queries.VisitReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
