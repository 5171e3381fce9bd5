// Package pg connects to PostgreSQL through pgx/v5 and provides the small
// set of helpers the storage layer relies on.
//
// # Architecture
//
//   - Config: pool settings populated from environment variables via
//     github.com/caarlos0/env.
//   - Connect: opens a *pgxpool.Pool, retrying with linear back-off until
//     the database answers a ping.
//   - DBTX: the query surface shared by *pgxpool.Pool, pgx.Tx and test
//     doubles. Storages depend on it instead of the concrete pool.
//   - Healthcheck: a closure for health endpoints.
//   - Error helpers classifying *pgconn.PgError codes, and MapError which
//     converts them to the API error classes.
//
// The schema is managed outside this service.
//
// # Usage
//
//	var cfg pg.Config
//	if err := env.Parse(&cfg); err != nil {
//		return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	health := pg.Healthcheck(pool)
package pg
