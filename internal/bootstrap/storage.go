package bootstrap

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"

	"github.com/acidpbl/homequest/config"
	"github.com/acidpbl/homequest/internal/auth"
	"github.com/acidpbl/homequest/internal/store"
	fsstore "github.com/acidpbl/homequest/internal/store/firestore"
	pgstore "github.com/acidpbl/homequest/internal/store/postgres"
)

// OpenStore selects and connects the record store driver. The returned
// cleanup closes whatever the driver opened.
func OpenStore(ctx context.Context, cfg *config.Config, app *firebase.App) (store.Store, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFirestore:
		client, err := auth.FirestoreClient(app)
		if err != nil {
			return nil, nil, err
		}
		return fsstore.New(client), func() { client.Close() }, nil

	case config.StoreDriverPostgres:
		if err := pgstore.RunMigrations(cfg.Store.DSN); err != nil {
			return nil, nil, err
		}
		pool, err := OpenDB(ctx, DBOptions{DSN: cfg.Store.DSN})
		if err != nil {
			return nil, nil, err
		}
		return pgstore.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
