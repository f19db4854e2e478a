package postgres_test

import (
	"fmt"
	"testing"
	"time"

	gorm "github.com/jinzhu/gorm"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/require"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
	repo "github.com/hrishikesh1231/hrishi-service-backend/internal/repository"
	pg "github.com/hrishikesh1231/hrishi-service-backend/internal/repository/postgres"
)

type pgEnv struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	DB       *gorm.DB
	R        *repo.Repository
}

func upPostgres(t *testing.T) *pgEnv {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_DB=orders",
		"POSTGRES_USER=app",
		"POSTGRES_PASSWORD=app",
	})
	require.NoError(t, err)

	env := &pgEnv{pool: pool, resource: resource}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	require.NoError(t, pool.Retry(func() error {
		hostPort := resource.GetPort("5432/tcp")
		db, err := pg.ConnectDB(pg.Config{
			Host:     "localhost",
			Port:     hostPort,
			Username: "app",
			Password: "app",
			DbName:   "orders",
			SslMode:  "disable",
		})
		if err != nil {
			return err
		}
		env.DB = db

		if err := pg.Migrate(db); err != nil {
			return err
		}

		env.R = repo.NewRepository(db)
		return nil
	}))

	return env
}

func order(n int, at time.Time) *models.Order {
	return &models.Order{
		OrderID:       fmt.Sprintf("ORD%d", at.UnixMilli()+int64(n)),
		CustomerName:  fmt.Sprintf("Customer %d", n),
		CustomerPhone: "919812345678",
		Address:       "12 MG Road",
		Items:         []string{"paracetamol 500mg", "vitamin c"},
		Status:        models.StatusPending,
		CreatedAt:     at,
	}
}

func Test_Postgres_CreateGet_RoundTrip(t *testing.T) {
	env := upPostgres(t)

	o := order(1, time.Now().UTC().Truncate(time.Microsecond))
	require.NoError(t, env.R.Orders.Create(o))
	require.NotZero(t, o.ID)

	got, err := env.R.Orders.Get(o.ID)
	require.NoError(t, err)
	require.Equal(t, o.OrderID, got.OrderID)
	require.Equal(t, []string{"paracetamol 500mg", "vitamin c"}, []string(got.Items))
	require.Equal(t, models.StatusPending, got.Status)
	require.Nil(t, got.PrescriptionFile)
}

func Test_Postgres_GetAll_NewestFirst(t *testing.T) {
	env := upPostgres(t)

	base := time.Now().UTC().Truncate(time.Microsecond)
	old := order(1, base.Add(-time.Hour))
	mid := order(2, base.Add(-time.Minute))
	fresh := order(3, base)
	for _, o := range []*models.Order{old, mid, fresh} {
		require.NoError(t, env.R.Orders.Create(o))
	}

	all, err := env.R.Orders.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, fresh.OrderID, all[0].OrderID)
	require.Equal(t, mid.OrderID, all[1].OrderID)
	require.Equal(t, old.OrderID, all[2].OrderID)
}

func Test_Postgres_GetAll_Empty_OK(t *testing.T) {
	env := upPostgres(t)

	all, err := env.R.Orders.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 0)
}

func Test_Postgres_Create_DuplicateOrderID_Error(t *testing.T) {
	env := upPostgres(t)

	at := time.Now().UTC()
	a := order(1, at)
	b := order(2, at)
	b.OrderID = a.OrderID

	require.NoError(t, env.R.Orders.Create(a))
	require.Error(t, env.R.Orders.Create(b), "expected unique violation on order_id")
}

func Test_Postgres_UpdateStatus(t *testing.T) {
	env := upPostgres(t)

	o := order(1, time.Now().UTC())
	require.NoError(t, env.R.Orders.Create(o))

	require.NoError(t, env.R.Orders.UpdateStatus(o.ID, models.StatusCompleted))

	got, err := env.R.Orders.Get(o.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, got.Status)
}

func Test_Postgres_Save_PersistsPriceAndStatus(t *testing.T) {
	env := upPostgres(t)

	o := order(1, time.Now().UTC())
	require.NoError(t, env.R.Orders.Create(o))

	price := 249.0
	o.TotalPrice = &price
	o.Status = models.StatusPendingConfirmation
	require.NoError(t, env.R.Orders.Save(o))

	got, err := env.R.Orders.Get(o.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TotalPrice)
	require.Equal(t, 249.0, *got.TotalPrice)
	require.Equal(t, models.StatusPendingConfirmation, got.Status)
}

func Test_Postgres_Get_Missing_RecordNotFound(t *testing.T) {
	env := upPostgres(t)

	_, err := env.R.Orders.Get(424242)
	require.True(t, gorm.IsRecordNotFoundError(err))
}

func Test_Postgres_Delete_NonExistent_OK(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.R.Orders.Delete(424242))

	o := order(1, time.Now().UTC())
	require.NoError(t, env.R.Orders.Create(o))
	require.NoError(t, env.R.Orders.Delete(o.ID))

	_, err := env.R.Orders.Get(o.ID)
	require.Error(t, err)
}

func Test_Postgres_TokenUpsert_Overwrites(t *testing.T) {
	env := upPostgres(t)

	require.NoError(t, env.R.Tokens.Upsert(models.AdminPushToken{AdminID: "default", Token: "t1", UpdatedAt: time.Now().UTC()}))
	require.NoError(t, env.R.Tokens.Upsert(models.AdminPushToken{AdminID: "default", Token: "t2", UpdatedAt: time.Now().UTC()}))
	require.NoError(t, env.R.Tokens.Upsert(models.AdminPushToken{AdminID: "second", Token: "t3", UpdatedAt: time.Now().UTC()}))

	tokens, err := env.R.Tokens.List()
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	byAdmin := map[string]string{}
	for _, tok := range tokens {
		byAdmin[tok.AdminID] = tok.Token
	}
	require.Equal(t, "t2", byAdmin["default"], "second upsert must replace the stored token")
	require.Equal(t, "t3", byAdmin["second"])
}
