//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/eligibility-service/internal/infrastructure/persistence/postgres"
	"github.com/bibbank/eligibility-service/internal/infrastructure/persistence/postgres/migrations"
	pkgpostgres "github.com/bibbank/eligibility-service/pkg/postgres"
	"github.com/bibbank/eligibility-service/pkg/testutil"
)

func TestCatalogRepo_LoadSeededCatalog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pc := testutil.NewPostgresContainer(ctx, t)
	pc.Migrate(t, migrations.FS, ".")

	repo := postgres.NewCatalogRepo(pc.Pool)
	catalog, rules, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, testutil.Catalog(), catalog)
	assert.Equal(t, testutil.Rules(), rules)
	require.NoError(t, pkgpostgres.HealthCheck(ctx, pc.Pool))

	t.Run("migrations are idempotent", func(t *testing.T) {
		pc.Migrate(t, migrations.FS, ".")
	})

	t.Run("inactive products are hidden", func(t *testing.T) {
		_, err := pc.Pool.Exec(ctx, `UPDATE loan_products SET active = FALSE WHERE id = 'vehicle_loan'`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = pc.Pool.Exec(context.Background(), `UPDATE loan_products SET active = TRUE WHERE id = 'vehicle_loan'`)
		})

		catalog, _, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
		_, ok := catalog.Find("vehicle_loan")
		assert.False(t, ok)
	})

	t.Run("missing rule is rejected", func(t *testing.T) {
		_, err := pc.Pool.Exec(ctx, `DELETE FROM validation_rules WHERE field = 'loanTerm'`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = pc.Pool.Exec(context.Background(), `
				INSERT INTO validation_rules (field, required, min_value, max_value, error_message)
				VALUES ('loanTerm', TRUE, 6, 60, 'Loan term must be between 6 and 60 months')`)
		})

		_, _, err = repo.Load(ctx)
		testutil.AssertErrorContains(t, err, `missing validation rule "loanTerm"`)
	})

	t.Run("empty catalog is rejected", func(t *testing.T) {
		_, err := pc.Pool.Exec(ctx, `UPDATE loan_products SET active = FALSE`)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = pc.Pool.Exec(context.Background(), `UPDATE loan_products SET active = TRUE`)
		})

		_, _, err = repo.Load(ctx)
		assert.ErrorIs(t, err, postgres.ErrNoProducts)
	})
}
