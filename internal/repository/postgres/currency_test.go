package postgres_test

import (
	"context"
	"fmt"
	"spendtrack/internal/models"
	"spendtrack/internal/repository"
	"spendtrack/internal/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRepository_Create(t *testing.T) {
	tc := testutil.NewTestContext(t)

	currency := models.Currency{
		Name:    "Swiss Franc",
		Acronym: "CHF",
	}

	err := tc.CurrencyRepo.Create(context.Background(), &currency)
	require.NoError(t, err)
	require.NotZero(t, currency.ID)
	require.False(t, currency.CreatedAt.IsZero())
	require.False(t, currency.UpdatedAt.IsZero())

	var exists bool
	err = tc.DB.QueryRowContext(context.Background(),
		"SELECT EXISTS(SELECT 1 FROM currencies WHERE id = $1 AND acronym = $2)",
		currency.ID, currency.Acronym).Scan(&exists)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestCurrencyRepository_GetByID(t *testing.T) {
	tc := testutil.NewTestContext(t)

	created := tc.CreateTestCurrency("Swiss Franc", "CHF")

	found, err := tc.CurrencyRepo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Swiss Franc", found.Name)
	assert.Equal(t, "CHF", found.Acronym)

	_, err = tc.CurrencyRepo.GetByID(context.Background(), 999999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCurrencyRepository_Update(t *testing.T) {
	tc := testutil.NewTestContext(t)

	currency := tc.CreateTestCurrency("Swiss Franc", "CHF")
	currency.Name = "Confederation Franc"

	err := tc.CurrencyRepo.Update(context.Background(), currency)
	require.NoError(t, err)

	found, err := tc.CurrencyRepo.GetByID(context.Background(), currency.ID)
	require.NoError(t, err)
	assert.Equal(t, "Confederation Franc", found.Name)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt))

	missing := &models.Currency{ID: 999999, Name: "Ghost", Acronym: "GST"}
	err = tc.CurrencyRepo.Update(context.Background(), missing)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCurrencyRepository_Delete(t *testing.T) {
	tc := testutil.NewTestContext(t)

	currency := tc.CreateTestCurrency("Swiss Franc", "CHF")

	err := tc.CurrencyRepo.Delete(context.Background(), currency.ID)
	require.NoError(t, err)

	_, err = tc.CurrencyRepo.GetByID(context.Background(), currency.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)

	err = tc.CurrencyRepo.Delete(context.Background(), currency.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCurrencyRepository_List(t *testing.T) {
	tc := testutil.NewTestContext(t)
	tc.TruncateTable("currencies")

	tc.CreateTestCurrency("Nigerian Naira", "NGN")
	tc.CreateTestCurrency("United States Dollar", "USD")
	tc.CreateTestCurrency("Canadian Dollar", "CAD")

	tests := []struct {
		name         string
		filter       repository.CurrencyFilter
		wantAcronyms []string
	}{
		{
			name:         "no filter returns everything in id order",
			filter:       repository.CurrencyFilter{},
			wantAcronyms: []string{"NGN", "USD", "CAD"},
		},
		{
			name:         "name substring is case insensitive",
			filter:       repository.CurrencyFilter{Name: testutil.String("DOLLAR")},
			wantAcronyms: []string{"USD", "CAD"},
		},
		{
			name:         "acronym substring",
			filter:       repository.CurrencyFilter{Acronym: testutil.String("ng")},
			wantAcronyms: []string{"NGN"},
		},
		{
			name: "filters combine conjunctively",
			filter: repository.CurrencyFilter{
				Name:    testutil.String("dollar"),
				Acronym: testutil.String("us"),
			},
			wantAcronyms: []string{"USD"},
		},
		{
			name:         "exact id",
			filter:       repository.CurrencyFilter{ID: testutil.Int64(2)},
			wantAcronyms: []string{"USD"},
		},
		{
			name:         "limit",
			filter:       repository.CurrencyFilter{Limit: testutil.Int(2)},
			wantAcronyms: []string{"NGN", "USD"},
		},
		{
			name:         "no match",
			filter:       repository.CurrencyFilter{Name: testutil.String("franc")},
			wantAcronyms: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currencies, err := tc.CurrencyRepo.List(context.Background(), tt.filter)
			require.NoError(t, err)

			acronyms := make([]string, 0, len(currencies))
			for _, currency := range currencies {
				acronyms = append(acronyms, currency.Acronym)
			}
			assert.Equal(t, tt.wantAcronyms, acronyms)
		})
	}
}

func TestCurrencyRepository_Count(t *testing.T) {
	tc := testutil.NewTestContext(t)
	tc.TruncateTable("currencies")

	for i := 0; i < 5; i++ {
		tc.CreateTestCurrency(fmt.Sprintf("Currency %d", i), fmt.Sprintf("C%02d", i))
	}

	// Count ignores pagination but honours the filters
	count, err := tc.CurrencyRepo.Count(context.Background(), repository.CurrencyFilter{
		Limit: testutil.Int(2),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	count, err = tc.CurrencyRepo.Count(context.Background(), repository.CurrencyFilter{
		Name: testutil.String("currency 3"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
