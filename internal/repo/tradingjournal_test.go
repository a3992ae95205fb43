package repo

import (
	"testing"

	"github.com/hyojunguy/turtle-trading-app/internal/models"

	"github.com/stretchr/testify/require"
)

func TestTradingJournal_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	journal := &models.TradingJournal{
		Type:      "Daily",
		Title:     "Market Analysis",
		Content:   "Today the market showed significant volatility.",
		CreatedAt: "2025-03-01T09:00:00.000000",
		UpdatedAt: "2025-03-01T09:00:00.000000",
	}

	require.NoError(t, repository.CreateTradingJournal(journal))
	require.NotZero(t, journal.ID)

	journals, err := repository.GetAllTradingJournals()
	require.NoError(t, err)
	require.Len(t, journals, 1)
	require.Equal(t, "Market Analysis", journals[0].Title)
	require.Equal(t, journal.CreatedAt, journals[0].CreatedAt)

	require.NoError(t, repository.DeleteTradingJournal(journal.ID))
	journals, err = repository.GetAllTradingJournals()
	require.NoError(t, err)
	require.Empty(t, journals)
}

func TestTradingJournal_ListEmptyIsNotNil(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	journals, err := repository.GetAllTradingJournals()
	require.NoError(t, err)
	require.NotNil(t, journals)
	require.Empty(t, journals)
}

func TestTradingJournal_ListOrdersByCreatedAtDesc(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	older := &models.TradingJournal{
		Type: "Daily", Title: "first", Content: "a",
		CreatedAt: "2025-01-01T08:00:00.000000",
		UpdatedAt: "2025-01-01T08:00:00.000000",
	}
	newer := &models.TradingJournal{
		Type: "Weekly", Title: "second", Content: "b",
		CreatedAt: "2025-02-01T08:00:00.000000",
		UpdatedAt: "2025-02-01T08:00:00.000000",
	}
	require.NoError(t, repository.CreateTradingJournal(older))
	require.NoError(t, repository.CreateTradingJournal(newer))

	journals, err := repository.GetAllTradingJournals()
	require.NoError(t, err)
	require.Len(t, journals, 2)
	require.Equal(t, "second", journals[0].Title)
	require.Equal(t, "first", journals[1].Title)
}

func TestTradingJournal_UpdateKeepsCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	journal := &models.TradingJournal{
		Type: "Daily", Title: "before", Content: "old",
		CreatedAt: "2025-01-01T08:00:00.000000",
		UpdatedAt: "2025-01-01T08:00:00.000000",
	}
	require.NoError(t, repository.CreateTradingJournal(journal))

	updated := &models.TradingJournal{
		Type: "Weekly", Title: "after", Content: "new",
		UpdatedAt: "2025-01-02T10:30:00.000000",
	}
	require.NoError(t, repository.UpdateTradingJournal(journal.ID, updated))

	journals, err := repository.GetAllTradingJournals()
	require.NoError(t, err)
	require.Len(t, journals, 1)
	require.Equal(t, "after", journals[0].Title)
	require.Equal(t, "Weekly", journals[0].Type)
	require.Equal(t, "2025-01-01T08:00:00.000000", journals[0].CreatedAt)
	require.Equal(t, "2025-01-02T10:30:00.000000", journals[0].UpdatedAt)
}

func TestTradingJournal_UpdateMissingRowSucceeds(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	journal := &models.TradingJournal{Type: "Daily", Title: "x", Content: "y"}
	require.NoError(t, repository.UpdateTradingJournal(999, journal))
}

func TestTradingJournal_DeleteMissingRowSucceeds(t *testing.T) {
	db := setupTestDB(t)
	repository, err := New(db)
	require.NoError(t, err)

	require.NoError(t, repository.DeleteTradingJournal(999))
}
