package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"
	"bsm-service/pkg/bsm"
)

func TestMemoryBaggageMessageRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBaggageMessageRepository()

	_, err := repo.FindByTagNumber(ctx, "0001000001")
	require.ErrorIs(t, err, repository.ErrNotFound)

	record := &entity.BaggageMessage{TagNumber: "0001000001", ChangeOfStatus: "ADD", Airline: "AA"}
	require.NoError(t, repo.Upsert(ctx, record))
	require.NotEmpty(t, record.ID)
	createdAt := record.CreatedAt

	update := &entity.BaggageMessage{TagNumber: "0001000001", ChangeOfStatus: "CHG", Airline: "AA", Destination: "BNA"}
	require.NoError(t, repo.Upsert(ctx, update))
	require.Equal(t, record.ID, update.ID)
	require.Equal(t, createdAt, update.CreatedAt)
	require.Equal(t, 1, repo.Len())

	found, err := repo.FindByTagNumber(ctx, "0001000001")
	require.NoError(t, err)
	require.Equal(t, "CHG", found.ChangeOfStatus)
	require.Equal(t, "BNA", found.Destination)

	require.NoError(t, repo.DeleteByTagNumber(ctx, "0001000001"))
	require.ErrorIs(t, repo.DeleteByTagNumber(ctx, "0001000001"), repository.ErrNotFound)
	require.Zero(t, repo.Len())
}

func TestMemoryBaggageMessageRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemoryBaggageMessageRepository().Upsert(ctx, &entity.BaggageMessage{TagNumber: "0001000001"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestUpsertDocumentLeavesIdentityToStore(t *testing.T) {
	record := &entity.BaggageMessage{
		ID:         "ignored",
		TagNumber:  "0006000001",
		TagNumbers: []string{"0006000001"},
		Valid:      false,
		Issues:     []bsm.Issue{{Segment: bsm.DotF, Field: "Airline", Message: "bad"}},
		CreatedAt:  time.Now(),
	}

	doc := upsertDocument(record)

	require.NotContains(t, doc, "_id")
	require.NotContains(t, doc, "createdAt")
	require.Equal(t, "0006000001", doc["tagNumber"])
	require.Equal(t, record.Issues, doc["issues"])
}

func TestGormModelsToEntity(t *testing.T) {
	airline := Airlines{ID: 7, Code: "DL", NumericCode: "006", Name: "Delta"}.toEntity()
	require.Equal(t, "DL", airline.Code)
	require.Equal(t, "006", airline.NumericCode)

	airport := Airports{Code: "MSY", Name: "Louis Armstrong", Destination: true}.toEntity()
	require.Equal(t, "MSY", airport.Code)
	require.True(t, airport.Destination)

	require.Equal(t, "m_airlines", Airlines{}.TableName())
	require.Equal(t, "m_airports", Airports{}.TableName())
}
