package router

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bsm-service/internal/interface/repository"
	"bsm-service/internal/usecase"
	"bsm-service/pkg/bsm"
	"bsm-service/pkg/logger"
)

func TestStatusRouter(t *testing.T) {
	log := logger.NewNopLogger()
	repo := repository.NewMemoryBaggageMessageRepository()

	upsert := usecase.NewUpsertHandler(repo, log)
	remove := usecase.NewDeleteHandler(repo, log)

	r := NewStatusRouter(log)
	require.Nil(t, r.GetHandler(bsm.Add))

	r.Register(upsert)
	r.Register(remove)

	require.Same(t, upsert, r.GetHandler(bsm.Add))
	require.Same(t, upsert, r.GetHandler(bsm.Change))
	require.Same(t, remove, r.GetHandler(bsm.Delete))
	require.Nil(t, r.GetHandler(bsm.ChangeOfStatus("XXX")))
}

func TestStatusRouterImplementsInterface(t *testing.T) {
	var _ usecase.StatusRouter = NewStatusRouter(logger.NewNopLogger())
}
