package sessionrepo_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	authredis "newshub/internal/auth/adapters/redis"
	"newshub/internal/auth/ports/repositories"
	redisdb "newshub/pkg/db/redis"
)

const msgNoErrorCreatingClient = "should connect to test redis instance"

func setupRepo(t *testing.T) (*miniredis.Miniredis, repositories.SessionRepository) {
	t.Helper()

	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := redisdb.NewClient(context.Background(), &redisdb.Config{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err, msgNoErrorCreatingClient)

	t.Cleanup(func() { _ = client.Close() })

	return mr, authredis.NewSessionRepositoryWithClient(client)
}
