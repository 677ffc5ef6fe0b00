package contextx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/pkg/contextx"
)

func TestUserID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var testUserIDEmpty contextx.UserID

	testUserIDNotEmpty := contextx.UserID(1217838677)

	userID, err := contextx.UserIDFromContext(ctx)
	rq.Equal(testUserIDEmpty, userID)
	rq.ErrorIs(err, contextx.ErrNoValue)
	rq.ErrorContains(err, "user id: no value in context")

	ctx = contextx.WithUserID(ctx, testUserIDNotEmpty)

	userID, err = contextx.UserIDFromContext(ctx)
	rq.Equal(testUserIDNotEmpty, userID)
	rq.Equal("1217838677", userID.String())
	rq.NoError(err)
}

func TestUserIDKey(t *testing.T) {
	rq := require.New(t)

	ctx := context.WithValue(context.Background(), contextx.UserIDKey(), contextx.UserID(42))

	userID, err := contextx.UserIDFromContext(ctx)
	rq.NoError(err)
	rq.Equal(contextx.UserID(42), userID)
}
