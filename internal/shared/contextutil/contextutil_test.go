package contextutil_test

import (
	"context"
	"testing"

	"go-directory/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, contextutil.GetRequestID(ctx))

	ctx = contextutil.WithRequestID(ctx, "REQ-1")
	assert.Equal(t, "REQ-1", contextutil.GetRequestID(ctx))
}

func TestGetLogger(t *testing.T) {
	fallback := zap.NewExample()
	scoped := zap.NewExample().Named("scoped")

	t.Run("scoped logger wins", func(t *testing.T) {
		ctx := contextutil.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
	})

	t.Run("fallback when absent", func(t *testing.T) {
		assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	})

	t.Run("never nil", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
	})
}
