package logger

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	t.Run("Production", func(t *testing.T) {
		Init("production")
		assert.NotNil(t, log)
	})

	t.Run("Development", func(t *testing.T) {
		Init("development")
		assert.NotNil(t, log)
	})

	t.Run("Test", func(t *testing.T) {
		Init("test")
		assert.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestL(t *testing.T) {
	originalLog := log
	defer func() { log = originalLog }()

	// Force nil to test lazy initialization
	log = nil
	os.Setenv("APP_ENV", "test")

	l := L()
	assert.NotNil(t, l)
	assert.NotNil(t, log)
}

func TestL_ConcurrentFirstUse(t *testing.T) {
	originalLog := log
	defer Set(originalLog)

	Set(nil)
	t.Setenv("APP_ENV", "test")

	const n = 32
	got := make([]*zap.Logger, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = L()
		}()
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
}

func TestContextFunctions(t *testing.T) {
	ctx := context.Background()
	opID := "op-123"

	t.Run("WithOperationID", func(t *testing.T) {
		newCtx := WithOperationID(ctx, opID)
		assert.Equal(t, opID, newCtx.Value(operationIDKey))
	})

	t.Run("OperationIDFrom", func(t *testing.T) {
		assert.Equal(t, opID, OperationIDFrom(WithOperationID(ctx, opID)))
		assert.Equal(t, "", OperationIDFrom(ctx))
	})
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	originalLog := log
	Set(zap.New(core))
	defer func() { log = originalLog }()

	t.Run("WithOperationID", func(t *testing.T) {
		ctx := WithOperationID(context.Background(), "op-abc")

		FromCtx(ctx).Info("placing order")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		assert.Equal(t, "placing order", logs[0].Message)
		assert.Equal(t, "op-abc", logs[0].ContextMap()["op_id"])
	})

	t.Run("WithoutOperationID", func(t *testing.T) {
		FromCtx(context.Background()).Info("no id")

		logs := observed.TakeAll()
		assert.Len(t, logs, 1)
		_, ok := logs[0].ContextMap()["op_id"]
		assert.False(t, ok)
	})
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		Sync()
	})
}
