package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), AccountIDKey, "acc-1")
	ctx = context.WithValue(ctx, AccountKindKey, "enterprise")
	ctx = context.WithValue(ctx, RequestIDKey, "req-9")

	l := WithContext(ctx)
	assert.Equal(t, "acc-1", l.Data["account"])
	assert.Equal(t, "enterprise", l.Data["account_kind"])
	assert.Equal(t, "req-9", l.Data["request_id"])
}

func TestWithContext_Anonymous(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "unknown", l.Data["account"])
	assert.NotContains(t, l.Data, "account_kind")
}

func TestFieldsAreCarriedToEntries(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New().WithField("candidate", "c1").WithError(errors.New("boom")).Warn("inconsistent hierarchy")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "c1", entry.Data["candidate"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
