package attr

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", CorrelationID(ctx))

	ctx = WithCorrelationID(ctx, "corr-1")
	assert.Equal(t, "corr-1", CorrelationID(ctx))
	assert.Equal(t, "corr-1", ExtractCorrelationID(ctx).Value.String())
}

func TestCorrelationIDFromMsg(t *testing.T) {
	msg := message.NewMessage("m1", nil)
	middleware.SetCorrelationID("corr-2", msg)

	assert.Equal(t, "corr-2", CorrelationIDFromMsg(msg).Value.String())
}

func TestError(t *testing.T) {
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Equal(t, "", Error(nil).Value.String())
}
