package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestID(ctx))

	ctx = WithRequestID(ctx, "abc")
	assert.Equal(t, "abc", RequestID(ctx))
}

func TestOp_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "json", &buf)
	defer Setup("info", "text", os.Stderr)

	ctx := WithRequestID(context.Background(), "rid-1")
	Op(ctx, "create_project").WithField("name", "demo").Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "rid-1", line["request_id"])
	assert.Equal(t, "create_project", line["operation"])
	assert.Equal(t, "demo", line["name"])
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}

func TestSetup_UnknownLevel(t *testing.T) {
	Setup("loud", "text", nil)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestFromContext_NoRequestID(t *testing.T) {
	e := FromContext(context.Background())
	_, ok := e.Data["request_id"]
	assert.False(t, ok)
}
