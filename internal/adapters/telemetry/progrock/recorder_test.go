package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stager/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecord_VertexLifecycle(t *testing.T) {
	recorder := progrock.New()

	_, vtx := recorder.Record(context.Background(), "create-virtual-environment")
	require.NotNil(t, vtx)

	_, err := vtx.Stdout().Write([]byte("installing poetry\n"))
	assert.NoError(t, err)

	vtx.Complete(nil)
	assert.NoError(t, recorder.Close())
}

func TestRecord_CachedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vtx := recorder.Record(context.Background(), "create-virtual-environment")
	vtx.Cached()
	vtx.Complete(nil)

	assert.NoError(t, recorder.Close())
}
