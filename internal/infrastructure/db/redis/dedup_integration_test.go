//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestInquiryDedup_Integration(t *testing.T) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{Addr: endpoint})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	dedup := NewInquiryDedup(client, 0)

	first, err := dedup.Claim(ctx, 1, 2, "hello")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := dedup.Claim(ctx, 1, 2, "hello")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := dedup.Claim(ctx, 1, 2, "hello there")
	require.NoError(t, err)
	assert.True(t, other)

	ttl, err := client.TTL(ctx, inquiryKey(1, 2, "hello")).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, InquiryWindow)

	require.NoError(t, dedup.Release(ctx, 1, 2, "hello"))
	reclaimed, err := dedup.Claim(ctx, 1, 2, "hello")
	require.NoError(t, err)
	assert.True(t, reclaimed)

	require.NoError(t, dedup.Release(ctx, 7, 7, "never claimed"))
}

func TestConnect_URL(t *testing.T) {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client, err := Connect(ctx, Config{URL: "redis://" + endpoint + "/3"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	assert.Equal(t, 3, client.Options().DB)
	name, err := client.ClientGetName(ctx).Result()
	require.NoError(t, err)
	assert.Equal(t, clientName, name)
}
