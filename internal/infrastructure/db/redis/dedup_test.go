package redis

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInquiryKey(t *testing.T) {
	k := inquiryKey(3, 9, "is it available?")
	assert.True(t, strings.HasPrefix(k, "inquiry:3:9:"))
	assert.Len(t, strings.TrimPrefix(k, "inquiry:3:9:"), 64)

	assert.Equal(t, k, inquiryKey(3, 9, "is it available?"))
	assert.NotEqual(t, k, inquiryKey(3, 9, "is it available"))
	assert.NotEqual(t, k, inquiryKey(4, 9, "is it available?"))
	assert.NotEqual(t, k, inquiryKey(3, 10, "is it available?"))
}

func TestConfigOptions(t *testing.T) {
	opts, err := Config{Addr: "cache:6379", Password: "pw", DB: 1}.options()
	assert.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 1, opts.DB)
	assert.Equal(t, clientName, opts.ClientName)
	assert.Equal(t, defaultTimeout, opts.ReadTimeout)

	opts, err = Config{URL: "redis://:secret@redis.internal:6380/2", Addr: "ignored:1", Timeout: time.Second}.options()
	assert.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, time.Second, opts.DialTimeout)

	_, err = Config{URL: "http://not-redis"}.options()
	assert.Error(t, err)
}
