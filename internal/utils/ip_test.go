package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedIP(t *testing.T) {
	allowed := []string{"127.0.0.1/32", "10.0.0.0/8", "not-a-cidr"}

	assert.True(t, IsAllowedIP("127.0.0.1", allowed))
	assert.True(t, IsAllowedIP("10.42.7.1", allowed))
	assert.False(t, IsAllowedIP("192.168.1.1", allowed))
	assert.False(t, IsAllowedIP("garbage", allowed))
	assert.False(t, IsAllowedIP("127.0.0.1", nil))
}
