package util

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	SetUserID(c, 7)
	uid, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(7), uid)

	c.Set(userIDKey, "7")
	_, ok = GetUserID(c)
	assert.False(t, ok, "wrong type is not a user id")

	SetUserID(c, 0)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "", GetRequestID(c))
	SetRequestID(c, "abc")
	assert.Equal(t, "abc", GetRequestID(c))
}
