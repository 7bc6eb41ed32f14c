package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKeyParser(t *testing.T) {
	p := &RedisKeyParser{delimiter: "_"}
	validUserId := "valid-user-id"
	validPostId := "valid-post-id"
	expectedKey := "valid-user-id_valid-post-id"

	invalidUserId := "invalid_user_id"
	invalidPostId := "invalid_post_id"

	assert.True(t, p.ValidateId(validUserId))
	assert.True(t, p.ValidateId(validPostId))
	assert.False(t, p.ValidateId(invalidPostId))
	assert.False(t, p.ValidateId(invalidUserId))

	k, err := p.EncodePostKey(validUserId, validPostId)
	assert.Equal(t, k, expectedKey)
	assert.Nil(t, err)

	_, err = p.EncodePostKey(invalidUserId, invalidPostId)
	assert.NotNil(t, err)

	uId, pId, err := p.DecodePostKey(expectedKey)
	assert.Nil(t, err)
	assert.Equal(t, uId, validUserId)
	assert.Equal(t, pId, validPostId)
}

func TestGetPostsReadStatusEmptyInput(t *testing.T) {
	// An empty id list must short-circuit before redis: MGET with zero
	// keys is an arity error. inner stays nil to prove no call is made.
	store := &ReadStatusStore{keyParser: RedisKeyParser{delimiter: "__"}}

	status, err := store.GetPostsReadStatus([]string{}, "user-1")
	assert.Nil(t, err)
	assert.Empty(t, status)

	status, err = store.GetPostsReadStatus(nil, "user-1")
	assert.Nil(t, err)
	assert.Empty(t, status)
}
