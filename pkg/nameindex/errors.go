package nameindex

import "errors"

var (
	// ErrNameTaken is returned by Add when the name is already claimed.
	ErrNameTaken = errors.New("nameindex: name is already taken")
	// ErrStoreUnavailable wraps transport failures of remote index backends.
	ErrStoreUnavailable = errors.New("nameindex: store unavailable")
	// ErrInvalidRedisURL indicates an unparseable Redis connection URL.
	ErrInvalidRedisURL = errors.New("nameindex: invalid redis connection URL")
	// ErrRedisNotReady indicates that all connection attempts failed.
	ErrRedisNotReady = errors.New("nameindex: redis not ready")
)
