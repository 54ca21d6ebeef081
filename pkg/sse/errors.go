package sse

import "errors"

// ErrNotDataStar is returned when a stream is requested for a plain HTTP
// request that does not come from a DataStar frontend.
var ErrNotDataStar = errors.New("sse: request is not a DataStar request")
