// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package requestid

import (
	"context"
	"time"

	"namespacelabs.dev/go-ids"
)

type contextKey string

var ck contextKey = "greeter.ctx.request-id"

type RequestID string

type RequestData struct {
	Started   time.Time
	RequestID RequestID
}

func RequestIDFromContext(ctx context.Context) RequestID {
	if data, has := RequestDataFromContext(ctx); has {
		return data.RequestID
	}

	return "<unknown>"
}

func RequestDataFromContext(ctx context.Context) (RequestData, bool) {
	v := ctx.Value(ck)
	if v != nil {
		return v.(RequestData), true
	}

	return RequestData{}, false
}

func AllocateRequestID(ctx context.Context) (context.Context, RequestData) {
	rdata := RequestData{
		Started:   time.Now(),
		RequestID: RequestID(ids.NewRandomBase32ID(16)),
	}
	return context.WithValue(ctx, ck, rdata), rdata
}
