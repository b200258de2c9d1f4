// Copyright 2022 Namespace Labs Inc; All rights reserved.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package requestid

import (
	"context"
	"testing"

	"gotest.tools/assert"
)

func TestAllocateRequestID(t *testing.T) {
	ctx, first := AllocateRequestID(context.Background())
	_, second := AllocateRequestID(context.Background())

	assert.Assert(t, first.RequestID != "")
	assert.Assert(t, first.RequestID != second.RequestID)
	assert.Equal(t, RequestIDFromContext(ctx), first.RequestID)
}

func TestMissingRequestID(t *testing.T) {
	_, has := RequestDataFromContext(context.Background())
	assert.Assert(t, !has)
	assert.Equal(t, RequestIDFromContext(context.Background()), RequestID("<unknown>"))
}
