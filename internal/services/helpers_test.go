package services_test

import (
	"context"
)

// passthroughTx runs fn without a database transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var (
	pngImage  = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	jpegImage = append([]byte("\xff\xd8\xff\xe0"), make([]byte, 64)...)
)

func strPtr(s string) *string { return &s }
