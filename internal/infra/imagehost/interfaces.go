package imagehost

import (
	"context"
	"io"
)

type Uploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (*UploadResult, error)
}

var _ Uploader = (*Client)(nil)
