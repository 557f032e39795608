// Package datasource abstracts where extract bytes come from.
package datasource

import (
	"context"
	"io"
)

// Source opens a raw byte stream for one extract.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
