package upload

import (
	"context"
	"fmt"
	"io"

	"github.com/artem13815/assistant/pkg/apperror"
)

// UseCase reads an uploaded file and reports its metadata.
type UseCase interface {
	Inspect(ctx context.Context, f File) (Result, error)
}

type service struct{}

func NewService() UseCase { return service{} }

// Inspect reads the whole body into memory; size is the number of bytes read.
func (service) Inspect(ctx context.Context, f File) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, apperror.Internal(err)
	}
	data, err := io.ReadAll(f.Body)
	if err != nil {
		return Result{}, apperror.Internal(fmt.Errorf("failed to read file: %w", err))
	}
	return Result{
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        int64(len(data)),
	}, nil
}
