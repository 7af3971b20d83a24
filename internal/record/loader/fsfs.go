package loader

import (
	"context"
	"errors"
	"io/fs"
)

type fsProvider struct {
	fsys fs.FS
}

func (p fsProvider) load(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("record loader: fs path is required")
	}
	if p.fsys == nil {
		return nil, errors.New("record loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(p.fsys, name)
	if err != nil {
		return nil, err
	}
	return data, nil
}
