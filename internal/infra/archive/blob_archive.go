// Package archive stores raw chat exports in a blob bucket after ingestion,
// keeping an audit trail of what was parsed.
package archive

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"rotulos/config"
	"rotulos/internal/domain/lifecycle"
	"rotulos/internal/domain/service"
	"rotulos/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Local filesystem bucket driver; other drivers register the same way.
	_ "gocloud.dev/blob/fileblob"
)

type blobArchive struct {
	bucket *blob.Bucket
}

// noopArchive is used when archival is disabled in configuration.
type noopArchive struct{}

func (noopArchive) Store(context.Context, string, []byte) (string, error) {
	return "", nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured blob bucket. With archival disabled the returned
// service accepts and discards every export.
func New(params Params) (service.ExportArchive, error) {
	cfg := params.Config.Archive
	if cfg == nil || !cfg.Enabled {
		return noopArchive{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobArchive{bucket: bucket}, nil
}

// Store writes the raw export under a date-prefixed, collision-free key.
func (a *blobArchive) Store(ctx context.Context, name string, content []byte) (string, error) {
	key := archiveKey(name)

	if err := a.bucket.WriteAll(ctx, key, content, &blob.WriterOptions{
		ContentType: "text/plain; charset=utf-8",
	}); err != nil {
		return "", errors.Wrapf(err, "failed to archive export %s", key)
	}

	return key, nil
}

func archiveKey(name string) string {
	base := path.Base(strings.TrimSpace(name))
	if base == "" || base == "." || base == "/" {
		base = "export.txt"
	}

	return fmt.Sprintf("%s/%s-%s",
		time.Now().Format("2006-01-02"),
		uuid.NewString()[:8],
		base,
	)
}
