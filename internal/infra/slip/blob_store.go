// Package slip stores customer-uploaded bank-transfer slips in a blob bucket.
package slip

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved from the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"

	"storefront/config"
	"storefront/internal/domain/service"
)

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params holds dependencies for the slip store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the slip bucket from the configured URL (e.g. file:///var/slips
// or gs://bucket-name).
func New(params Params) (service.PaymentSlipStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.SlipStorage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open slip bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket: bucket,
		logger: params.Logger,
	}, nil
}

// Save writes the slip under slips/<order-id>/<timestamp>-<filename> and
// returns that key.
func (s *blobStore) Save(ctx context.Context, orderID uuid.UUID, filename, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("slips/%s/%d-%s", orderID, time.Now().UnixNano(), path.Base(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open slip writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write slip content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize slip upload")
	}

	s.logger.InfoContext(ctx, "payment slip stored",
		slog.String("order_id", orderID.String()),
		slog.String("key", key))

	return key, nil
}
