// Package archive writes full verification results to S3 as JSON documents,
// one object per check, so downstream consumers can replay or audit them.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"webhunt/types"
)

// Archiver uploads verification results to an S3 bucket.
type Archiver struct {
	s3     *S3
	bucket string
	prefix string
}

// NewArchiverFromEnv returns an Archiver if S3_BUCKET is configured.
// Optional: S3_REGION, S3_PROFILE, S3_PREFIX, S3_USE_PATH_STYLE=true.
// Returns nil, nil when unconfigured: archiving is optional.
func NewArchiverFromEnv(ctx context.Context) (*Archiver, error) {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil, nil
	}

	cfg := S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}
	client, err := NewS3(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init S3 client: %w", err)
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	return &Archiver{s3: client, bucket: bucket, prefix: prefix}, nil
}

// NewArchiver creates an Archiver over an existing S3 client.
func NewArchiver(s3 *S3, bucket, prefix string) *Archiver {
	return &Archiver{s3: s3, bucket: bucket, prefix: prefix}
}

// ArchiveResult writes one verification result as a JSON object keyed by
// check time and claim hash.
func (a *Archiver) ArchiveResult(ctx context.Context, result *types.VerdictResult) error {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%schecks/%s-%s.json",
		a.prefix,
		result.CheckedAt.UTC().Format(time.RFC3339),
		types.GenerateID(result.Claim))

	if err := a.s3.Put(ctx, a.bucket, key, bytes.NewReader(b), "application/json"); err != nil {
		return fmt.Errorf("failed to archive result: %w", err)
	}
	return nil
}
