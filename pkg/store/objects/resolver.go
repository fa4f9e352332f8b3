package objects

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

const (
	DefaultRegion = "us-east-1"
	s3Scheme      = "s3://"
)

// ObjectGetter is the part of *s3.Client the resolver needs.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type Settings struct {
	Profile  string
	CacheDir string
}

// Resolver turns dataset locations into local file paths. Local paths are
// returned unchanged; s3://bucket/key objects are downloaded once into CacheDir.
type Resolver struct {
	settings Settings

	mu     sync.Mutex
	client ObjectGetter
}

func NewResolver(settings Settings) *Resolver {
	if settings.CacheDir == "" {
		settings.CacheDir = filepath.Join(os.TempDir(), "war-atlas")
	}
	return &Resolver{settings: settings}
}

// NewResolverWithClient is used when the S3 client is built elsewhere.
func NewResolverWithClient(settings Settings, client ObjectGetter) *Resolver {
	r := NewResolver(settings)
	r.client = client
	return r
}

func IsRemote(location string) bool {
	return strings.HasPrefix(location, s3Scheme)
}

func ParseLocation(location string) (bucket string, key string, err error) {
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object location %q, expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

func (r *Resolver) Resolve(ctx context.Context, location string) (string, error) {
	if !IsRemote(location) {
		return location, nil
	}

	bucket, key, err := ParseLocation(location)
	if err != nil {
		return "", err
	}

	local := filepath.Join(r.settings.CacheDir, bucket, filepath.FromSlash(key))
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	client, err := r.getClient(ctx)
	if err != nil {
		return "", err
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(bucket),
		Key:    awssdk.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", location, err)
	}
	defer out.Body.Close()

	if err := os.MkdirAll(filepath.Dir(local), 0o755); err != nil {
		return "", err
	}
	tmp := local + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", err
	}
	n, err := io.Copy(f, out.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to download %s: %w", location, err)
	}
	if err := os.Rename(tmp, local); err != nil {
		return "", err
	}

	zerolog.Ctx(ctx).Info().Str("location", location).Str("path", local).Int64("bytes", n).Msg("object downloaded")
	return local, nil
}

func (r *Resolver) getClient(ctx context.Context) (ObjectGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.client != nil {
		return r.client, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithDefaultRegion(DefaultRegion)}
	if r.settings.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.settings.Profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	r.client = s3.NewFromConfig(cfg)
	return r.client, nil
}
