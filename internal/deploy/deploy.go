// Package deploy uploads the build output directory to an S3 bucket.
package deploy

import (
	"context"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/verdin-dev/verdin/internal/config"
	"github.com/verdin-dev/verdin/internal/errors"
)

// ObjectPutter is the subset of the S3 client the deployer needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Deployer uploads a directory tree to S3.
type Deployer struct {
	config *config.Config
	client ObjectPutter
}

// New creates a Deployer using credentials from the standard AWS
// environment variables (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
// optionally AWS_SESSION_TOKEN).
func New(cfg *config.Config) (*Deployer, error) {
	if cfg.Deploy.Bucket == "" {
		return nil, errors.New("E301")
	}

	awsCfg := aws.Config{
		Region: cfg.Deploy.Region,
		Credentials: aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	}

	return &Deployer{config: cfg, client: s3.NewFromConfig(awsCfg)}, nil
}

// NewWithClient creates a Deployer with an explicit client.
func NewWithClient(cfg *config.Config, client ObjectPutter) (*Deployer, error) {
	if cfg.Deploy.Bucket == "" {
		return nil, errors.New("E301")
	}
	return &Deployer{config: cfg, client: client}, nil
}

// Deploy walks the build output directory and uploads every file.
// It returns the number of uploaded objects.
func (d *Deployer) Deploy(ctx context.Context) (int, error) {
	root := d.config.OutputPath()
	if _, err := os.Stat(root); err != nil {
		return 0, errors.New("E302").
			WithDetail("Output directory " + root + " does not exist").
			WithSuggestion("Run verdin build first")
	}

	uploaded := 0
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}

		if err := d.upload(ctx, p, filepath.ToSlash(rel)); err != nil {
			return err
		}
		uploaded++
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.VerdinError); ok {
			return uploaded, err
		}
		return uploaded, errors.New("E302").Wrap(err)
	}
	return uploaded, nil
}

// upload puts one file under the configured key prefix.
func (d *Deployer) upload(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.New("E302").Wrap(err)
	}
	defer f.Close()

	if prefix := strings.Trim(d.config.Deploy.Prefix, "/"); prefix != "" {
		key = path.Join(prefix, key)
	}

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.config.Deploy.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(file)),
	})
	if err != nil {
		return errors.New("E302").WithDetail("Uploading " + key).Wrap(err)
	}
	return nil
}

// contentType guesses a Content-Type from the file extension.
func contentType(file string) string {
	ext := filepath.Ext(file)
	if ext == ".wasm" {
		return "application/wasm"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
