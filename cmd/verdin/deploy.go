package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verdin-dev/verdin/internal/build"
	"github.com/verdin-dev/verdin/internal/config"
	"github.com/verdin-dev/verdin/internal/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket    string
		region    string
		prefix    string
		skipBuild bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the output directory to S3",
		Long: `Build the application and upload the output directory to an
S3 bucket.

Credentials are read from the standard AWS environment variables
(AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN).

Examples:
  verdin deploy
  verdin deploy --bucket=my-bucket --region=us-east-1
  verdin deploy --skip-build`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, region, prefix, skipBuild)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from verdin.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from verdin.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix for uploaded objects")
	cmd.Flags().BoolVar(&skipBuild, "skip-build", false, "Upload the existing output without rebuilding")

	return cmd
}

func runDeploy(bucket, region, prefix string, skipBuild bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if region != "" {
		cfg.Deploy.Region = region
	}
	if prefix != "" {
		cfg.Deploy.Prefix = prefix
	}

	ctx := context.Background()

	if !skipBuild {
		fmt.Println("  Building...")
		result := build.NewBuilder(cfg).Build(ctx)
		if !result.Success {
			if result.Output != "" {
				errorMsg("Build failed:")
				fmt.Println(result.Output)
			}
			return result.Error
		}
		success("Built in %s", result.Duration)
	}

	deployer, err := deploy.New(cfg)
	if err != nil {
		return err
	}

	info("Uploading to s3://%s", cfg.Deploy.Bucket)
	uploaded, err := deployer.Deploy(ctx)
	if err != nil {
		return err
	}

	success("Uploaded %d files", uploaded)
	return nil
}
