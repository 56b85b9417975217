package cloud

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// NewAWSConfigFromEnv builds the shared AWS config for DynamoDB and SES.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID (default: local)
//   - AWS_SECRET_ACCESS_KEY (default: local)
//
// Per-service endpoint overrides (DYNAMODB_ENDPOINT, SES_ENDPOINT) are
// applied by the service clients.
func NewAWSConfigFromEnv(ctx context.Context) (aws.Config, error) {
	region := GetenvDefault("AWS_REGION", "us-east-1")

	// Local emulators do not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(
		GetenvDefault("AWS_ACCESS_KEY_ID", "local"),
		GetenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
}

func GetenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
