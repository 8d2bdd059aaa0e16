// Package conf reads service configuration from the environment. Secrets that
// must not live in env files come from AWS Secrets Manager.
package conf

import "os"

// S3Region returns the bucket region, defaulting to eu-central-1.
func S3Region() string {
	if region := os.Getenv("S3_REGION"); region != "" {
		return region
	}
	return "eu-central-1"
}

// S3Bucket returns the monograph PDF bucket name. Empty means no bucket is
// configured.
func S3Bucket() string {
	return os.Getenv("S3_MONOGRAPH_BUCKET")
}

// SqsQueueURL returns the registration event queue URL. Empty means events
// are disabled.
func SqsQueueURL() string {
	return os.Getenv("SQS_EVENT_QUEUE_URL")
}

// UseInMemRepo reports whether the server should run on the in-memory repo
// instead of Postgres, for local development.
func UseInMemRepo() bool {
	return os.Getenv("MONO_REPO") == "memory"
}

// ProgramCatalogPath returns the path of a TOML degree-program catalog, or
// empty to use another provider.
func ProgramCatalogPath() string {
	return os.Getenv("PROGRAM_CATALOG")
}

// ProgramsDdbTable returns the DynamoDB table of the degree-program catalog,
// or empty to use another provider.
func ProgramsDdbTable() string {
	return os.Getenv("DDB_PROGRAMS_TABLE")
}
