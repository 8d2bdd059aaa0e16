package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/thesisdesk/backend/conf"
	"github.com/thesisdesk/backend/eventq"
	"github.com/thesisdesk/backend/http"
	"github.com/thesisdesk/backend/monosrvc"
	"github.com/thesisdesk/backend/proglist"
	"github.com/thesisdesk/backend/s3bucket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	ctx := context.Background()

	var repo monosrvc.Repo
	if conf.UseInMemRepo() {
		slog.Info("using in-memory monograph repo")
		repo = monosrvc.NewInMemRepo()
	} else {
		pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
		if err != nil {
			slog.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		repo = monosrvc.NewPgRepo(pool)
	}

	bucketName := conf.S3Bucket()
	if bucketName == "" {
		slog.Error("S3_MONOGRAPH_BUCKET is not set")
		os.Exit(1)
	}
	bucket, err := s3bucket.NewS3Bucket(conf.S3Region(), bucketName)
	if err != nil {
		slog.Error("failed to set up s3 bucket", "error", err)
		os.Exit(1)
	}

	var events eventq.Publisher = eventq.NoopPublisher{}
	if queueURL := conf.SqsQueueURL(); queueURL != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		events = eventq.NewSqsPublisher(sqs.NewFromConfig(cfg), queueURL)
	}

	programs := programLister(ctx)

	monoSrvc := monosrvc.NewMonographSrvc(repo, programs, bucket, events)
	httpServer := http.NewHttpServer(monoSrvc, programs)

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}

// programLister picks the degree-program catalog provider: a TOML file, a
// DynamoDB table, or the built-in list.
func programLister(ctx context.Context) proglist.Lister {
	if path := conf.ProgramCatalogPath(); path != "" {
		programs, err := proglist.ReadCatalogFile(path)
		if err != nil {
			slog.Error("failed to read program catalog", "path", path, "error", err)
			os.Exit(1)
		}
		return proglist.NewStaticLister(programs)
	}

	if table := conf.ProgramsDdbTable(); table != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "error", err)
			os.Exit(1)
		}
		return proglist.NewDdbProgramTable(dynamodb.NewFromConfig(cfg), table)
	}

	return proglist.NewStaticLister(nil)
}
