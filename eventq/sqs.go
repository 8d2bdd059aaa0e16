package eventq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SqsPublisher sends events as plain JSON messages to an SQS queue.
type SqsPublisher struct {
	client   *sqs.Client
	queueURL string
}

func NewSqsPublisher(client *sqs.Client, queueURL string) *SqsPublisher {
	return &SqsPublisher{
		client:   client,
		queueURL: queueURL,
	}
}

func (p *SqsPublisher) Publish(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("failed to send event to queue: %w", err)
	}

	return nil
}
