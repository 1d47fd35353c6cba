// Warmup handling for the translate Lambda. Scheduled CloudWatch Events ping
// this function so instances stay warm; a cold start on top of the inference
// call would push request latency past what the front-end tolerates.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

const (
	// warmupSource identifies warmup events from the scheduled rule.
	warmupSource = "warmup"

	// warmupDelay keeps sibling instances alive long enough to overlap.
	warmupDelay = 75 * time.Millisecond
)

// WarmupEvent is the scheduled event payload. Concurrency > 0 asks this
// instance to fan out async self-invocations so several instances stay warm.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse reports how many instances a warmup touched.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent reports whether the raw event is a warmup ping.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var warmup WarmupEvent
	if err := json.Unmarshal(event, &warmup); err != nil {
		return nil, false
	}
	if warmup.Source != warmupSource {
		return nil, false
	}
	return &warmup, true
}

// HandleWarmup answers a warmup ping, fanning out to additional instances
// when asked.
func HandleWarmup(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	warmed := 1 // this instance

	if warmup.Concurrency > 0 {
		if err := selfInvoke(ctx, warmup.Concurrency); err == nil {
			warmed += warmup.Concurrency
		}
	}

	time.Sleep(warmupDelay)

	return map[string]interface{}{
		"statusCode": 200,
		"body": WarmupResponse{
			Status:          "warm",
			InstancesWarmed: warmed,
		},
	}, nil
}

var (
	invokeOnce   sync.Once
	invokeClient *lambdasdk.Client
	invokeErr    error
)

// selfInvoke fires count async invocations of this function. Children carry
// concurrency=0 so the fan-out never recurses.
func selfInvoke(ctx context.Context, count int) error {
	invokeOnce.Do(func() {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			invokeErr = fmt.Errorf("load AWS config: %w", err)
			return
		}
		invokeClient = lambdasdk.NewFromConfig(cfg)
	})
	if invokeErr != nil {
		return invokeErr
	}

	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	payload, err := json.Marshal(WarmupEvent{Source: warmupSource, Concurrency: 0})
	if err != nil {
		return err
	}

	errs := make(chan error, count)
	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := invokeClient.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	return <-errs // first error, or nil when the channel is empty
}
