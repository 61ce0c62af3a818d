// Package sfn adapts the AWS Step Functions API to workflow.Client.
package sfn

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssfn "github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sfn/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/paw/config"
	"github.com/teranos/paw/errors"
	"github.com/teranos/paw/internal/util"
	"github.com/teranos/paw/logger"
	"github.com/teranos/paw/version"
	"github.com/teranos/paw/workflow"
)

// API is the subset of *awssfn.Client paw calls.
type API interface {
	ListStateMachines(ctx context.Context, params *awssfn.ListStateMachinesInput, optFns ...func(*awssfn.Options)) (*awssfn.ListStateMachinesOutput, error)
	ListExecutions(ctx context.Context, params *awssfn.ListExecutionsInput, optFns ...func(*awssfn.Options)) (*awssfn.ListExecutionsOutput, error)
	DescribeExecution(ctx context.Context, params *awssfn.DescribeExecutionInput, optFns ...func(*awssfn.Options)) (*awssfn.DescribeExecutionOutput, error)
	StartExecution(ctx context.Context, params *awssfn.StartExecutionInput, optFns ...func(*awssfn.Options)) (*awssfn.StartExecutionOutput, error)
}

var _ API = (*awssfn.Client)(nil)
var _ workflow.Client = (*Client)(nil)

// Options tunes a Client.
type Options struct {
	// PageSize is the maxResults of every listing call, 1..1000.
	PageSize int32
	// StartRatePerSecond caps StartExecution calls. Zero disables the limiter.
	StartRatePerSecond float64
}

// Client implements workflow.Client over the Step Functions API.
type Client struct {
	api      API
	pageSize int32
	limiter  *rate.Limiter
	logger   *zap.SugaredLogger
}

// New loads AWS configuration the way the aws CLI does (profile, region,
// environment) and returns a Client for the configured endpoint.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithAppID(version.Get().AppID()),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWS.Profile))
	}
	if cfg.AWS.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWS.Region))
	}
	if cfg.AWS.MaxAttempts > 0 {
		loadOpts = append(loadOpts, awsconfig.WithRetryMaxAttempts(cfg.AWS.MaxAttempts))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "failed to load AWS configuration"),
			"check ~/.aws/config and the aws.profile setting",
		)
	}
	if awsCfg.Region == "" {
		return nil, errors.WithHint(
			errors.New("no AWS region configured"),
			"set AWS_REGION, --region or aws.region in paw.toml",
		)
	}

	api := awssfn.NewFromConfig(awsCfg, func(o *awssfn.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	})

	return NewWithAPI(api, Options{
		PageSize:           cfg.PageSize(),
		StartRatePerSecond: cfg.SFN.StartRatePerSecond,
	}), nil
}

// NewWithAPI wraps an already built API, typically a fake in tests.
func NewWithAPI(api API, opts Options) *Client {
	pageSize := opts.PageSize
	if !util.InRange(pageSize, 1, config.MaxPageSize) {
		pageSize = config.MaxPageSize
	}

	c := &Client{
		api:      api,
		pageSize: pageSize,
		logger:   logger.ComponentLogger("sfn"),
	}
	if opts.StartRatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.StartRatePerSecond), 1)
	}
	return c
}

// ListMachines returns every registered state machine, following NextToken.
func (c *Client) ListMachines(ctx context.Context) ([]workflow.Machine, error) {
	machines := []workflow.Machine{}
	var nextToken *string

	for {
		out, err := c.api.ListStateMachines(ctx, &awssfn.ListStateMachinesInput{
			MaxResults: c.pageSize,
			NextToken:  nextToken,
		})
		if err != nil {
			return nil, wrapTransport("ListStateMachines", err)
		}

		for _, item := range out.StateMachines {
			machines = append(machines, workflow.Machine{
				ARN:  aws.ToString(item.StateMachineArn),
				Name: aws.ToString(item.Name),
			})
		}

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}
	c.logger.Debugw("Listed state machines", logger.FieldCount, len(machines))
	return machines, nil
}

// ListFailedExecutions walks every FAILED page of machineARN, filtering each
// page through window before it is appended.
func (c *Client) ListFailedExecutions(ctx context.Context, machineARN string, window workflow.DateWindow) ([]workflow.ExecutionSummary, error) {
	var (
		kept      []workflow.ExecutionSummary
		nextToken *string
		page      int
	)

	for {
		page++
		out, err := c.api.ListExecutions(ctx, &awssfn.ListExecutionsInput{
			StateMachineArn: aws.String(machineARN),
			StatusFilter:    types.ExecutionStatusFailed,
			MaxResults:      c.pageSize,
			NextToken:       nextToken,
		})
		if err != nil {
			return nil, wrapTransport("ListExecutions", err)
		}

		summaries := make([]workflow.ExecutionSummary, 0, len(out.Executions))
		for _, item := range out.Executions {
			summaries = append(summaries, summaryFromListItem(item))
		}
		kept = append(kept, workflow.Filter(summaries, window)...)

		c.logger.Debugw("Fetched failed executions page",
			logger.FieldMachineARN, machineARN,
			logger.FieldPage, page,
			logger.FieldCount, len(out.Executions),
		)

		if out.NextToken == nil || *out.NextToken == "" {
			break
		}
		nextToken = out.NextToken
	}

	c.logger.Infow("Collected failed executions",
		logger.FieldMachineARN, machineARN,
		logger.FieldCount, len(kept),
		logger.FieldWindowStart, window.Start,
		logger.FieldWindowEnd, window.End,
	)
	return kept, nil
}

// DescribeExecution fetches one execution with its payloads.
func (c *Client) DescribeExecution(ctx context.Context, executionARN string) (workflow.ExecutionDetail, error) {
	out, err := c.api.DescribeExecution(ctx, &awssfn.DescribeExecutionInput{
		ExecutionArn: aws.String(executionARN),
	})
	if err != nil {
		return workflow.ExecutionDetail{}, wrapTransport("DescribeExecution", err)
	}

	return workflow.ExecutionDetail{
		ExecutionSummary: workflow.ExecutionSummary{
			ARN:        aws.ToString(out.ExecutionArn),
			MachineARN: aws.ToString(out.StateMachineArn),
			Name:       aws.ToString(out.Name),
			Status:     workflow.ExecutionStatus(out.Status),
			StartedAt:  utc(out.StartDate),
		},
		Input:     out.Input,
		Output:    out.Output,
		StoppedAt: out.StopDate,
	}, nil
}

// StartExecution starts a new run, waiting on the start limiter first when one is configured.
func (c *Client) StartExecution(ctx context.Context, machineARN string, input string) (workflow.StartedExecution, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return workflow.StartedExecution{}, errors.Wrap(err, "waiting for start rate limit")
		}
	}

	out, err := c.api.StartExecution(ctx, &awssfn.StartExecutionInput{
		StateMachineArn: aws.String(machineARN),
		Input:           aws.String(input),
	})
	if err != nil {
		return workflow.StartedExecution{}, wrapTransport("StartExecution", err)
	}

	return workflow.StartedExecution{
		ARN:       aws.ToString(out.ExecutionArn),
		StartedAt: utc(out.StartDate),
	}, nil
}

func summaryFromListItem(item types.ExecutionListItem) workflow.ExecutionSummary {
	return workflow.ExecutionSummary{
		ARN:        aws.ToString(item.ExecutionArn),
		MachineARN: aws.ToString(item.StateMachineArn),
		Name:       aws.ToString(item.Name),
		Status:     workflow.ExecutionStatus(item.Status),
		StartedAt:  utc(item.StartDate),
	}
}

func utc(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
