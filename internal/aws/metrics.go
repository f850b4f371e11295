package aws

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"

	"github.com/imrishuroy/storefront-client/pkg/storefront"
)

// Request outcomes reported as the Outcome dimension.
const (
	OutcomeSuccess        = "success"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
)

const putMetricTimeout = 5 * time.Second

// MetricsRecorder publishes one CloudWatch datapoint pair per client request.
// It implements storefront.Observer.
type MetricsRecorder struct {
	CloudWatch CloudWatchAPI
	Namespace  string
	nowFunc    func() time.Time
}

// NewMetricsRecorder returns a recorder bound to a CloudWatch namespace.
func NewMetricsRecorder(cw CloudWatchAPI, namespace string) *MetricsRecorder {
	return &MetricsRecorder{
		CloudWatch: cw,
		Namespace:  namespace,
		nowFunc:    time.Now,
	}
}

// ObserveRequest sends RequestCount and RequestLatency for info. Failures are
// logged and dropped.
func (r *MetricsRecorder) ObserveRequest(ctx context.Context, info storefront.RequestInfo) {
	// the observed request may be done with its context already
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), putMetricTimeout)
	defer cancel()

	now := r.nowFunc()
	dims := []cwtypes.Dimension{
		{Name: awsString("Operation"), Value: awsString(string(info.Op))},
		{Name: awsString("Outcome"), Value: awsString(Outcome(info))},
	}
	count := 1.0
	latency := float64(info.Elapsed.Milliseconds())

	_, err := r.CloudWatch.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &r.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("RequestCount"),
				Dimensions: dims,
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      &count,
			},
			{
				MetricName: awsString("RequestLatency"),
				Dimensions: dims,
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitMilliseconds,
				Value:      &latency,
			},
		},
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) {
			log.Printf("[metrics] put metric data failed op=%s code=%s: %v", info.Op, ae.ErrorCode(), err)
			return
		}
		log.Printf("[metrics] put metric data failed op=%s: %v", info.Op, err)
	}
}

// Outcome classifies a request for the Outcome dimension.
func Outcome(info storefront.RequestInfo) string {
	switch {
	case info.Err != nil:
		return OutcomeTransportError
	case info.StatusCode < 200 || info.StatusCode >= 300:
		return OutcomeHTTPError
	default:
		return OutcomeSuccess
	}
}
