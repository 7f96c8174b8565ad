package client

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rwgps_client",
			Name:      "requests_total",
			Help:      "Requests sent to the RideWithGPS API by HTTP method and status code (or \"error\").",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rwgps_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of RideWithGPS API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// instrument records every completed or failed request made through rc.
func instrument(rc *resty.Client) {
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		observe(resp.Request.Method, strconv.Itoa(resp.StatusCode()), resp.Time())
		return nil
	})
	rc.OnError(func(req *resty.Request, err error) {
		var re *resty.ResponseError
		if errors.As(err, &re) && re.Response != nil && re.Response.RawResponse != nil {
			// a status was received; OnAfterResponse counted it
			return
		}
		observe(req.Method, "error", time.Since(req.Time))
	})
}

func observe(method, code string, d time.Duration) {
	requestsTotal.WithLabelValues(method, code).Inc()
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
}
