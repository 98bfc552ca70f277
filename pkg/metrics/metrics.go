package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics. The tail is wide enough
// to cover PDF rendering and checkout round trips to the payment provider.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals
