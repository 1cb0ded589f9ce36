package metrics

import "time"

// ObserveClassification records a finished classification request with its
// terminal outcome ("ok", "cached", "rate_limited", "embedding_failed").
func (m *Metrics) ObserveClassification(outcome string) {
	m.classificationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveCacheLookup records a cache lookup result ("hit" or "miss").
func (m *Metrics) ObserveCacheLookup(result string) {
	m.cacheLookupsTotal.WithLabelValues(result).Inc()
}

// ObserveRateLimited records a request rejected at admission.
func (m *Metrics) ObserveRateLimited() {
	m.rateLimitedTotal.Inc()
}

// ObserveDegradedRetrieval records a retrieval that fell back to empty
// context ("taxonomy" or "examples").
func (m *Metrics) ObserveDegradedRetrieval(source string) {
	m.degradedRetrievals.WithLabelValues(source).Inc()
}

// ObserveDuration records end-to-end latency for a request, split by
// whether the response came from cache.
func (m *Metrics) ObserveDuration(start time.Time, cached bool) {
	label := "false"
	if cached {
		label = "true"
	}
	m.requestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
}
