// Package metrics exposes Prometheus instrumentation for the HTTP API and
// the domain operations behind it.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodgram_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "foodgram_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Domain
	RelationChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_relation_changes_total",
			Help: "Favorite, shopping cart and subscription edges added or removed",
		},
		[]string{"kind", "op"},
	)

	RecipesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_recipes_written_total",
			Help: "Recipes created, updated or deleted",
		},
		[]string{"op"},
	)

	ShoppingListItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_items",
			Help:    "Number of aggregated rows in a generated shopping list",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		},
	)

	ImagesStored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodgram_images_stored_total",
			Help: "Images written to or removed from object storage",
		},
		[]string{"op", "result"},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest moves the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// Recorder adapts the package-level collectors to the small interfaces
// services depend on.
type Recorder struct{}

// RelationChanged counts an added or removed edge.
func (Recorder) RelationChanged(kind, op string) {
	RelationChanges.WithLabelValues(kind, op).Inc()
}

// RecipeWritten counts a recipe mutation.
func (Recorder) RecipeWritten(op string) {
	RecipesWritten.WithLabelValues(op).Inc()
}

// ShoppingListBuilt observes the size of a generated list.
func (Recorder) ShoppingListBuilt(items int) {
	ShoppingListItems.Observe(float64(items))
}

// ImageStored counts an object storage write or delete.
func (Recorder) ImageStored(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	ImagesStored.WithLabelValues(op, result).Inc()
}
