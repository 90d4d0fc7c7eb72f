// Package metrics defines and registers all custom Prometheus metrics for the
// library API. It is the single source of truth for metric names, labels, and
// help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "library"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected authentication attempts on the request
// path.
// Label:
//   - reason: short description of the failure (e.g. "invalid_token", "not_authenticated")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication attempts.",
	},
	[]string{"reason"},
)

// BooksAddedTotal counts successfully persisted books.
var BooksAddedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "books_added_total",
		Help:      "Total number of books added to the catalog.",
	},
)

// AuthorsEditedTotal counts successful editAuthor mutations.
var AuthorsEditedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authors_edited_total",
		Help:      "Total number of author birth-year updates.",
	},
)
