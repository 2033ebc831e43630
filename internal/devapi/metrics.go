package devapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "circuna_devapi"

// UserLookupsTotal counts lookup requests.
// Labels:
//   - by: "phone" or "id"
//   - result: "found" or "not_found"
var UserLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "user_lookups_total",
		Help:      "Total number of user lookup requests, by key and result.",
	},
	[]string{"by", "result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - kind: "customer" or "provider"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "registrations_total",
		Help:      "Total number of users registered, by account kind.",
	},
	[]string{"kind"},
)
