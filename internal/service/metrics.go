package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	relationshipSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_relationship_sync_total",
			Help: "Relationship synchronizations by contact kind and result.",
		},
		[]string{"kind", "result"},
	)

	relationshipSyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "placement_relationship_sync_duration_seconds",
			Help:    "Time spent in one relationship upsert including the re-read.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	contactTxRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_contact_tx_retries_total",
			Help: "Contact transactions re-run after a retryable write conflict.",
		},
		[]string{"operation"},
	)

	inconsistentAccountsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placement_inconsistent_accounts_total",
			Help: "Organization accounts loaded with an inconsistent primary/secondary shape.",
		},
		[]string{"kind"},
	)

	ledgerRebuildEventsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "placement_ledger_rebuild_events_total",
			Help: "Contact events replayed by ledger rebuilds.",
		},
	)
)

const (
	resultOK    = "ok"
	resultError = "error"
)

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
