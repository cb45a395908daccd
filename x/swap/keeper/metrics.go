package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the swap module. A nil *Metrics
// on the keeper disables instrumentation.
type Metrics struct {
	SwapsTotal           prometheus.Counter
	PairsCreated         prometheus.Counter
	LiquidityProvides    prometheus.Counter
	LiquidityWithdrawals prometheus.Counter
}

var (
	swapMetricsOnce sync.Once
	swapMetrics     *Metrics
)

// NewMetrics creates and registers swap metrics (singleton pattern)
func NewMetrics() *Metrics {
	swapMetricsOnce.Do(func() {
		swapMetrics = &Metrics{
			SwapsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "swap",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
			),
			PairsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "swap",
					Name:      "pairs_created_total",
					Help:      "Total number of pairs registered",
				},
			),
			LiquidityProvides: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "swap",
					Name:      "liquidity_provides_total",
					Help:      "Total number of liquidity deposits",
				},
			),
			LiquidityWithdrawals: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "meridian",
					Subsystem: "swap",
					Name:      "liquidity_withdrawals_total",
					Help:      "Total number of liquidity withdrawals",
				},
			),
		}
	})
	return swapMetrics
}
