// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the set of collectors recorded by the score service.
type Metrics struct {
	BidsSubmitted  *prometheus.CounterVec
	GamesCompleted *prometheus.CounterVec
	HistoryMoves   *prometheus.CounterVec
	RPCDuration    *prometheus.HistogramVec
	LiveGames      prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BidsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fivehundred",
			Name:      "bids_submitted_total",
			Help:      "Rounds scored, by suit and whether the bid was made.",
		}, []string{"suit", "outcome"}),
		GamesCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fivehundred",
			Name:      "games_completed_total",
			Help:      "Games that reached game over, by how they ended.",
		}, []string{"result"}),
		HistoryMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fivehundred",
			Name:      "history_moves_total",
			Help:      "Successful undo and redo steps.",
		}, []string{"direction"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "fivehundred",
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
		LiveGames: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fivehundred",
			Name:      "live_games",
			Help:      "Games currently held in memory.",
		}),
	}
	reg.MustRegister(m.BidsSubmitted, m.GamesCompleted, m.HistoryMoves, m.RPCDuration, m.LiveGames)
	return m
}

// ObserveBid counts a scored round.
func (m *Metrics) ObserveBid(suit string, made bool) {
	outcome := "failed"
	if made {
		outcome = "made"
	}
	m.BidsSubmitted.WithLabelValues(suit, outcome).Inc()
}

// ObserveGameOver counts a finished game. result is "target" or "bust".
func (m *Metrics) ObserveGameOver(result string) {
	m.GamesCompleted.WithLabelValues(result).Inc()
}

// ObserveHistoryMove counts an undo or redo step.
func (m *Metrics) ObserveHistoryMove(direction string) {
	m.HistoryMoves.WithLabelValues(direction).Inc()
}

// ObserveRPC records one call's latency.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	m.RPCDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}
