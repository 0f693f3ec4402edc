package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BetsSettled = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_bets_settled_total",
		Help: "Settled rounds by game",
	}, []string{"game"})

	StakeValue = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_stake_value_total",
		Help: "Total staked value by game",
	}, []string{"game"})

	PayoutValue = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "casino_payout_value_total",
		Help: "Total credited payout value by game",
	}, []string{"game"})
)

func init() {
	prometheus.MustRegister(BetsSettled, StakeValue, PayoutValue)
}
