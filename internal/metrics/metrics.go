// Copyright 2025 Blink Labs Software
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package metrics

import (
	"math/big"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "powcheck"

// Rejection reasons used as the "reason" label
const (
	ReasonDecode  = "decode"
	ReasonPow     = "pow"
	ReasonLinkage = "linkage"
)

var (
	HeadersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "headers_accepted_total",
		Help:      "Number of headers which passed validation",
	})
	HeadersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "headers_rejected_total",
		Help:      "Number of headers which failed validation",
	}, []string{"reason"})
	TipHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tip_height",
		Help:      "Height of the last accepted header",
	})
	ChainWork = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "chain_work",
		Help:      "Cumulative work of accepted headers (approximate)",
	})
	buildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "build_info",
		Help:      "Build information",
	}, []string{"version", "commit"})
)

// SetChainWork records the cumulative chain work
func SetChainWork(work *uint256.Int) {
	f, _ := new(big.Float).SetInt(work.ToBig()).Float64()
	ChainWork.Set(f)
}

// SetBuildInfo publishes the build labels
func SetBuildInfo(labels map[string]string) {
	buildInfo.With(prometheus.Labels(labels)).Set(1)
}

// Handler returns the HTTP handler serving the registered metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
