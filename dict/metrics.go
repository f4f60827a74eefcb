package dict

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var dictionaryOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pdict_dictionary_ops",
	Help: "Dictionary operations, by type and result",
}, []string{"op", "status"})

var insertDepth = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "pdict_dictionary_insert_depth",
	Help:    "Depth in the tree at which new keys are inserted",
	Buckets: prometheus.ExponentialBuckets(1, 2, 16),
})
