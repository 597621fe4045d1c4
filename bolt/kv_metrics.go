package bolt

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	bolt "go.etcd.io/bbolt"
)

var _ prometheus.Collector = (*KVStore)(nil)

var (
	kvWritesDesc = prometheus.NewDesc(
		"boltdb_writes_total",
		"Total number of boltdb writes",
		nil, nil)

	kvReadsDesc = prometheus.NewDesc(
		"boltdb_reads_total",
		"Total number of boltdb reads",
		nil, nil)
)

// entityBuckets maps each catalog entity kind to its primary record bucket.
// Index and association buckets are deliberately excluded from the counts.
var entityBuckets = map[string][]byte{
	"users":     []byte("usersv1"),
	"vos":       []byte("vosv1"),
	"clusters":  []byte("clustersv1"),
	"instances": []byte("instancesv1"),
}

func entityDesc(kind string) *prometheus.Desc {
	return prometheus.NewDesc(
		fmt.Sprintf("catalog_%s_total", kind),
		fmt.Sprintf("Number of total %s in the catalog", kind),
		nil, nil)
}

// Describe returns all descriptions of the collector.
func (s *KVStore) Describe(ch chan<- *prometheus.Desc) {
	ch <- kvWritesDesc
	ch <- kvReadsDesc
	for kind := range entityBuckets {
		ch <- entityDesc(kind)
	}
}

// Collect returns the current state of all metrics of the collector.
func (s *KVStore) Collect(ch chan<- prometheus.Metric) {
	stats := s.db.Stats()
	writes := stats.TxStats.Write
	reads := stats.TxN

	ch <- prometheus.MustNewConstMetric(
		kvReadsDesc,
		prometheus.CounterValue,
		float64(reads),
	)

	ch <- prometheus.MustNewConstMetric(
		kvWritesDesc,
		prometheus.CounterValue,
		float64(writes),
	)

	_ = s.db.View(func(tx *bolt.Tx) error {
		for kind, bucketName := range entityBuckets {
			keyNum := 0
			if b := tx.Bucket(bucketName); b != nil {
				keyNum = b.Stats().KeyN
			}

			ch <- prometheus.MustNewConstMetric(
				entityDesc(kind),
				prometheus.GaugeValue,
				float64(keyNum),
			)
		}
		return nil
	})
}
