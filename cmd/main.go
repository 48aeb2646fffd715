// Command tether-bench times the partitioned search across block counts
// and exercises the guarded counter contract. It is a measurement
// harness around the library, not part of it.
package main

import (
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/baxromumarov/tether"
	"github.com/baxromumarov/tether/parscan"
)

const (
	seqLen      = 1 << 24
	counterIter = 1_000_000
	workers     = 4
)

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	searchDemo(log)
	counterDemo(log)
}

func searchDemo(log *zap.Logger) {
	seq := make([]int64, seqLen)
	for i := range seq {
		seq[i] = int64(i)
	}
	target := seq[len(seq)-1] // worst case: last element

	for _, blocks := range []int{1, 2, 4, runtime.NumCPU(), 4 * runtime.NumCPU()} {
		start := time.Now()
		found, err := parscan.Find(seq, target, blocks)
		elapsed := time.Since(start)

		if err != nil {
			log.Error("search failed", zap.Int("blocks", blocks), zap.Error(err))
			continue
		}
		log.Info("search",
			zap.Int("blocks", blocks),
			zap.Bool("found", found),
			zap.Duration("elapsed", elapsed),
		)
	}
}

func counterDemo(log *zap.Logger) {
	c := tether.NewCounter(0)

	start := time.Now()
	handles := make([]*tether.Handle, 0, 2*workers)
	for w := 0; w < workers; w++ {
		handles = append(handles, tether.Spawn("inc", func() {
			for i := 0; i < counterIter; i++ {
				_ = c.Increment()
			}
		}))
		handles = append(handles, tether.Spawn("dec", func() {
			for i := 0; i < counterIter; i++ {
				_ = c.Decrement()
			}
		}))
	}
	for _, h := range handles {
		if err := h.Join(); err != nil {
			log.Fatal("join failed", zap.String("task", h.Name()), zap.Error(err))
		}
	}

	v, err := c.Read()
	if err != nil {
		log.Fatal("counter read failed", zap.Error(err))
	}
	log.Info("guarded counter",
		zap.Int("workers", 2*workers),
		zap.Int("iterations", counterIter),
		zap.Int64("final", v),
		zap.Duration("elapsed", time.Since(start)),
	)
}
