package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"stegno/internal/logging"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	profilersMu sync.Mutex
	cpuProfiler *cpuProfilerState
	memProfiler *memProfilerState
)

type cpuProfilerState struct {
	profileOutput *os.File
}

type memProfilerState struct {
	dumpPath           string
	logger             *logging.Logger
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	stopped            chan struct{}
}

// StartProfilers starts whichever profilers have a destination set. Empty arguments are skipped.
func StartProfilers(cpuProfile, memProfileDir string, logger *logging.Logger) error {
	if cpuProfile != "" {
		if err := StartCPUProfiler(cpuProfile); err != nil {
			return err
		}
	}
	if memProfileDir != "" {
		StartMemoryProfiler(memProfileDir, logger)
	}
	return nil
}

// StopProfilers flushes any running profiler. Safe to call more than once.
func StopProfilers() {
	StopCPUProfiler()
	StopMemoryProfiler()
}

func StartCPUProfiler(profilePath string) error {
	profilersMu.Lock()
	defer profilersMu.Unlock()
	if cpuProfiler != nil {
		return nil
	}

	profileOutput, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("creating cpu profile: %w", err)
	}
	runtime.SetCPUProfileRate(500)
	if err = pprof.StartCPUProfile(profileOutput); err != nil {
		profileOutput.Close()
		return fmt.Errorf("starting cpu profiler: %w", err)
	}
	cpuProfiler = &cpuProfilerState{profileOutput: profileOutput}
	return nil
}

func StopCPUProfiler() {
	profilersMu.Lock()
	defer profilersMu.Unlock()
	if cpuProfiler == nil {
		return
	}
	pprof.StopCPUProfile()
	cpuProfiler.profileOutput.Close()
	cpuProfiler = nil
}

func StartMemoryProfiler(profileDumpPath string, logger *logging.Logger) {
	if MemorySampleRate <= 0 {
		return
	}

	profilersMu.Lock()
	defer profilersMu.Unlock()
	if memProfiler != nil {
		return
	}
	mp := &memProfilerState{dumpPath: profileDumpPath, logger: logger, shouldProfilerStop: make(chan struct{}), stopped: make(chan struct{})}
	memProfiler = mp

	go func() {
		defer close(mp.stopped)
		ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-mp.shouldProfilerStop:
				return
			case <-ticker.C:
				mp.dump()
			}
		}
	}()
}

func (mp *memProfilerState) dump() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err != nil {
		mp.logger.WithError(err).Error("Error dumping memory profile")
		return
	}
	mp.heapDumps = append(mp.heapDumps, w.Bytes())
}

func StopMemoryProfiler() {
	profilersMu.Lock()
	mp := memProfiler
	memProfiler = nil
	profilersMu.Unlock()
	if mp == nil {
		return
	}

	close(mp.shouldProfilerStop)
	<-mp.stopped
	mp.dump()
	if err := os.MkdirAll(mp.dumpPath, os.ModePerm); err != nil {
		mp.logger.WithError(err).Error("Error creating memory profile directory", "dir", mp.dumpPath)
		return
	}
	for dIdx, dump := range mp.heapDumps {
		err := os.WriteFile(filepath.Join(mp.dumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0664)
		if err != nil {
			mp.logger.WithError(err).Error("Error writing memory profile to disk", "dump", dIdx)
		}
	}
}
