package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/hailam/chessplay/internal/engine"
	"github.com/hailam/chessplay/internal/storage"
	"github.com/hailam/chessplay/internal/uci"
)

var (
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to file")
	telemetryDir = flag.String("telemetry-dir", "", "directory for the search telemetry database (default: OS data dir)")
	uctC         = flag.Float64("uct-c", 0.6, "UCT exploration constant")
	noTelemetry  = flag.Bool("no-telemetry", false, "disable search telemetry persistence")
)

func main() {
	flag.Parse()

	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	eng := engine.NewEngine()
	eng.SetExplorationConstant(*uctC)

	telemetry, err := openTelemetry()
	if err != nil {
		log.Fatal("could not open telemetry store: ", err)
	}

	protocol := uci.New(eng, telemetry)
	protocol.Run()
}

// openTelemetry opens the search-telemetry store, honoring -no-telemetry
// and -telemetry-dir. With -no-telemetry it returns a nil store and no
// error; otherwise a failure to open is returned, and main treats it as a
// fatal startup error.
func openTelemetry() (*storage.Storage, error) {
	if *noTelemetry {
		return nil, nil
	}

	dir := *telemetryDir
	if dir == "" {
		var err error
		dir, err = storage.GetTelemetryDir()
		if err != nil {
			return nil, err
		}
	}

	return storage.NewStorage(dir)
}
