// logscan runs a one-shot analysis of a single LAS file and prints the
// results as JSON, optionally writing a msgpack snapshot for downstream
// tooling.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/subsurfaceio/petrolog/internal/analysis"
	"github.com/subsurfaceio/petrolog/internal/log"
	"github.com/subsurfaceio/petrolog/internal/petro"
	"github.com/subsurfaceio/petrolog/internal/wellog/las"
)

func main() {
	lasFile := flag.String("las", "", "Path to the LAS file to analyze")
	kind := flag.String("kind", "evaluation", "Analysis to run: evaluation, reservoir, cleansand, highporosity")
	cutoff := flag.Float64("cutoff", 0, "Segmentation cutoff (0 uses the documented default)")
	snapshot := flag.String("snapshot", "", "Optional path to write a msgpack snapshot of the result")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	flag.Parse()

	if *lasFile == "" {
		fmt.Fprintln(os.Stderr, "usage: logscan -las <file.las> [-kind evaluation|reservoir|cleansand|highporosity]")
		os.Exit(2)
	}

	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ds, err := las.ParseFile(*lasFile)
	if err != nil {
		log.Fatalf("parse %s: %v", *lasFile, err)
	}
	log.Infof("loaded well %s: %d samples, curves %v", ds.Well, len(ds.Axis), ds.CurveNames())

	analyzer, err := analysis.New(ds, petro.Parameters{}, log.GetSugaredLogger())
	if err != nil {
		log.Fatalf("create analyzer: %v", err)
	}

	var result interface{}
	switch *kind {
	case "evaluation":
		result, err = analyzer.FormationEvaluation()
	case "reservoir":
		result, err = analyzer.ReservoirIntervals(*cutoff)
	case "cleansand":
		result, err = analyzer.CleanSandIntervals(*cutoff)
	case "highporosity":
		result, err = analyzer.HighPorosityZones(*cutoff)
	default:
		log.Fatalf("unknown analysis kind: %s", *kind)
	}
	if err != nil {
		log.Fatalf("%s analysis failed: %v", *kind, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}

	if *snapshot != "" {
		b, err := analysis.EncodeSnapshot(result)
		if err != nil {
			log.Fatalf("encode snapshot: %v", err)
		}
		if err := os.WriteFile(*snapshot, b, 0o644); err != nil {
			log.Fatalf("write snapshot: %v", err)
		}
		log.Infof("wrote snapshot to %s (%d bytes)", *snapshot, len(b))
	}
}
