// Command optmodel runs the optimization-model pipeline on a JSON
// model description, end to end or one stage at a time.
//
// Usage:
//
//	optmodel -mode validate model.json
//	optmodel -mode solve    model.json
//	optmodel -mode region   model.json
//	cat model.json | optmodel -mode solve
//
// Output is JSON on stdout. A model that fails validation stops the
// pipeline before the solver is touched.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/model"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/region"
	"github.com/JorgeMoragaCalvo/theses-impl-sub000/solver"
)

// newMIPBackend is replaced on platforms where the HiGHS backend builds.
var newMIPBackend = func() solver.MIPBackend { return nil }

func main() {
	mode := flag.String("mode", "solve", "pipeline stage: validate, solve or region")
	feasTol := flag.Float64("feas-tol", region.DefaultFeasTol, "feasibility tolerance for region mode")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: optmodel [-mode validate|solve|region] [model.json]")
		os.Exit(2)
	}

	data, err := readDescription(flag.Arg(0))
	if err != nil {
		log.Fatalf("optmodel: %v", err)
	}
	m, err := model.ParseDescription(data)
	if err != nil {
		log.Fatalf("optmodel: %v", err)
	}

	var out any
	switch *mode {
	case "validate":
		out = model.Validate(m)
	case "solve":
		rep := model.Validate(m)
		if !rep.Valid {
			emit(rep)
			os.Exit(1)
		}
		ad := solver.New(solver.NewSimplexBackend(), newMIPBackend(), solver.DefaultOptions())
		out = ad.Solve(m)
	case "region":
		rep := model.Validate(m)
		if !rep.Valid {
			emit(rep)
			os.Exit(1)
		}
		opts := region.DefaultOptions()
		opts.FeasTol = *feasTol
		reg, err := region.Compute(m, opts)
		if err != nil {
			log.Fatalf("optmodel: %v", err)
		}
		reg.Vertices = region.SortCCW(reg.Vertices)
		out = reg
	default:
		log.Fatalf("optmodel: unknown mode %q", *mode)
	}

	emit(out)
}

// readDescription loads the model JSON from the named file, or from
// stdin when the name is empty or "-".
func readDescription(name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("optmodel: %v", err)
	}
}
