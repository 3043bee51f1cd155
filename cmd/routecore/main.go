// Command routecore drives one full pipeline run: fill GCells, place pins,
// realize stacks, route, verify, encode cost maps, and emit them, per spec
// §2's control flow and §6's CLI convention (exit 0 on completion, nonzero
// on a fatal error). Loading LEF/DEF/guide input is out of scope; this
// binary reads a design.Data dump produced by an external parser.
package main

import (
	"encoding/gob"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	routecore "github.com/vlsirt/routecore"
	"github.com/vlsirt/routecore/costmap"
	"github.com/vlsirt/routecore/design"
	"github.com/vlsirt/routecore/gcell"
	"github.com/vlsirt/routecore/geom"
	"github.com/vlsirt/routecore/routelog"
)

func main() {
	dataPath := flag.String("data", "", "path to a gob-encoded design.Data dump (required)")
	outDir := flag.String("out", ".", "directory cost-map tensors are written to")
	stacksFlag := flag.String("stacks", "1:3", "comma-separated bottom:top metal pairs, bottom-to-top")
	workers := flag.Int("workers", 4, "verifier worker count")
	verbosity := flag.Int("v", 0, "log verbosity (0=INFO, 1=DEBUG)")
	flag.Parse()

	log := routelog.NewConsole(os.Stderr, *verbosity)
	atexit.Register(func() { routelog.Debug(log, "pipeline exiting") })

	if *dataPath == "" {
		log.Error(nil, "missing required -data flag")
		atexit.Exit(1)
		return
	}

	data, err := loadData(*dataPath)
	if err != nil {
		log.Error(err, "failed to load design data", "path", *dataPath)
		atexit.Exit(1)
		return
	}

	stacks, baseMetal, topMetal, err := parseStacks(*stacksFlag)
	if err != nil {
		log.Error(err, "bad -stacks flag", "value", *stacksFlag)
		atexit.Exit(1)
		return
	}

	p := routecore.NewPipeline(log, data, baseMetal, topMetal, stacks)

	steps := []struct {
		name string
		run  func() error
	}{
		{"fill_gcells", p.FillGCells},
		{"setup_obstacles", p.SetupObstacles},
		{"setup_inner_pins", p.SetupInnerPins},
		{"setup_cross_pins", p.SetupCrossPins},
		{"setup_between_stack_pins", p.SetupBetweenStackPins},
		{"setup_stacks", p.SetupStacks},
		{"route_nets", p.RouteNets},
		{"verify", func() error { return p.Verify(*workers) }},
		{"encode_cost_maps", func() error { return p.EncodeCostMaps() }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			log.Error(err, "pipeline step failed", "step", step.name)
			atexit.Exit(1)
			return
		}
		routelog.Success(log, "pipeline step complete", "step", step.name)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Error(err, "failed to create output directory", "dir", *outDir)
		atexit.Exit(1)
		return
	}
	for _, cm := range p.CostMaps {
		name := fmt.Sprintf("gcell_%d_%d_stack%d_%s.bin", cm.GCellX, cm.GCellY, cm.StackIndex, cm.Net)
		if err := writeCostMap(filepath.Join(*outDir, name), cm.Map); err != nil {
			log.Error(err, "failed to emit cost map", "net", cm.Net)
			atexit.Exit(1)
			return
		}
	}

	p.Summary.Render(os.Stdout)
	if !p.Summary.OK() {
		routelog.Warning(log, "pipeline completed with recoverable failures", "count", len(p.Summary.Failures))
	}

	atexit.Exit(0)
}

// loadData decodes a gob-encoded design.Data from path.
func loadData(path string) (*design.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", design.ErrInputNotFound, err)
	}
	defer f.Close()

	var data design.Data
	if err := gob.NewDecoder(f).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", design.ErrInputMalformed, err)
	}
	return &data, nil
}

// writeCostMap opens path and emits cm's two layers to it via
// routecore.Emit, the §6 tensor I/O contract.
func writeCostMap(path string, cm costmap.CostMap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return routecore.Emit(f, cm)
}

// parseStacks turns "b0:t0,b1:t1,..." into bottom-to-top StackSpecs, plus
// the overall base (lowest bottom) and top (highest top) metal.
func parseStacks(s string) ([]gcell.StackSpec, geom.Metal, geom.Metal, error) {
	parts := strings.Split(s, ",")
	specs := make([]gcell.StackSpec, 0, len(parts))
	var base, top geom.Metal
	for i, part := range parts {
		bt := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(bt) != 2 {
			return nil, 0, 0, fmt.Errorf("%w: stack entry %q", design.ErrInputMalformed, part)
		}
		b, err := strconv.Atoi(bt[0])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: stack entry %q", design.ErrInputMalformed, part)
		}
		t, err := strconv.Atoi(bt[1])
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: stack entry %q", design.ErrInputMalformed, part)
		}
		specs = append(specs, gcell.StackSpec{Bottom: geom.Metal(b), Top: geom.Metal(t)})
		if i == 0 || geom.Metal(b) < base {
			base = geom.Metal(b)
		}
		if i == 0 || geom.Metal(t) > top {
			top = geom.Metal(t)
		}
	}
	return specs, base, top, nil
}
