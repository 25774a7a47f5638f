// Package players provides a factory of engines from their names or configuration strings.
// It also allows engine providers to register themselves.
package players

import (
	"slices"
	"strings"

	"github.com/janpfeifer/chessGo/internal/generics"
	"github.com/janpfeifer/chessGo/internal/parameters"
	"github.com/janpfeifer/chessGo/internal/searchers"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Builder creates an engine from its parameters. It must remove (see parameters.PopParamOr) every
// parameter it uses: leftover parameters are reported as unknown.
type Builder func(params parameters.Params) (searchers.Searcher, error)

var (
	// Registered modules.
	keywordToBuilders = make(map[string]Builder)
)

// RegisterModule so it can be used by any of the front-ends. It is usually called from an init() function,
// see package internal/players/default.
func RegisterModule(name string, builder Builder) {
	keywordToBuilders[name] = builder
}

// Presets are the named engines, and the configuration they stand for.
var Presets = map[string]string{
	"random":      "random",
	"greedy":      "greedy",
	"l0.mat":      "l0:eval=mat",
	"l1.mat":      "l1:eval=mat",
	"l0.mob":      "l0:eval=mob",
	"l1.mob":      "l1:eval=mob",
	"ab2.mat":     "ab:max_depth=2,eval=mat",
	"ab3.mat":     "ab:max_depth=3,eval=mat",
	"ab4.mat":     "ab:max_depth=4,eval=mat",
	"par.ab4.mat": "ab:max_depth=4,eval=mat,parallel",
	"par.ab5.mat": "ab:max_depth=5,eval=mat,parallel",
}

// PresetNames returns the sorted names of the presets.
func PresetNames() []string {
	return slices.Collect(generics.SortedKeys(Presets))
}

// Resolve creates the engine given its name.
//
// Args:
//
//   - name: either one of the Presets (e.g. "ab4.mat") or a module name followed by an optional colon (":")
//     and a comma-separated list of parameters with optional values associated, e.g.: "ab:max_depth=4,eval=mob".
//
// Parameters common to all modules:
//
//   - randomness (float): Adds a layer of randomness in the search: the first level choice is
//     distributed according to a softmax of the scores of each move, divided by this value.
//     So lower values (closer to 0) means less randomness, higher value means more randomness,
//     hence more exploration. Default is 0. Only for modules that can score all their moves.
//
// More details on the parameters are dependent on the module used. No engine is returned if there are
// any errors.
func Resolve(name string) (searchers.Searcher, error) {
	config := strings.TrimSpace(name)
	if preset, found := Presets[config]; found {
		config = preset
	}

	// Find moduleName.
	moduleName := config
	if moduleSplit := strings.Index(config, ":"); moduleSplit != -1 {
		moduleName = config[:moduleSplit]
		config = config[moduleSplit+1:]
	} else {
		config = ""
	}
	builder, ok := keywordToBuilders[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown engine: %s", name)
	}

	params := parameters.NewFromConfigString(config)
	randomness, err := parameters.PopParamOr(params, "randomness", float32(0))
	if err != nil {
		return nil, errors.WithMessagef(err, "engine %q", name)
	}
	if randomness < 0 {
		return nil, errors.Errorf("engine %q: randomness must be >= 0, got %g", name, randomness)
	}
	searcher, err := builder(params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create engine %q", name)
	}
	if err = parameters.CheckAllUsed(params); err != nil {
		return nil, errors.WithMessagef(err, "engine %q", name)
	}
	if randomness > 0 {
		scoring, ok := searcher.(searchers.ScoringSearcher)
		if !ok {
			return nil, errors.Errorf("engine %q doesn't score its moves, it can't use randomness", name)
		}
		searcher = searchers.NewRandomizedSearcher(scoring, randomness)
	}
	if klog.V(1).Enabled() {
		klog.Infof("Engine %q resolved to %s", name, searcher)
	}
	return searcher, nil
}
