package dataset

import "fmt"

// Registry maps distribution names to sampler factory functions. Factory
// functions keep sampler instances independent, each generated file gets
// its own random source.
var Registry = map[string]func() Sampler{
	"uniform": func() Sampler { return &UniformSampler{} },
	"normal":  func() Sampler { return &NormalSampler{} },
	"pareto":  func() Sampler { return &ParetoSampler{Alpha: 3} },
}

// distributionOrder is the emission order for a full run.
var distributionOrder = []string{"uniform", "normal", "pareto"}

// Get returns a sampler by distribution name
func Get(name string) (Sampler, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown distribution: %s", name)
	}
	return factory(), nil
}

// List returns the registered distribution names in emission order
func List() []string {
	names := make([]string, len(distributionOrder))
	copy(names, distributionOrder)
	return names
}
