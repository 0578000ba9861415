package cli

import (
	"time"

	"kts/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Kubeconfig string
	Suite      string
	Executor   string
	Timeout    time.Duration
	Wait       time.Duration
	FailFast   bool
	Filter     string
	OnlyFailed bool
	History    bool
	Limit      int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Kubeconfig: f.Kubeconfig,
		Suite:      f.Suite,
		Executor:   f.Executor,
		Timeout:    f.Timeout,
		Wait:       f.Wait,
		FailFast:   f.FailFast,
		Filter:     f.Filter,
		OnlyFailed: f.OnlyFailed,
		History:    f.History,
		Limit:      f.Limit,
	}
}
