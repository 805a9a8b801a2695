package opts

import "github.com/spf13/pflag"

// Global holds the flags shared by every command.
type Global struct {
	// File is the gradebook data file.
	File    string
	NoColor bool
}

// AddToFlagSet registers the global flags.
func (g *Global) AddToFlagSet(set *pflag.FlagSet) {
	set.StringVarP(&g.File, "file", "f", g.File, "gradebook data file")
	set.BoolVar(&g.NoColor, "nocolor", g.NoColor, "turn off colors")
}
