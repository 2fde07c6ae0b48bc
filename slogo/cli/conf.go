package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/slogo"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate slogo configuration with an application-key of 'SLOGO' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "SLOGO", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		slogo.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		slogo.Exit(1)
	}
	slogo.Configuration = k // push the configuration to app-global scope
}

func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return bindParserLimits(konf.Koanf())
}

// bindParserLimits moves parser limits given as flags to their
// configuration keys.
func bindParserLimits(k *koanf.Koanf) error {
	n := k.Int("max-expansions")
	if n <= 0 {
		return nil
	}
	return k.Load(confmap.Provider(map[string]interface{}{
		"parser.max-expansions": n,
	}, "."), nil)
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	tracing.Infof("searching for trace redirection")
	paths := locateAppPaths()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Infof(rootCmd.Long)
	return nil
}

func locateAppPaths() AppPaths {
	paths, err := DefaultAppPaths("SLOGO")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
