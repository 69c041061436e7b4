// Package config parses the comma-separated key[=value] configuration
// grammar of spec.md §6 into a typed Options record, the way
// original_source/uct/uct.c's uct_state_init option parser walks the
// same grammar into C struct fields. Unknown keys or missing required
// values are a fatal configuration error (spec.md §7): Parse reports
// them as an ordinary error for testability, and ParseOrExit — what
// cmd/ binaries and engine.Engine.Configure actually call — turns that
// error into a logged diagnostic and process exit.
package config

import (
	"log"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PolicySpec is a `name[:args]` value, e.g. `policy=ucb1amaf:15000`.
type PolicySpec struct {
	Name string
	Args string
}

func parsePolicySpec(v string) PolicySpec {
	name, args, _ := strings.Cut(v, ":")
	return PolicySpec{Name: name, Args: args}
}

// Options is the full set of knobs spec.md §6's grammar can set. Zero
// value is not directly usable; start from Defaults().
type Options struct {
	Debug int

	Games     int
	Gamelen   int
	ExpandP   uint32
	DumpThres uint32

	Policy             PolicySpec
	RandomPolicy       PolicySpec
	RandomPolicyChance int

	Playout   PolicySpec
	Prior     PolicySpec
	AmafPrior bool

	Threads     int
	ThreadModel string // "none" or "root"

	ForceSeed    int64
	HasForceSeed bool

	NoBook bool

	Dynkomi      bool
	DynkomiValue int
	DynkomiMask  int

	ValScale  float64
	ValPoints float64
	ValExtra  bool

	RootHeuristic int

	PassAllAlive bool

	PlayoutAmaf       bool
	PlayoutAmafNakade bool
	PlayoutAmafCutoff int

	Banner string
}

// Defaults mirrors original_source/uct/uct.c's built-in option values.
func Defaults() Options {
	return Options{
		Games:       80000,
		Gamelen:     400,
		ExpandP:     2,
		DumpThres:   100,
		Policy:      PolicySpec{Name: "ucb1amaf"},
		Playout:     PolicySpec{Name: "moggy"},
		Threads:     1,
		ThreadModel: "root",
		ValPoints:   20,
	}
}

// Parse applies a comma-separated key[=value] config string on top of
// Defaults() and returns the result. The "banner" key, if present, must
// be last — everything after its '=' (including further commas) is
// taken verbatim as the banner text, per spec.md §6.
func Parse(spec string) (Options, error) {
	opt := Defaults()
	if spec == "" {
		return opt, nil
	}

	pairs := strings.Split(spec, ",")
	for i := 0; i < len(pairs); i++ {
		key, value, hasValue := strings.Cut(pairs[i], "=")
		key = strings.TrimSpace(key)

		if key == "banner" {
			rest := pairs[i+1:]
			if hasValue {
				opt.Banner = strings.Join(append([]string{value}, rest...), ",")
			} else {
				opt.Banner = strings.Join(rest, ",")
			}
			break
		}

		if err := opt.apply(key, value, hasValue); err != nil {
			return Options{}, errors.Wrapf(err, "config key %q", key)
		}
	}
	return opt, nil
}

func (opt *Options) apply(key, value string, hasValue bool) error {
	switch key {
	case "debug":
		return setInt(&opt.Debug, value, hasValue, key)
	case "games":
		return setInt(&opt.Games, value, hasValue, key)
	case "gamelen":
		return setInt(&opt.Gamelen, value, hasValue, key)
	case "expand_p":
		return setUint32(&opt.ExpandP, value, hasValue, key)
	case "dumpthres":
		return setUint32(&opt.DumpThres, value, hasValue, key)
	case "policy":
		if !hasValue {
			return errors.New("requires a value")
		}
		opt.Policy = parsePolicySpec(value)
	case "random_policy":
		if !hasValue {
			return errors.New("requires a value")
		}
		opt.RandomPolicy = parsePolicySpec(value)
	case "random_policy_chance":
		return setInt(&opt.RandomPolicyChance, value, hasValue, key)
	case "playout":
		if !hasValue {
			return errors.New("requires a value")
		}
		opt.Playout = parsePolicySpec(value)
	case "prior":
		if !hasValue {
			return errors.New("requires a value")
		}
		opt.Prior = parsePolicySpec(value)
	case "amaf_prior":
		return setBool(&opt.AmafPrior, value, hasValue, true)
	case "threads":
		return setInt(&opt.Threads, value, hasValue, key)
	case "thread_model":
		if !hasValue || (value != "none" && value != "root") {
			return errors.New("must be none or root")
		}
		opt.ThreadModel = value
	case "force_seed":
		n, err := setInt64(value, hasValue, key)
		if err != nil {
			return err
		}
		opt.ForceSeed = n
		opt.HasForceSeed = true
	case "no_book":
		opt.NoBook = true
	case "dynkomi":
		opt.Dynkomi = true
		if hasValue {
			return setInt(&opt.DynkomiValue, value, hasValue, key)
		}
	case "dynkomi_mask":
		return setInt(&opt.DynkomiMask, value, hasValue, key)
	case "val_scale":
		return setFloat(&opt.ValScale, value, hasValue, key)
	case "val_points":
		return setFloat(&opt.ValPoints, value, hasValue, key)
	case "val_extra":
		return setBool(&opt.ValExtra, value, hasValue, true)
	case "root_heuristic":
		return setInt(&opt.RootHeuristic, value, hasValue, key)
	case "pass_all_alive":
		return setBool(&opt.PassAllAlive, value, hasValue, true)
	case "playout_amaf":
		return setBool(&opt.PlayoutAmaf, value, hasValue, true)
	case "playout_amaf_nakade":
		return setBool(&opt.PlayoutAmafNakade, value, hasValue, true)
	case "playout_amaf_cutoff":
		return setInt(&opt.PlayoutAmafCutoff, value, hasValue, key)
	default:
		return errors.Errorf("unrecognized key")
	}
	return nil
}

func setInt(dst *int, value string, hasValue bool, key string) error {
	if !hasValue {
		return errors.Errorf("%s requires a value", key)
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = n
	return nil
}

func setInt64(value string, hasValue bool, key string) (int64, error) {
	if !hasValue {
		return 0, errors.Errorf("%s requires a value", key)
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}
	return n, nil
}

func setUint32(dst *uint32, value string, hasValue bool, key string) error {
	if !hasValue {
		return errors.Errorf("%s requires a value", key)
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = uint32(n)
	return nil
}

func setFloat(dst *float64, value string, hasValue bool, key string) error {
	if !hasValue {
		return errors.Errorf("%s requires a value", key)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = f
	return nil
}

// setBool parses an optional 0/1 value; a bare key (no '=') means
// defaultWhenBare, matching spec.md §6 keys like `amaf_prior=0/1` that
// are also written bare to mean "on".
func setBool(dst *bool, value string, hasValue bool, defaultWhenBare bool) error {
	if !hasValue {
		*dst = defaultWhenBare
		return nil
	}
	switch value {
	case "0":
		*dst = false
	case "1":
		*dst = true
	default:
		return errors.New("must be 0 or 1")
	}
	return nil
}

// ParseOrExit is what engine.Engine.Configure and the cmd/ binaries
// call: a config error is a fatal one (spec.md §7), so this logs the
// diagnostic and terminates rather than propagating the error further.
func ParseOrExit(spec string, logger *log.Logger) Options {
	opt, err := Parse(spec)
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	return opt
}
