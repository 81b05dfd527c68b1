// Package config loads architecture profiles for the x86 encoder from YAML files, environment
// variables (X86_MODE, X86_RIP_RELATIVE, X86_FEATURES, ...) and command-line flags.
//
// A profile file looks like:
//
//	mode: 64
//	rip_relative: false
//	features: [sse, sse2]
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/wdamron/x86"
	"github.com/wdamron/x86/feats"
)

const EnvPrefix = "X86"

// Configuration keys.
const (
	KeyMode        = "mode"
	KeyOperandSize = "operand_size"
	KeyAddressSize = "address_size"
	KeyRIPRelative = "rip_relative"
	KeyFeatures    = "features"
)

// New creates a viper instance reading X86_* environment variables, with the defaults of the
// 64-bit profile.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")
	v.SetDefault(KeyMode, 64)
	v.SetDefault(KeyFeatures, []string{"all"})
	return v
}

// BindFlags registers --mode, --rip-relative and --features on fs and binds them to v.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.Int("mode", 64, "processor mode (16, 32 or 64)")
	fs.Bool("rip-relative", true, "encode absolute memory operands RIP-relative in 64-bit mode")
	fs.StringSlice("features", []string{"all"}, "enabled CPU features")
	for key, flag := range map[string]string{KeyMode: "mode", KeyRIPRelative: "rip-relative", KeyFeatures: "features"} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// Read loads a YAML profile from r.
func Read(r io.Reader) (x86.Arch, error) {
	v := New()
	if err := v.ReadConfig(r); err != nil {
		return x86.Arch{}, fmt.Errorf("config: %w", err)
	}
	return Load(v)
}

// ReadFile loads a profile from a file; its type is taken from the extension.
func ReadFile(path string) (x86.Arch, error) {
	v := New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return x86.Arch{}, fmt.Errorf("config: %w", err)
	}
	return Load(v)
}

// Load builds an architecture from the mode preset, overridden by whatever other keys are set.
func Load(v *viper.Viper) (x86.Arch, error) {
	arch, err := x86.ArchFor(feats.Mode(v.GetInt(KeyMode)))
	if err != nil {
		return x86.Arch{}, fmt.Errorf("config: %w", err)
	}
	if v.IsSet(KeyOperandSize) {
		if arch.OperandSize, err = size(v.GetInt(KeyOperandSize)); err != nil {
			return x86.Arch{}, err
		}
	}
	if v.IsSet(KeyAddressSize) {
		if arch.AddressSize, err = size(v.GetInt(KeyAddressSize)); err != nil {
			return x86.Arch{}, err
		}
	}
	if v.IsSet(KeyRIPRelative) {
		arch.RIPRelative = v.GetBool(KeyRIPRelative) && arch.Mode == feats.Mode64
	}
	if arch.Features, err = features(v.GetStringSlice(KeyFeatures)); err != nil {
		return x86.Arch{}, err
	}
	return arch, nil
}

func size(bits int) (x86.DataSize, error) {
	switch bits {
	case 16, 32, 64:
		s, _ := x86.SizeOfBits(bits)
		return s, nil
	}
	return x86.SizeNone, fmt.Errorf("config: unsupported size %d", bits)
}

func features(names []string) (feats.Feature, error) {
	var fs feats.Feature
	for _, name := range names {
		// X86_FEATURES=sse,sse2 arrives as a single element
		for _, name := range strings.Split(name, ",") {
			name = strings.TrimSpace(name)
			switch strings.ToLower(name) {
			case "":
				continue
			case "all":
				fs |= feats.AllFeatures
				continue
			}
			f, ok := feats.ParseFeature(name)
			if !ok {
				return 0, fmt.Errorf("config: unknown CPU feature %q", name)
			}
			fs |= f
		}
	}
	return fs, nil
}
