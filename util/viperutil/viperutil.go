// Copyright 2023 Intrinsic Innovation LLC

// Package viperutil provides utilities that make the integration of viper and cobra easier.
package viperutil

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const envPrefix = "nbcombine"

// BindToViper binds every flag of flags to a new viper instance. Flags for which
// bindToEnv returns true can also be set through NBCOMBINE_<FLAG_NAME>; a nil
// bindToEnv binds no environment variables.
func BindToViper(flags *pflag.FlagSet, bindToEnv func(name string) bool) *viper.Viper {
	v := viper.New()
	// The prefix must be set before any key is bound to the environment.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = v.BindPFlag(flag.Name, flag)
		if bindToEnv != nil && bindToEnv(flag.Name) {
			_ = v.BindEnv(flag.Name)
		}
	})
	return v
}

// BindToListEnv provides a suitable 2nd argument to BindToViper that binds the
// environment for the named flags only.
func BindToListEnv(names ...string) func(name string) bool {
	return func(name string) bool {
		return slices.Contains(names, name)
	}
}

// ReadConfigFile merges the settings in the file at path into v. An empty path is
// a no-op. Flags set on the command line keep precedence over the file.
func ReadConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	return v.ReadInConfig()
}
