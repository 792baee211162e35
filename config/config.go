// Package config implements configuration parsing for huffc.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Configuration specifies the complete huffc configuration.
type Configuration struct {
	File   string `toml:"-"`
	Output string `toml:"output"`
	Report string `toml:"report"` // Path of the protobuf report; empty disables it
	Quiet  bool   `toml:"quiet"`

	Server Server `toml:"server"`

	// Args holds the positional arguments left after flag parsing.
	Args []string `toml:"-"`
}

// Server specifies options for the HTTP collaborator.
type Server struct {
	Addr         string `toml:"addr"` // Empty runs the command line mode
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

const (
	envPrefix         = "HUFFC_"
	defaultConfigFile = "huffc.toml"
)

// Default returns the configuration used when nothing is specified.
func Default() Configuration {
	return Configuration{
		File:   defaultConfigFile,
		Output: "compressed.bin",
		Server: Server{
			MaxBodyBytes: 64 << 20,
		},
	}
}

// Parse all configuration.
//
// The precedence is:
//
//	command line flags > environment > configuration file > defaults
func Parse(args []string) (Configuration, error) {
	config := Default()

	config.File = findConfigFile(args)
	if err := parseConfigFile(&config); err != nil {
		return config, err
	}

	flags := flag.NewFlagSet("huffc", flag.ContinueOnError)
	setupFlags(flags, &config)
	if err := flags.Parse(args); err != nil {
		return config, err
	}
	if err := setUnsetFlagsFromEnv(flags); err != nil {
		return config, err
	}

	config.Args = flags.Args()
	return config, nil
}

func setupFlags(flags *flag.FlagSet, config *Configuration) {
	flags.StringVar(&config.File, "config", config.File, "The path to the configuration file")
	flags.StringVar(&config.Output, "o", config.Output, "The path the compressed artifact is written to")
	flags.StringVar(&config.Report, "report", config.Report, "Write a protobuf report to this path")
	flags.BoolVar(&config.Quiet, "quiet", config.Quiet, "Do not print the size report")

	flags.StringVar(&config.Server.Addr, "serve", config.Server.Addr, "Serve the HTTP API on this address instead of compressing files")
	flags.Int64Var(&config.Server.MaxBodyBytes, "max-body-bytes", config.Server.MaxBodyBytes, "The largest request body the HTTP API accepts")
}

// We want to parse the flags after we've read in the config file so that they
// take precedence, so we're going to extract the config file flag directly.
func findConfigFile(args []string) string {
	configRx := regexp.MustCompile("^--?config(?:=(.*))?$")
	for index, arg := range args {
		if arg == "--" {
			break
		}
		match := configRx.FindStringSubmatch(arg)
		if match == nil {
			continue
		}
		if match[1] != "" {
			return match[1]
		}
		if len(args) > index+1 {
			return args[index+1]
		}
	}
	if env := envValueForFlag("config"); env != "" {
		return env
	}
	return defaultConfigFile
}

func parseConfigFile(config *Configuration) error {
	_, err := toml.DecodeFile(config.File, config)
	if errors.Is(err, fs.ErrNotExist) {
		if config.File != defaultConfigFile {
			log.Printf("Config file '%s' does not exist and will not be used.", config.File)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("config file %s: %w", config.File, err)
	}
	return nil
}

func setUnsetFlagsFromEnv(flags *flag.FlagSet) error {
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	var err error
	flags.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || err != nil {
			return
		}
		if val := envValueForFlag(f.Name); val != "" {
			if serr := flags.Set(f.Name, val); serr != nil {
				err = fmt.Errorf("environment %s: %w", envKey(f.Name), serr)
			}
		}
	})
	return err
}

func envKey(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func envValueForFlag(name string) string {
	return os.Getenv(envKey(name))
}
