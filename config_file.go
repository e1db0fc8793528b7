package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// fileConfig holds the optional settings that can be kept in a YAML file instead of being passed
// as flags. The browser and URL are deliberately not part of it.
type fileConfig struct {
	Report          string            `yaml:"report"`
	Headless        *bool             `yaml:"headless"`
	TimeoutMS       *int              `yaml:"timeoutMs"`
	SlowMoMS        *int              `yaml:"slowMoMs"`
	DriverDirectory string            `yaml:"driverDirectory"`
	SkipInstall     *bool             `yaml:"skipInstall"`
	Environment     map[string]string `yaml:"environment"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("could not read config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return fc, nil
}

// applyTo copies settings into params, except for those whose flags were given explicitly.
func (fc fileConfig) applyTo(c *commandParams, setFlags map[string]bool) {
	if fc.Report != "" && !setFlags["report"] {
		c.reportPath = fc.Report
	}
	if fc.Headless != nil && !setFlags["headless"] {
		c.headless = *fc.Headless
	}
	if fc.TimeoutMS != nil && !setFlags["timeout-ms"] {
		c.timeoutMS = ldvalue.NewOptionalInt(*fc.TimeoutMS)
	}
	if fc.SlowMoMS != nil && !setFlags["slowmo-ms"] {
		c.slowMoMS = ldvalue.NewOptionalInt(*fc.SlowMoMS)
	}
	if fc.DriverDirectory != "" && !setFlags["driver-dir"] {
		c.driverDirectory = fc.DriverDirectory
	}
	if fc.SkipInstall != nil && !setFlags["skip-install"] {
		c.skipInstall = *fc.SkipInstall
	}
	names := make([]string, 0, len(fc.Environment))
	for name := range fc.Environment {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.environment = append(c.environment, environmentRow{name: name, value: fc.Environment[name]})
	}
}
