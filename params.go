package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcvacademy/browser-test-harness/browser"
	"github.com/rcvacademy/browser-test-harness/framework"

	"github.com/alessio/shellescape"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const defaultReportPath = "reports/report.html"

type commandParams struct {
	browser         string
	url             string
	reportPath      string
	configFile      string
	filters         framework.RegexFilters
	headless        bool
	timeoutMS       ldvalue.OptionalInt
	slowMoMS        ldvalue.OptionalInt
	driverDirectory string
	skipInstall     bool
	debug           bool
	debugAll        bool
	noColor         bool
	environment     []environmentRow
	command         string
}

type environmentRow struct {
	name  string
	value string
}

// Read parses the command line. It returns false, after writing a message and the usage text to
// errOut, if the parameters are invalid or a required one is missing.
func (c *commandParams) Read(args []string, errOut io.Writer) bool {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.browser, "browser", "", "browser to run tests on ("+browser.SupportedNames()+"), required")
	fs.StringVar(&c.url, "url", "", "URL that every test class starts on, required")
	fs.StringVar(&c.reportPath, "report", defaultReportPath, "path of the HTML report; screenshots are saved next to it")
	fs.StringVar(&c.configFile, "config", "", "optional YAML file with harness settings")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.headless, "headless", false, "run the browser without a visible window")
	fs.Var(optionalIntFlag{&c.timeoutMS}, "timeout-ms", "default timeout for browser operations in milliseconds")
	fs.Var(optionalIntFlag{&c.slowMoMS}, "slowmo-ms", "delay between browser operations in milliseconds")
	fs.StringVar(&c.driverDirectory, "driver-dir", "", "directory for the browser driver (default: Playwright's cache)")
	fs.BoolVar(&c.skipInstall, "skip-install", false, "assume the browser driver is already installed")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&c.noColor, "no-color", false, "disable colored console output")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.configFile != "" {
		setFlags := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })
		fc, err := loadConfigFile(c.configFile)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return false
		}
		fc.applyTo(c, setFlags)
	}
	for _, required := range []struct{ name, value string }{
		{"browser", c.browser},
		{"url", c.url},
	} {
		if required.value == "" {
			fmt.Fprintf(errOut, "--%s is required\n", required.name)
			fs.Usage()
			return false
		}
	}

	var cmd commandBuilder
	cmd.add(args...)
	c.command = cmd.String()
	return true
}

func (c *commandParams) launchOptions() browser.LaunchOptions {
	return browser.LaunchOptions{
		Headless:  c.headless,
		TimeoutMS: c.timeoutMS,
		SlowMoMS:  c.slowMoMS,
	}
}

type optionalIntFlag struct {
	target *ldvalue.OptionalInt
}

func (f optionalIntFlag) String() string {
	if f.target == nil || !f.target.IsDefined() {
		return ""
	}
	return strconv.Itoa(f.target.IntValue())
}

func (f optionalIntFlag) Set(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return fmt.Errorf("expected a non-negative number of milliseconds, got %q", value)
	}
	*f.target = ldvalue.NewOptionalInt(n)
	return nil
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
