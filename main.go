package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rcvacademy/browser-test-harness/browser"
	"github.com/rcvacademy/browser-test-harness/framework"
	"github.com/rcvacademy/browser-test-harness/report"
	"github.com/rcvacademy/browser-test-harness/session"
	"github.com/rcvacademy/browser-test-harness/uitests"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args, os.Stderr) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	config := session.NewConfig(params.browser, params.url)
	provisioner := browser.NewProvisioner(
		browser.PlaywrightResolver{
			DriverDirectory: params.driverDirectory,
			SkipInstall:     params.skipInstall,
			Logger:          mainDebugLogger,
		},
		browser.PlaywrightLauncher{},
		params.launchOptions(),
		mainDebugLogger,
	)

	doc := report.New(params.reportPath)
	doc.AddEnvironment("Browser", config.Browser())
	doc.AddEnvironment("URL", config.URL())
	doc.AddEnvironment("Command", params.command)
	for _, row := range params.environment {
		doc.AddEnvironment(row.name, row.value)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	reporter := session.NewFailureReporter(params.reportPath, mainDebugLogger)

	results := uitests.RunTestSuite(
		config,
		provisioner,
		params.filters.AsFilter,
		testLogger,
		framework.PrefixedLogger(mainDebugLogger, "[fixture] "),
		reporter,
	)

	doc.Populate(results)
	doc.Finalize(report.CustomizeTitle)
	if err := doc.Write(); err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
		os.Exit(1)
	}

	fmt.Println()
	printResults(os.Stdout, results)
	fmt.Printf("Report written to %s\n", params.reportPath)
	if !results.OK() {
		os.Exit(1)
	}
}
