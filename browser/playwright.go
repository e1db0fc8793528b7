package browser

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rcvacademy/browser-test-harness/framework"

	"github.com/playwright-community/playwright-go"
)

type engine struct {
	browserType string
	channel     string
	installName string
	args        []string
}

var engines = map[Identity]engine{
	Chrome:  {browserType: "chromium", installName: "chromium", args: []string{"--start-maximized"}},
	Edge:    {browserType: "chromium", channel: "msedge", installName: "msedge", args: []string{"--start-maximized"}},
	Firefox: {browserType: "firefox", installName: "firefox"},
}

const maximizeScript = `() => ({ width: window.screen.availWidth, height: window.screen.availHeight })`

// PlaywrightResolver uses Playwright's installer to make sure the driver and the browser build
// for an identity are present.
type PlaywrightResolver struct {
	// DriverDirectory overrides Playwright's default cache location.
	DriverDirectory string

	// SkipInstall assumes that the driver and browsers are already installed.
	SkipInstall bool

	Logger framework.Logger
}

func (r PlaywrightResolver) Resolve(id Identity) (Installation, error) {
	e, ok := engines[id]
	if !ok {
		return Installation{}, &UnsupportedBrowserError{Value: string(id)}
	}
	inst := Installation{Identity: id, DriverDirectory: r.DriverDirectory}
	if r.SkipInstall {
		return inst, nil
	}
	if r.Logger != nil {
		r.Logger.Printf("Installing Playwright driver and %s", e.installName)
	}
	err := playwright.Install(&playwright.RunOptions{
		DriverDirectory: r.DriverDirectory,
		Browsers:        []string{e.installName},
		Verbose:         false,
		Stdout:          io.Discard,
		Stderr:          io.Discard,
	})
	if err != nil {
		return Installation{}, fmt.Errorf("failed to install playwright: %w", err)
	}
	return inst, nil
}

// PlaywrightLauncher starts a Playwright driver process per browser and opens a single page in a
// fresh context.
type PlaywrightLauncher struct{}

func (PlaywrightLauncher) Launch(inst Installation, opts LaunchOptions) (Driver, error) {
	e, ok := engines[inst.Identity]
	if !ok {
		return nil, &UnsupportedBrowserError{Value: string(inst.Identity)}
	}

	pw, err := playwright.Run(&playwright.RunOptions{
		DriverDirectory: inst.DriverDirectory,
		Stdout:          io.Discard,
		Stderr:          io.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType := pw.Chromium
	if e.browserType == "firefox" {
		browserType = pw.Firefox
	}
	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     e.args,
	}
	if e.channel != "" {
		launchOpts.Channel = playwright.String(e.channel)
	}
	if ms, ok := opts.SlowMoMS.Get(); ok {
		launchOpts.SlowMo = playwright.Float(float64(ms))
	}
	if ms, ok := opts.TimeoutMS.Get(); ok {
		launchOpts.Timeout = playwright.Float(float64(ms))
	}
	b, err := browserType.Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	context, err := b.NewContext(playwright.BrowserNewContextOptions{
		NoViewport: playwright.Bool(true),
	})
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close()
		_ = b.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	if ms, ok := opts.TimeoutMS.Get(); ok {
		page.SetDefaultTimeout(float64(ms))
	}

	return &playwrightDriver{pw: pw, browser: b, context: context, page: page}, nil
}

type playwrightDriver struct {
	pw        *playwright.Playwright
	browser   playwright.Browser
	context   playwright.BrowserContext
	page      playwright.Page
	closeOnce sync.Once
	closeErr  error
}

func (d *playwrightDriver) Navigate(url string) error {
	if _, err := d.page.Goto(url); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

func (d *playwrightDriver) Maximize() error {
	v, err := d.page.Evaluate(maximizeScript)
	if err != nil {
		return fmt.Errorf("could not read screen size: %w", err)
	}
	size, ok := v.(map[string]interface{})
	if !ok {
		return fmt.Errorf("unexpected screen size value: %v", v)
	}
	width, height := toInt(size["width"]), toInt(size["height"])
	if width <= 0 || height <= 0 {
		return fmt.Errorf("unexpected screen size %dx%d", width, height)
	}
	return d.page.SetViewportSize(width, height)
}

func (d *playwrightDriver) Screenshot(path string) error {
	_, err := d.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

func (d *playwrightDriver) Title() (string, error) {
	return d.page.Title()
}

func (d *playwrightDriver) CurrentURL() string {
	return d.page.URL()
}

func (d *playwrightDriver) Close() error {
	d.closeOnce.Do(func() {
		var errs []error
		if err := d.context.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := d.browser.Close(); err != nil {
			errs = append(errs, err)
		}
		if err := d.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		d.closeErr = errors.Join(errs...)
	})
	return d.closeErr
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
