package session

// Config is the session configuration supplied on the command line. It is read once at startup
// and never changes afterward.
type Config struct {
	browser string
	url     string
}

// NewConfig creates a Config. The browser name is kept exactly as given; it is validated when a
// test class provisions its driver.
func NewConfig(browser, url string) Config {
	return Config{browser: browser, url: url}
}

// Browser returns the requested browser name.
func (c Config) Browser() string {
	return c.browser
}

// URL returns the page that every test class starts on.
func (c Config) URL() string {
	return c.url
}
