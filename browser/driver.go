package browser

//go:generate mockgen -package=session -destination=../session/mock_driver_test.go github.com/rcvacademy/browser-test-harness/browser Driver

// Driver is a live control connection to one browser instance.
//
// Implementations are not safe for concurrent use; the harness only ever uses a driver from the
// goroutine that runs the tests.
type Driver interface {
	// Navigate loads the URL in the current page and waits for it to finish loading.
	Navigate(url string) error

	// Maximize makes the viewport as large as the screen allows.
	Maximize() error

	// Screenshot writes a PNG of the current page to the given file path.
	Screenshot(path string) error

	Title() (string, error)
	CurrentURL() string

	// Close shuts down the browser and releases the connection. Calling it more than once is
	// harmless.
	Close() error
}
