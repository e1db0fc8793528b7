// Package framework contains the test runner that the browser harness is built on. It knows
// nothing about browsers.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's testing.T, allowing pieces of
// test logic to be associated with a test identifier and to accumulate success/failure results.
//
// 2. Tests can be grouped into test classes. Each class gets its own ClassScope, and class
// fixtures set up shared state in that scope before the first test of the class and tear it
// down after the last one, on every exit path.
//
// 3. Every test produces outcome records (setup, call, teardown). After a record is computed,
// each registered OutcomeObserver sees it along with the class scope and an AttachmentSink it
// can use to add extra information for the report.
//
// The domain-specific code is responsible for the fixtures, the observers, and the tests.
package framework
