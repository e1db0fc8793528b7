// Package uitests contains the UI test classes run by the harness.
//
// The tests only use the driver that the session fixture binds to their class; everything about
// starting and stopping browsers and reporting failures lives in the session package.
package uitests
