// Package idgen wraps the random UUID generator used to mint new project
// namespaces so that it can be stubbed in tests.
package idgen
