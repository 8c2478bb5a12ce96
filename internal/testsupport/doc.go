// Package testsupport provides shared fixtures for asreval tests: temp
// transcript files and configs isolated to a test's temp directory.
package testsupport
