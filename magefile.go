//go:build mage

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/dkoosis/jscheck"
	binPath    = "./bin/jscheck"
)

// Default target - build the binary
var Default = Build

// Build builds the jscheck binary with version information.
func Build() error {
	if err := os.MkdirAll("bin", 0o750); err != nil {
		return err
	}
	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.CommitHash=%[3]s' -X '%[1]s/internal/version.BuildDate=%[4]s'",
		modulePath, gitOutput("dev", "describe", "--tags", "--always", "--dirty", "--match=v*"),
		gitOutput("unknown", "rev-parse", "--short", "HEAD"),
		time.Now().UTC().Format(time.RFC3339))
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, "./cmd/jscheck")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs tests with race detector
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// SelfCheck builds jscheck and runs it over the repository's tracked
// JavaScript files.
func SelfCheck() error {
	mg.Deps(Build)
	return sh.RunV(binPath, "--format", "terminal", ".")
}

// QA runs vet, the race-enabled tests and the self check.
func QA() {
	mg.SerialDeps(Vet, Test.Race, SelfCheck)
}

func gitOutput(fallback string, args ...string) string {
	out, err := sh.Output("git", args...)
	if err != nil || out == "" {
		return fallback
	}
	return out
}
