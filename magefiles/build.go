//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/sh"
)

// Build namespace methods
// Note: Build type is defined in main.go

// Binary builds the main binary
func (Build) Binary() error {
	fmt.Println("Building nodeup...")
	return sh.Run("go", "build", "-o", "bin/nodeup", "./cmd/nodeup")
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing nodeup...")
	return sh.Run("go", "install", "./cmd/nodeup")
}

// Debug builds with debug flags
func (Build) Debug() error {
	fmt.Println("Building nodeup with debug flags...")
	return sh.Run("go", "build", "-gcflags", "all=-N -l", "-o", "bin/nodeup-debug", "./cmd/nodeup")
}
