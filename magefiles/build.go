//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the desktop testbed binary.
func (Build) Desktop() error {
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/anima", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the WebGL bootstrap as a WebAssembly module.
func (Build) Wasm() error {
	env := withEnv("GOOS=js", "GOARCH=wasm")
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/anima.wasm", "./cmd/web"), env, withStream()); err != nil {
		return err
	}
	return nil
}
