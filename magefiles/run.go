//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed in a desktop window.
func (Run) Engine() error {
	fmt.Println("Run engine...")
	if _, err := executeCmd("go", withArgs("run", ".", "--backend", "desktop"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs a single frame of the testbed without a window.
func (Run) Headless() error {
	if _, err := executeCmd("go", withArgs("run", ".", "--backend", "null", "--watch=false"), withStream()); err != nil {
		return err
	}
	return nil
}
