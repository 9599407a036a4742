//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs the unit tests of every package.
func (Test) Unit() error {
	mg.Deps(Tidy)
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Tidies go.mod and go.sum.
func Tidy() error {
	_, err := executeCmd("go", withArgs("mod", "tidy"))
	return err
}
