//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
)

type Generate mg.Namespace

// Patches the extension loader sources, VULKAN_SPEC selects the registry.
func (Generate) Extensions() error {
	args := []string{"extension"}
	if spec := os.Getenv("VULKAN_SPEC"); spec != "" {
		args = append(args, spec)
	}
	if os.Getenv("VULKAN_BETA") != "" {
		args = append(args, "--beta")
	}
	return sdkgen(args...)
}

// Regenerates the README of every documented folder.
func (Generate) Docs() error {
	return sdkgen("docgen")
}

// Runs every generator.
func (Generate) All() {
	mg.SerialDeps(Generate.Extensions, Generate.Docs)
}
