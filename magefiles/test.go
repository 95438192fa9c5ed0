//go:build mage

package main

// Runs the unit tests of the module.
func Test() error {
	if _, err := executeCmd("go", withArgs("vet", "./..."), withStream()); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Builds the command line binary into bin/.
func Build() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/sdkgen", "./command/sdkgen"), withDir("."), withStream())
	return err
}
