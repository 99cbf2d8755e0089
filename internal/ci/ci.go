// Package ci is a minimal check for whether the process is running under a
// CI/CD vendor, used to decide whether interactive/colored output makes
// sense.
package ci

import "os"

var isCI = os.Getenv("BUILD_ID") != "" ||
	os.Getenv("BUILD_NUMBER") != "" ||
	os.Getenv("CI") != "" ||
	os.Getenv("CI_APP_ID") != "" ||
	os.Getenv("CI_BUILD_ID") != "" ||
	os.Getenv("CI_BUILD_NUMBER") != "" ||
	os.Getenv("CI_NAME") != "" ||
	os.Getenv("CONTINUOUS_INTEGRATION") != "" ||
	os.Getenv("RUN_ID") != "" ||
	os.Getenv("TEAMCITY_VERSION") != ""

// IsCi reports whether the process appears to be running in a CI/CD
// environment.
func IsCi() bool {
	return isCI
}
