package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatibility checks whether a configuration written for the required engine
// version can be loaded by the current engine version.
//
// Compatibility Rules:
//   - If either version is "main" (development build), the check is skipped
//   - Major versions must match exactly
//   - The current version must not be older than the required one, since newer
//     configurations may reference indicators or parameters the engine lacks
//
// Examples:
//   - Current 1.2.0, Required 1.2.0 -> OK
//   - Current 1.4.1, Required 1.2.0 -> OK
//   - Current 1.1.0, Required 1.2.0 -> ERROR (engine too old)
//   - Current 2.0.0, Required 1.2.0 -> ERROR (major differs)
func CheckCompatibility(current, required string) error {
	current = strings.TrimPrefix(current, "v")
	required = strings.TrimPrefix(required, "v")

	if current == "main" || required == "main" {
		return nil
	}

	currentSemver, err := semver.NewVersion(current)
	if err != nil {
		return fmt.Errorf("invalid engine version '%s': %w", current, err)
	}

	requiredSemver, err := semver.NewVersion(required)
	if err != nil {
		return fmt.Errorf("invalid required version '%s': %w", required, err)
	}

	if currentSemver.Major() != requiredSemver.Major() {
		return fmt.Errorf("major version mismatch: engine is %d.x.x but configuration requires %d.x.x",
			currentSemver.Major(), requiredSemver.Major())
	}

	if currentSemver.LessThan(requiredSemver) {
		return fmt.Errorf("engine %s is older than the required %s", currentSemver, requiredSemver)
	}

	return nil
}
