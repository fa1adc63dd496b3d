// Package versiongate implements the Version Gate: comparing
// a declared per-operation minimum server version against the negotiated
// server version, raising a runtime error at call time on a miss.
package versiongate

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/ansys/acp-client-go/pkg/apperror"
)

// Check compares the running serverVersion against the minimum required
// version for the named operation (a property, method, or class). An empty
// required string means "no gate" and always passes. A nil serverVersion
// means the handle is unstored, so the check is skipped.
func Check(serverVersion *semver.Version, required string, operationName string) error {
	if required == "" {
		return nil
	}
	if serverVersion == nil {
		return nil
	}
	min, err := semver.NewVersion(required)
	if err != nil {
		return apperror.Newf(apperror.KindRuntime, "invalid minimum version constraint %q for %q: %v", required, operationName, err)
	}
	if serverVersion.LessThan(min) {
		return apperror.Newf(
			apperror.KindRuntime,
			"%q is only supported since server version %s; the current server version is %s",
			operationName, min.String(), serverVersion.String(),
		)
	}
	return nil
}

// Parse parses a server-reported version string (as negotiated over
// ACPInstance.ServerVersion) into a comparable *semver.Version.
func Parse(raw string) (*semver.Version, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("versiongate: parsing server version %q: %w", raw, err)
	}
	return v, nil
}
