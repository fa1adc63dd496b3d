package acpinstance

import "github.com/ansys/acp-client-go/model"

// Configure installs f as the source of every entity's gRPC stub
// constructor, forwarding directly to model.Configure. Connect already
// calls this once per instance using Config.Factories; Configure is
// exported separately for callers that build multiple ACPInstances against
// the same generated client package and only need to wire it once at
// process startup.
func Configure(f model.Factories) {
	model.Configure(f)
}
