package config

// Version is the trustgraph binary version.
// Set at build time via: -ldflags "-X github.com/persistorai/trustgraph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
