package versioning

// Populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = ""
)
