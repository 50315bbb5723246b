package messages

// Manifest loading and discovery messages.
const (
	ManifestReadFailedFmt   = "read manifest %s: %w"
	ManifestParseFailedFmt  = "parse manifest %s: %w"
	ManifestNoApps          = "manifest declares no applications"
	ManifestInvalidIDFmt    = "manifest app %d: invalid id %q: must be numeric"
	ManifestEmptyIDFmt      = "manifest app %d: id is required"
	ManifestInvalidStateFmt = "manifest state: %w"
	ManifestNotFound        = "no manifest found (looked for ./masctl.toml and ~/.masctl.toml)"
	ManifestHomeDirFmt      = "resolve home directory: %w"
)
