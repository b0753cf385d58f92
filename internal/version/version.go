package version

// AppVersion is the runpad release version. Overridden at build time via
// -ldflags "-X runpad/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
