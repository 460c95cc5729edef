package types

// Version is the herald release, overridden at build time via ldflags
var Version = "0.1.0"

// AppName is used for CLI identity and error reporting tags
const AppName = "herald"
