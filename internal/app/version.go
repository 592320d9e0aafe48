package app

// Version is overridden at build time with -ldflags "-X github.com/da-tools/da/internal/app.Version=...".
var Version = "dev"
