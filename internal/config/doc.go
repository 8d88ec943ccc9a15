// Package config loads and validates the YAML settings file shared by the
// showboard binaries: gRPC server address, schedule file location, stage
// name, update folder, and the Art-Net listener block. Validation is
// fail-fast at startup so misconfigured DMX channels or ports never reach
// the packet decode path.
package config
