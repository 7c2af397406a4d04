// Package internal contains the shared infrastructure for the waypoint framework:
// structured logging and the process-wide settings applied by waypoint.Init.
// Types and functions in this package are not part of the public API.
package internal
