// zeta computes the zeta calibration factor of fission-track dating from
// track counts measured on an age standard.
//
// Build modes:
//   - Default build: desktop window + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is shown in the window title and by --version.
const version = "v0.9.0"

func main() {
	run()
}
