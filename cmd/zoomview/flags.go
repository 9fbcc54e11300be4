// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -margin, -no-replace, -respect-max, -theme, -verbose, -version

package main

import "flag"

type cliArgs struct {
	margin     int
	noReplace  bool
	respectMax bool
	theme      string
	verbose    bool
	version    bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.IntVar(&args.margin, "margin", 0, "Cell gap around the magnified overlay (0 = default)")
	flag.BoolVar(&args.noReplace, "no-replace", false, "Keep the original inline source after a zoom cycle")
	flag.BoolVar(&args.respectMax, "respect-max", false, "Disable zoom for images already shown at native size")
	flag.StringVar(&args.theme, "theme", "", "Theme name (builtin or a file under ~/.zoomview/themes)")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
