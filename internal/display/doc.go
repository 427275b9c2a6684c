// Package display provides terminal output helpers for user-facing notices.
//
// Warnings are printed with optional message, affected paths and suggestion:
//
//	warning := display.Warning{
//	    Title:      "2 paths could not be scanned",
//	    Message:    "Files under these paths are not included in the report",
//	    Files:      []string{"/srv/private", "/srv/tmp/gone"},
//	    Suggestion: "Check permissions and rerun",
//	}
//	warning.Display(os.Stderr, true)
//
// WarnSkipped builds that warning from the paths a scan had to leave out.
package display
