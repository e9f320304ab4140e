// Command formcheck validates raw form records read from a file or stdin and
// prints one JSON result per record.
//
//	formcheck --input signups.jsonl
//	formcheck --format yaml --input signups.yaml --fail-on-invalid
//
// Thresholds come from the FORMKIT_* environment variables described in
// pkg/fields; FORMKIT_ENV and FORMKIT_LOG_FORMAT control logging.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
