package indexer

import "errors"

// errParse marks a file whose bytes failed to parse under its detected
// grammar. The file is skipped; it does not abort the run.
var errParse = errors.New("indexer: parse failed")
