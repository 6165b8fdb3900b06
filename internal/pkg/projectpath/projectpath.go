// Package projectpath locates the repository root so that files such as .env resolve
// the same way regardless of the working directory.
package projectpath

import (
	"path/filepath"
	"runtime"
)

var (
	_, b, _, _ = runtime.Caller(0)

	// Root is the root directory of this repository.
	Root = filepath.Join(filepath.Dir(b), "../../..")
)
