// Package all imports all ftpmover bucket implementations.
package all

import (
	_ "github.com/c2fo/ftpmover/backend/azure" // register az backend
	_ "github.com/c2fo/ftpmover/backend/gs"    // register gs backend
	_ "github.com/c2fo/ftpmover/backend/mem"   // register mem backend
	_ "github.com/c2fo/ftpmover/backend/s3"    // register s3 backend
)
