//go:build !windows

package cli

import "os"

func enableANSI(_ *os.File) {}
