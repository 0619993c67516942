// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// It currently holds ExecutableName, which the lspcodec command tree uses for
// its usage and example strings so that help output matches however the
// binary was installed or renamed.
//
//	rootCmd := &cobra.Command{
//	    Use:     posix.ExecutableName(),
//	    Example: posix.ExecutableName() + " decode message.json",
//	}
//
// [POSIX]: https://pubs.opengroup.org/onlinepubs/9799919799/
package posix
