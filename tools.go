// ABOUTME: Pins development tool dependencies so go.mod tracks their versions.
// ABOUTME: Excluded from normal builds by the tools build tag.

//go:build tools

package main

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
)
