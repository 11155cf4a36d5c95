//go:build tools

package tools

// This file tracks the CLI tools the repository relies on.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: regenerates *_mock_test.go (go generate ./...)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migration status; the
//   server and formsctl apply migrations from the embedded FS themselves
