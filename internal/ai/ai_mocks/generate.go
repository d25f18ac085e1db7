package ai_mocks

//go:generate mockgen -source=../client.go -destination=ai_mocks.go -package=ai_mocks

// This file contains the go:generate directive to generate mocks for the AI client interface.
// To regenerate the mocks, run:
//   go generate ./internal/ai/ai_mocks
