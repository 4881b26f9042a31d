package mcpserver

import (
	"testing"

	"go.uber.org/goleak"
)

// Integration tests run real client/server sessions; every session must
// be fully torn down by the end of the run.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
