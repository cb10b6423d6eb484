package process

// Notes:
// - Only a non-existent PID is used. PID 0 or a real PID would kill this test
//   process group or an unrelated process.
// This is an acceptable gap: real teardown is covered by the browser integration tests.

import "testing"

func TestKillProcessGroup_UnknownPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}
