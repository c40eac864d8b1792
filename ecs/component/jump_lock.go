package component

import "github.com/milk9111/rollrunner/simtime"

// JumpLock suppresses grounded detection right after a jump. Timer clears Held
// when it fires and is stopped if the player is destroyed first.
type JumpLock struct {
	Held  bool
	Timer *simtime.Timer
}

var JumpLockComponent = NewComponent[JumpLock]()
