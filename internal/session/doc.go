// Package session holds the unwrapped data key for the lifetime of an
// unlocked client session.
//
// Keys live only in an in-memory [Arena], addressed by random [Handle]
// values. A [KeyStore] is the explicit handle object a session passes
// around; it moves between two states:
//
//	Locked --Store--> Unlocked --Clear--> Locked
//
// [KeyStore.Clear] is a barrier: operations already running under
// [KeyStore.Use] finish with the key they were given, no new operation can
// start, and the key bytes are wiped when the last running operation ends.
package session
