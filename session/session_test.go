package session

import "testing"

func TestStateRoundTrip(t *testing.T) {
	const userID int64 = 99901
	t.Cleanup(func() { ClearFlow(userID) })

	if _, ok := State(userID); ok {
		t.Fatal("fresh user should have no flow state")
	}

	SetState(userID, AwaitTokenMint)
	state, ok := State(userID)
	if !ok || state != AwaitTokenMint {
		t.Fatalf("state = %q, %v; want %q", state, ok, AwaitTokenMint)
	}

	ClearFlow(userID)
	if _, ok := State(userID); ok {
		t.Error("cleared user should have no flow state")
	}
}

func TestSessionsKeyedPerUser(t *testing.T) {
	sm := GetSessionManager()
	const a, b int64 = 99902, 99903
	t.Cleanup(func() {
		sm.Delete(a, "draft")
		sm.Delete(b, "draft")
	})

	sm.Set(a, "draft", "value-a")
	if _, ok := sm.Get(b, "draft"); ok {
		t.Error("another user should not see the value")
	}
	v, ok := sm.Get(a, "draft")
	if !ok || v != "value-a" {
		t.Errorf("got %v, %v", v, ok)
	}
}

func TestStateIgnoresForeignValues(t *testing.T) {
	const userID int64 = 99904
	t.Cleanup(func() { ClearFlow(userID) })

	GetSessionManager().Set(userID, UserSessionState, 42)
	if _, ok := State(userID); ok {
		t.Error("non-string state should read as absent")
	}
}
