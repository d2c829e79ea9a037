package callback

import (
	"testing"

	"github.com/vybenetwork/vybebot/entity"
)

func TestMenuStack(t *testing.T) {
	const userID int64 = 99921
	t.Cleanup(func() { resetMenu(userID) })

	if got := menuStack(userID); len(got) != 0 {
		t.Fatalf("fresh stack = %v", got)
	}

	pushMenu(userID, entity.TOKEN_MENU)
	pushMenu(userID, entity.TOKEN_MENU)
	if got := menuStack(userID); len(got) != 1 {
		t.Errorf("repeated push should not stack: %v", got)
	}

	pushMenu(userID, entity.PROGRAM_MENU)
	got := menuStack(userID)
	if len(got) != 2 || got[1] != entity.PROGRAM_MENU {
		t.Errorf("stack = %v", got)
	}

	popMenu(userID)
	got = menuStack(userID)
	if len(got) != 1 || got[0] != entity.TOKEN_MENU {
		t.Errorf("stack after pop = %v", got)
	}

	resetMenu(userID)
	if got := menuStack(userID); len(got) != 0 {
		t.Errorf("stack after reset = %v", got)
	}

	popMenu(userID)
}
