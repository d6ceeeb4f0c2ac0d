package account

import "testing"

func TestPrincipalCan(t *testing.T) {
	t.Parallel()

	operator := Principal{Username: "ops", Permissions: BuiltinGroups()[GroupQuickCancelOperators]}
	if !operator.Can(PermQuickCancel) {
		t.Fatalf("quick cancel operator must hold quick cancel permission")
	}
	if operator.Can(PermChangeMatchup) {
		t.Fatalf("quick cancel operator must not change matchups")
	}

	manager := Principal{Username: "gm", Permissions: BuiltinGroups()[GroupGoalieManagers]}
	for _, perm := range []Permission{PermViewMatchup, PermChangeMatchup, PermViewTeam, PermViewPlayer} {
		if !manager.Can(perm) {
			t.Fatalf("goalie manager missing %s", perm)
		}
	}
	if manager.Can(PermQuickCancel) {
		t.Fatalf("goalie manager must not quick cancel")
	}

	root := Principal{Username: "root", IsSuperuser: true}
	if !root.Can(PermQuickCancel) || !root.Can(PermChangeSeason) {
		t.Fatalf("superuser must hold every permission")
	}
}
