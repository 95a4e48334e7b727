package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("*").
		From("lineups").
		Where(Eq("club_id", "club-1"), Eq("team_id", "team-1")).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT * FROM lineups WHERE club_id = $1 AND team_id = $2 ORDER BY updated_at DESC LIMIT 1"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "club-1" || args[1] != "team-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_InEmpty(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT id FROM players WHERE 1 = 0"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestUpdateBuilder_SetExpr(t *testing.T) {
	query, args, err := Update("events").
		SetExpr("attendance", "attendance || $1::jsonb", []byte(`{"p1":"present"}`)).
		Where(Eq("id", "evt-1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update: %v", err)
	}

	want := "UPDATE events SET attendance = attendance || $1::jsonb WHERE id = $2"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsertBuilder_Suffix(t *testing.T) {
	query, args, err := InsertInto("tactic_presets").
		Columns("club_id", "name").
		Values("club-1", "pressing").
		Suffix("ON CONFLICT (club_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO tactic_presets (club_id, name) VALUES ($1, $2)\nON CONFLICT (club_id, name) DO UPDATE SET name = EXCLUDED.name RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("unexpected args: %v", args)
	}
}
