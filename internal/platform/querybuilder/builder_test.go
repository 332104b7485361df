package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("teams").
		Where(Eq("season_id", "s1"), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM teams WHERE season_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != "s1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinAndSoftDelete(t *testing.T) {
	query, args, err := Select("u.public_id", "t.name AS team_name").
		From("users u").
		LeftJoin("teams t", "t.public_id = u.team_public_id").
		Where(NotDeleted("u"), In("u.public_id", []any{"a", "b"})).
		OrderBy("u.public_id").
		Limit(5).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT u.public_id, t.name AS team_name FROM users u LEFT JOIN teams t ON t.public_id = u.team_public_id WHERE u.deleted_at IS NULL AND u.public_id IN ($1, $2) ORDER BY u.public_id LIMIT 5"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[1] != "b" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInAndLiteral(t *testing.T) {
	query, args, err := Select("*").
		From("awards").
		Where(In("id", nil), EqLiteral("name", "o'hara")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT * FROM awards WHERE 1=0 AND name = 'o''hara'"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTableAndColumns(t *testing.T) {
	if _, _, err := Select().From("teams").ToSQL(); err == nil {
		t.Fatalf("expected error without columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestColumnsOf(t *testing.T) {
	type row struct {
		ID       string `db:"public_id"`
		Name     string `db:"name"`
		Ignored  string `db:"-"`
		Untagged string
	}

	cols, err := ColumnsOf(row{}, "t")
	if err != nil {
		t.Fatalf("columns: %v", err)
	}
	if len(cols) != 2 || cols[0] != "t.public_id" || cols[1] != "t.name" {
		t.Fatalf("unexpected columns: %v", cols)
	}

	if _, err := ColumnsOf(struct{ X int }{}, ""); err == nil {
		t.Fatalf("expected error for model without db columns")
	}
	if _, err := ColumnsOf(42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
}
