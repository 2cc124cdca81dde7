package enidsql

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"xdao.co/enid"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:?_pragma=journal_mode(DELETE)&_pragma=synchronous(NORMAL)")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.Ping(); err != nil {
		t.Fatalf("ping database: %v", err)
	}

	const schema = `CREATE TABLE objects (
		name   TEXT PRIMARY KEY,
		id40   TEXT,
		id80   TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}

type objectRow struct {
	Name string     `db:"name"`
	ID40 NullEnid40 `db:"id40"`
	ID80 NullEnid80 `db:"id80"`
}

func TestNullEnidRoundTrip(t *testing.T) {
	db := openTestDB(t)

	id40, err := enid.Parse40("m6sc7n75")
	if err != nil {
		t.Fatalf("Parse40: %v", err)
	}
	id80, err := enid.Parse80("y3gx5gxm-mpb8ey39")
	if err != nil {
		t.Fatalf("Parse80: %v", err)
	}

	in := objectRow{
		Name: "order",
		ID40: NullEnid40{Enid: id40, Valid: true},
		ID80: NullEnid80{Enid: id80, Valid: true},
	}
	if _, err := db.NamedExec(`INSERT INTO objects (name, id40, id80) VALUES (:name, :id40, :id80)`, in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var out objectRow
	if err := db.Get(&out, `SELECT name, id40, id80 FROM objects WHERE name = ?`, "order"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if !out.ID40.Valid || out.ID40.Enid != id40 {
		t.Errorf("id40 round trip = %+v", out.ID40)
	}
	if !out.ID80.Valid || out.ID80.Enid != id80 {
		t.Errorf("id80 round trip = %+v", out.ID80)
	}

	// Stored form is the canonical token text.
	var stored string
	if err := db.Get(&stored, `SELECT id40 FROM objects WHERE name = ?`, "order"); err != nil {
		t.Fatalf("select raw: %v", err)
	}
	if stored != "m6sc7n75" {
		t.Errorf("stored token = %q", stored)
	}
}

func TestNullEnidNull(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.Exec(`INSERT INTO objects (name, id40, id80) VALUES (?, NULL, NULL)`, "empty"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var out objectRow
	if err := db.Get(&out, `SELECT name, id40, id80 FROM objects WHERE name = ?`, "empty"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if out.ID40.Valid || out.ID80.Valid {
		t.Errorf("expected NULL ids, got %+v", out)
	}
}

func TestScanRejectsBadToken(t *testing.T) {
	var n NullEnid40
	if err := n.Scan("0000000i"); err == nil {
		t.Error("Scan(excluded letter): expected error")
	}
	if !enid.IsKind(n.Scan("0000000"), enid.KindLength) {
		t.Error("Scan(short token): expected KindLength")
	}
	if err := n.Scan(3.14); err == nil {
		t.Error("Scan(float64): expected error")
	}
}
