package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"crudusers/internal/repos"
	"crudusers/internal/services"
	"crudusers/internal/validate"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	schema := `
	CREATE TABLE users(id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, email TEXT);
	INSERT INTO users(name, email) VALUES
	  ('Alice','alice@example.com'),
	  ('Bob','bob@example.com');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestUserService_Lifecycle(t *testing.T) {
	svc := services.NewUserService(repos.NewUserRepo(memdb(t)))

	id, err := svc.Create(validate.UserInput{Name: "Carol", Email: "carol@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if id != 3 {
		t.Fatalf("want id 3, got %d", id)
	}

	n, err := svc.Update(1, validate.UserInput{Name: "Alicia", Email: "alicia@example.com"})
	if err != nil || n != 1 {
		t.Fatalf("update existing: n=%d err=%v", n, err)
	}

	n, err = svc.Delete(2)
	if err != nil || n != 1 {
		t.Fatalf("delete existing: n=%d err=%v", n, err)
	}

	users, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(users) != 2 {
		t.Fatalf("want 2 users, got %+v", users)
	}
	if users[0].Name != "Alicia" || users[1].Name != "Carol" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestUserService_MissingIDReportsZeroAffected(t *testing.T) {
	svc := services.NewUserService(repos.NewUserRepo(memdb(t)))

	n, err := svc.Update(42, validate.UserInput{Name: "x", Email: "y"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("want 0 affected, got %d", n)
	}
	n, err = svc.Delete(42)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("want 0 affected, got %d", n)
	}
	count, err := svc.Count()
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Fatalf("store changed: count=%d", count)
	}
}
