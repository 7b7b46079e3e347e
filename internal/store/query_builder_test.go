// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"testing"
)

func TestTableBuilder_Select(t *testing.T) {
	q, err := NewTableBuilder("users").
		Select("user_id", "email").
		Where("email = ? AND password_digest = ?", "john@example.com", "digest").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "SELECT user_id, email FROM users WHERE email = $1 AND password_digest = $2"
	if q.SQL != wantSQL {
		t.Errorf("expected %q, got %q", wantSQL, q.SQL)
	}
	if q.Verb != VerbSelect {
		t.Errorf("expected verb %q, got %q", VerbSelect, q.Verb)
	}
	if len(q.Args) != 2 || q.Args[0] != "john@example.com" || q.Args[1] != "digest" {
		t.Errorf("unexpected args: %v", q.Args)
	}
}

func TestTableBuilder_SelectWithoutWhere(t *testing.T) {
	q, err := NewTableBuilder("users").
		Select("user_id").
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.SQL != "SELECT user_id FROM users" {
		t.Errorf("unexpected SQL: %q", q.SQL)
	}
	if len(q.Args) != 0 {
		t.Errorf("expected no args, got %v", q.Args)
	}
}

func TestTableBuilder_Insert(t *testing.T) {
	q, err := NewTableBuilder("users").
		Insert([]string{"user_name", "email"}, []any{"john", "john@example.com"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "INSERT INTO users (user_name,email) VALUES ($1,$2)"
	if q.SQL != wantSQL {
		t.Errorf("expected %q, got %q", wantSQL, q.SQL)
	}
	if len(q.Args) != 2 {
		t.Errorf("unexpected args: %v", q.Args)
	}
}

func TestTableBuilder_InsertColumnValueMismatch(t *testing.T) {
	_, err := NewTableBuilder("users").
		Insert([]string{"user_name", "email"}, []any{"john"}).
		Build()
	if !errors.Is(err, ErrColumnValueMismatch) {
		t.Fatalf("expected ErrColumnValueMismatch, got %v", err)
	}
}

func TestTableBuilder_Update(t *testing.T) {
	q, err := NewTableBuilder("users").
		Update([]string{"is_logged_in", "updated_at"}, []any{true, nowExpr()}).
		Where("user_id = ?", int64(7)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "UPDATE users SET is_logged_in = $1, updated_at = NOW() WHERE user_id = $2"
	if q.SQL != wantSQL {
		t.Errorf("expected %q, got %q", wantSQL, q.SQL)
	}
	// NOW() is an expression, not a bound value: only the flag and the id
	// travel as args.
	if len(q.Args) != 2 || q.Args[0] != true || q.Args[1] != int64(7) {
		t.Errorf("unexpected args: %v", q.Args)
	}
}

func TestTableBuilder_Delete(t *testing.T) {
	q, err := NewTableBuilder("users").
		Delete().
		Where("user_id = ?", int64(7)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantSQL := "DELETE FROM users WHERE user_id = $1"
	if q.SQL != wantSQL {
		t.Errorf("expected %q, got %q", wantSQL, q.SQL)
	}
}

func TestTableBuilder_NoVerb(t *testing.T) {
	_, err := NewTableBuilder("users").Build()
	if !errors.Is(err, ErrVerbNotSet) {
		t.Fatalf("expected ErrVerbNotSet, got %v", err)
	}
}

func TestTableBuilder_ValuesNeverInterpolated(t *testing.T) {
	// A hostile value must end up as a bound argument, never in the SQL text.
	hostile := "x' OR '1'='1' --"
	q, err := NewTableBuilder("users").
		Select("user_id").
		Where("email = ?", hostile).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.SQL != "SELECT user_id FROM users WHERE email = $1" {
		t.Errorf("hostile input leaked into SQL text: %q", q.SQL)
	}
	if len(q.Args) != 1 || q.Args[0] != hostile {
		t.Errorf("expected hostile input bound as arg, got %v", q.Args)
	}
}
