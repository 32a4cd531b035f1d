package repository

import "testing"

func TestLikeOperatorByDialect(t *testing.T) {
	if got := likeOperatorByDialect("postgres"); got != "ILIKE" {
		t.Fatalf("postgres want ILIKE got %s", got)
	}
	if got := likeOperatorByDialect("sqlite"); got != "LIKE" {
		t.Fatalf("sqlite want LIKE got %s", got)
	}
}

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, args := buildLikeConditionByDialect("postgres", []string{"customer_phone", " ", "customer_name"}, " 0555 ")
	want := "customer_phone ILIKE ? OR customer_name ILIKE ?"
	if condition != want {
		t.Fatalf("condition want %s got %s", want, condition)
	}
	if len(args) != 2 || args[0] != "%0555%" {
		t.Fatalf("unexpected args: %#v", args)
	}
}

func TestDBDialectNameNil(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db want sqlite got %s", got)
	}
}
