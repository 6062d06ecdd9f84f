package utils

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "pw1" {
		t.Fatal("hash equals plaintext")
	}

	if !VerifyPassword(hash, "pw1") {
		t.Fatal("correct password did not verify")
	}
	if VerifyPassword(hash, "pw2") {
		t.Fatal("wrong password verified")
	}
}

func TestHashIsSaltedPerCall(t *testing.T) {
	a, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatal("expected different hashes for the same password")
	}
}

func TestAuthenticate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := db.Create(&models.User{Username: "alice", Email: "a@x.com", Password: hash}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if user, ok := Authenticate(db, "alice", "pw1"); !ok || user.Username != "alice" {
		t.Fatalf("expected alice to authenticate, got ok=%v user=%q", ok, user.Username)
	}
	if _, ok := Authenticate(db, "alice", "wrong"); ok {
		t.Fatal("wrong password authenticated")
	}
	if _, ok := Authenticate(db, "nobody", "pw1"); ok {
		t.Fatal("unknown user authenticated")
	}
}
