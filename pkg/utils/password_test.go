package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("masala-chai-42")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "masala-chai-42" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("masala-chai-42", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}
