package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("testpass123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "testpass123" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("testpass123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestSecurityAnswerVerification(t *testing.T) {
	hash, err := HashSecurityAnswer("Fluffy")
	if err != nil {
		t.Fatalf("HashSecurityAnswer: %v", err)
	}

	for _, ok := range []string{"Fluffy", "fluffy", " Fluffy ", "FLUFFY"} {
		if !CheckSecurityAnswer(ok, hash) {
			t.Errorf("answer %q should verify", ok)
		}
	}
	if CheckSecurityAnswer("wrong", hash) {
		t.Error("wrong answer accepted")
	}
}
