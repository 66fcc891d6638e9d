package models

import (
	"strings"
	"testing"
)

func TestCartKeyBuilder(t *testing.T) {
	key := CartKeyBuilder("u-42")
	expected := "cart:u-42"
	if key != expected {
		t.Fatalf("expected key %s, got %s", expected, key)
	}
}

func TestCheckoutFenceKeyBuilder(t *testing.T) {
	key := CheckoutFenceKeyBuilder("u-42")
	expected := "checkout:inProgress:u-42"
	if key != expected {
		t.Fatalf("expected key %s, got %s", expected, key)
	}
}

func TestProfileKeyBuilder_HashesToken(t *testing.T) {
	key := ProfileKeyBuilder("jwt-secret-token")
	if strings.Contains(key, "jwt-secret-token") {
		t.Fatalf("raw token leaked into key %s", key)
	}
	if !strings.HasPrefix(key, "session:profile:") {
		t.Fatalf("unexpected key prefix: %s", key)
	}
	if key != ProfileKeyBuilder("jwt-secret-token") {
		t.Fatal("key builder is not deterministic")
	}
	if key == ProfileKeyBuilder("other-token") {
		t.Fatal("different tokens produced the same key")
	}
}
