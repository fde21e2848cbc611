package keys

import "testing"

func Test(t *testing.T) {
	key, err := NewKey()
	if err != nil {
		t.Fatal(err)
	}

	plaintext := "Hello, World!"

	encrypted, err := key.Encrypt([]byte(plaintext))
	if err != nil {
		t.Fatal(err)
	}

	decrypted, err := key.Decrypt(encrypted)
	if err != nil {
		t.Fatal(err)
	}

	if plaintext != string(decrypted) {
		t.Fatal("encrypted != decrypted")
	}
}

func TestTampered(t *testing.T) {
	key, err := NewKey()
	if err != nil {
		t.Fatal(err)
	}

	encrypted, err := key.Encrypt([]byte("Hello, World!"))
	if err != nil {
		t.Fatal(err)
	}

	encrypted[len(encrypted)-1] ^= 0xff

	if _, err := key.Decrypt(encrypted); err == nil {
		t.Fatal("expected tampered ciphertext to fail to decrypt")
	}
}

func TestParseKey(t *testing.T) {
	if _, err := ParseKey([]byte("please-change-me")); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseKey([]byte("too-short")); err == nil {
		t.Fatal("expected invalid key size error")
	}
}
