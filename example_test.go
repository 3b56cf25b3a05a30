package skipjack_test

import (
	"encoding/hex"
	"fmt"

	"github.com/codahale/skipjack"
)

func Example() {
	// The key is exactly 10 bytes.
	key, _ := hex.DecodeString("00998877665544332211")

	cipher, err := skipjack.New(key)
	if err != nil {
		panic(err)
	}

	// Encrypt a single 8-byte block.
	plaintext, _ := hex.DecodeString("33221100ddccbbaa")
	ciphertext := make([]byte, skipjack.BlockSize)
	cipher.Encrypt(ciphertext, plaintext)
	fmt.Printf("%x\n", ciphertext)

	// Decrypt it again.
	decrypted := make([]byte, skipjack.BlockSize)
	cipher.Decrypt(decrypted, ciphertext)
	fmt.Printf("%x\n", decrypted)

	// Output:
	// 2587cae27a12d300
	// 33221100ddccbbaa
}

func ExampleNew_invalidKey() {
	// Keys of any length other than 10 bytes are rejected.
	_, err := skipjack.New([]byte("too short"))
	fmt.Println(err)

	// Output:
	// skipjack: invalid key size 9, must be 10 bytes
}
