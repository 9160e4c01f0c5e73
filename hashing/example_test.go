package hashing_test

import (
	"fmt"
	"log"

	"github.com/viniciuschiele/scrypt/hashing"
)

// Example_defaultHasher demonstrates the recommended out-of-the-box setup.
func Example_defaultHasher() {
	h := hashing.NewDefault()

	envelope, err := h.Encode("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := h.Compare("my-secret-password", envelope)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok)
	// Output: true
}

// Example_customOptions demonstrates tuning cost parameters directly.
func Example_customOptions() {
	h, err := hashing.New(hashing.Options{
		N:         32768,
		R:         8,
		P:         1,
		MaxMemory: 64 << 20,
	})
	if err != nil {
		log.Fatal(err)
	}

	envelope, _ := h.Encode("correct-horse-battery-staple")
	ok, _ := h.Compare("correct-horse-battery-staple", envelope)
	fmt.Println(ok)
	// Output: true
}

// Example_isValid shows checking an envelope's shape without configuring a
// Hasher.
func Example_isValid() {
	fmt.Println(hashing.IsValid("$e1$adasdasd$asdasdsd"))
	// Output: false
}

// Example_wrongPassword shows the result of comparing against a hash
// produced from a different password.
func Example_wrongPassword() {
	h := hashing.NewDefault()

	envelope, _ := h.Encode("the-real-password")
	ok, err := h.Compare("a-guess", envelope)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ok)
	// Output: false
}
