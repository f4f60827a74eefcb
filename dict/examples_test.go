package dict_test

import (
	"errors"
	"fmt"

	"github.com/bluesky-social/pdict/dict"
)

func ExampleDictionary() {
	d := dict.New[string, int]()

	if err := d.Add("smith", 1); err != nil {
		panic(err)
	}
	if err := d.Add("smith", 2); errors.Is(err, dict.ErrDuplicateKey) {
		fmt.Println("duplicate rejected")
	}

	before := d.Snapshot()
	found, _ := d.Remove("smith")
	fmt.Println(found)

	ok, val, _ := before.TryGetValue("smith")
	fmt.Println(ok, val)
	ok, _, _ = d.TryGetValue("smith")
	fmt.Println(ok)
	// Output:
	// duplicate rejected
	// true
	// true 1
	// false
}
