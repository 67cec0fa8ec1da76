package utils

import "fmt"

// ExampleStringWithCharset показывает, как создать строку из заданного набора символов указанной длины.
func ExampleStringWithCharset() {
	s := StringWithCharset(6, "ab")
	fmt.Println(len(s))
	// Output: 6
}

// ExampleRandomString показывает, как получить случайный короткий код заданной длины.
func ExampleRandomString() {
	s := RandomString(8)
	fmt.Println(len(s))
	// Output: 8
}
