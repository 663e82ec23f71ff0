// Package syntax prints Swift and Go side by side, running the Go half.
package syntax

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ib-77/swiftbridge/pkg/rop"
)

// printer remembers the first write error so sections stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(n int, title string, swift ...string) {
	p.printf("\n=== %d. %s ===\n", n, title)
	for _, line := range swift {
		p.printf("// Swift: %s\n", line)
	}
}

func Greet(name string, greeting ...string) string {
	g := "Hello"
	if len(greeting) > 0 {
		g = greeting[0]
	}
	return fmt.Sprintf("%s, %s!", g, name)
}

func Map[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func Filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

type User struct {
	Name string
	Age  int
}

func (u User) Description() string {
	return fmt.Sprintf("%s is %d years old", u.Name, u.Age)
}

var ErrNegative = errors.New("value must be positive")

func RiskyOperation(value int) (int, error) {
	if value < 0 {
		return 0, ErrNegative
	}
	return value * 2, nil
}

func AddNumbers(a, b int) int {
	return a + b
}

func Run(_ context.Context, w io.Writer) error {
	p := &printer{w: w}

	name, age, height := "Alice", 25, 5.8
	p.section(1, "VARIABLES & TYPES", `let name: String = "Alice"`, `var age: Int = 25`)
	p.printf("Name: %s, Age: %d, Height: %.1f\n", name, age, height)

	var email *string
	p.section(2, "OPTIONALS", `var email: String? = nil`, `if let email = email { }`)
	if email != nil {
		p.printf("Email: %s\n", *email)
	} else {
		p.printf("Email is nil\n")
	}

	p.section(3, "FUNCTIONS", `func greet(name: String, greeting: String = "Hello") -> String`)
	p.printf("%s\n", Greet("Alice"))
	p.printf("%s\n", Greet("Bob", "Hi"))

	numbers := []int{1, 2, 3, 4, 5}
	p.section(4, "CLOSURES", `let doubled = numbers.map { $0 * 2 }`)
	p.printf("Original: %v\n", numbers)
	p.printf("Doubled: %v\n", Map(numbers, func(x int) int { return x * 2 }))

	p.section(5, "FILTERING", `let evens = numbers.filter { $0 % 2 == 0 }`)
	p.printf("Even numbers: %v\n", Filter(numbers, func(x int) bool { return x%2 == 0 }))

	person := map[string]any{"name": "Alice", "age": 25}
	p.section(6, "MAPS", `let person: [String: Any] = ["name": "Alice", "age": 25]`)
	p.printf("Name: %v, Age: %v\n", person["name"], person["age"])
	mail, ok := person["email"]
	p.printf("Email: %v (present: %t)\n", mail, ok)

	p.section(7, "LOOPS", `for number in numbers { }`, `for (index, number) in numbers.enumerated() { }`)
	for _, n := range numbers {
		p.printf("%d ", n)
	}
	p.printf("\n")
	for i, n := range numbers {
		p.printf("[%d]: %d ", i, n)
	}
	p.printf("\n")

	p.section(8, "STRUCTS & METHODS", `struct User { let name: String; let age: Int }`)
	p.printf("%s\n", User{Name: "Alice", Age: 25}.Description())

	p.section(9, "ERROR HANDLING", `do { try someFunction() } catch { print(error) }`)
	if result, err := RiskyOperation(5); err != nil {
		p.printf("Error: %v\n", err)
	} else {
		p.printf("Result: %d\n", result)
	}
	if res := rop.Of(RiskyOperation(-1)); !res.IsSuccess() {
		p.printf("Error: %s\n", res.Message())
	}

	p.section(10, "TYPE INFERENCE", `let sum = addNumbers(5, 3)`)
	sum := AddNumbers(5, 3)
	p.printf("5 + 3 = %d (%T)\n", sum, sum)

	p.printf("\n✅ All examples completed!\n")
	return p.err
}
