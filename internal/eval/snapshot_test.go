package eval

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalSnapshots runs a table of small cyber programs end-to-end and
// snapshots each inspected result via snaps.MatchSnapshot, giving golden
// coverage of evaluation output that a hand-written assertion would miss.
func TestEvalSnapshots(t *testing.T) {
	programs := []struct {
		name string
		src  string
	}{
		{"arithmetic", "2 + 3 * 4 - 1;"},
		{"string_concat", `"foo" + "bar";`},
		{"array_literal", "[1, 2, 3 + 4, true];"},
		{"hash_literal", `{"a": 1, "b": 2};`},
		{"fibonacci", `
let fib = fn(n) {
  if (n < 2) { return n; }
  return fib(n - 1) + fib(n - 2);
};
fib(10);
`},
		{"class_inheritance", `
class Animal {
  fn init(self, name) { self.name = name; }
  fn speak(self) { return self.name + " makes a sound"; }
}
class Dog : Animal {
  fn speak(self) { return super.speak() + ", specifically a bark"; }
}
let d = new Dog("Rex");
d.speak();
`},
		{"closures", `
let makeCounter = fn() {
  let count = 0;
  return fn() { count = count + 1; return count; };
};
let c = makeCounter();
c(); c(); c();
`},
		{"type_mismatch_error", "true - 1;"},
	}

	for _, p := range programs {
		t.Run(p.name, func(t *testing.T) {
			result := run(t, p.src)
			snaps.MatchSnapshot(t, fmt.Sprintf("%s => %s", p.name, result.Inspect()))
		})
	}
}
