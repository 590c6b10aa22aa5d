package jsondiff_test

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/qri-io/jsondiff"
)

func Example() {
	a, _ := jsondiff.ParseJSON([]byte(`{"a":100,"list":["x","y"]}`))
	b, _ := jsondiff.ParseJSON([]byte(`{"a":99,"list":["x","z","y"]}`))

	changes := jsondiff.Diff(a, b)
	data, _ := json.Marshal(changes)
	fmt.Println(string(data))

	patched, err := jsondiff.Patch(a, changes)
	if err != nil {
		panic(err)
	}
	fmt.Println(patched)
	fmt.Println(a)

	// Output: [[["a"],99],[["list",1],"z"]]
	// {"a":99,"list":["x","z","y"]}
	// {"a":100,"list":["x","y"]}
}

func ExampleFormatPretty() {
	a, _ := jsondiff.ParseYAML([]byte("a: 100\nlist: [x, w]\n"))
	b, _ := jsondiff.ParseYAML([]byte("a: 99\nlist: [x, z, w]\n"))

	stats := &jsondiff.Stats{}
	changes := jsondiff.Diff(a, b, jsondiff.OptionSetStats(stats))
	if err := jsondiff.FormatPretty(os.Stdout, changes, false); err != nil {
		panic(err)
	}
	fmt.Print(jsondiff.FormatPrettyStats(stats))

	// Output: + /a: 99
	// + /list/1: "z"
	// +1 element. 2 inserts. 1 delete.
}

func ExampleDeltas_JSONPatch() {
	a, _ := jsondiff.ParseJSON([]byte(`{"name":"a","tags":["x"]}`))
	b, _ := jsondiff.ParseJSON([]byte(`{"tags":["x","y"]}`))

	data, _ := jsondiff.Diff(a, b).JSONPatch()
	fmt.Println(string(data))

	// Output: [{"op":"remove","path":"/name"},{"op":"add","path":"/tags/1","value":"y"}]
}

func ExampleLCS() {
	seq, ok := jsondiff.LCS(
		[]jsondiff.Value{jsondiff.String("a"), jsondiff.String("b"), jsondiff.String("c"), jsondiff.String("d")},
		[]jsondiff.Value{jsondiff.String("x"), jsondiff.String("a"), jsondiff.String("c"), jsondiff.String("d"), jsondiff.String("y")},
	)
	data, _ := json.Marshal(seq)
	fmt.Println(string(data), ok)

	// Output: ["a","c","d"] true
}
