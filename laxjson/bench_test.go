package laxjson

import (
	"encoding/json"
	"testing"

	"github.com/buger/jsonparser"
)

// Cross-implementation benchmarks: the same document through this parser,
// encoding/json, and buger/jsonparser's scanning API.

var benchDoc = `{
	"key": 42,
	"array": [1, 2, 3, 4, 5, 6, 7, 8],
	"message": "hello world",
	"nested": {"a": 1.5, "b": [true, false, null], "c": "deep"},
	"flags": {"active": true, "ratio": 0.25}
}`

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_Stdlib(b *testing.B) {
	data := []byte(benchDoc)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_BugerScan(b *testing.B) {
	data := []byte(benchDoc)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := jsonparser.GetInt(data, "key"); err != nil {
			b.Fatal(err)
		}
		if _, err := jsonparser.GetString(data, "message"); err != nil {
			b.Fatal(err)
		}
		var sum int64
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			if n, perr := jsonparser.ParseInt(value); perr == nil {
				sum += n
			}
		}, "array")
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEmit(b *testing.B) {
	v, err := Parse(benchDoc)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Emit(v)
	}
}

func BenchmarkEmit_Stdlib(b *testing.B) {
	v, err := Parse(benchDoc)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ToStdJSON(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v, err := Parse(benchDoc)
		if err != nil {
			b.Fatal(err)
		}
		_ = Emit(v)
	}
}
