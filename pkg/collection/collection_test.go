package collection_test

import (
	"reflect"
	"testing"

	"github.com/shashiranjanraj/shopeasy/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Errorf("Map = %v", got)
	}
}

func TestFilterAndReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	if got := collection.Filter([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Filter = %v", got)
	}
	if got := collection.Reject([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Reject = %v", got)
	}
	if got := collection.Reject([]int{2, 4}, even); got != nil {
		t.Errorf("Reject all = %v, want nil", got)
	}
}

func TestFirstAndContains(t *testing.T) {
	big := func(n int) bool { return n > 2 }

	v, ok := collection.First([]int{1, 2, 3, 4}, big)
	if !ok || v != 3 {
		t.Errorf("First = %v, %v", v, ok)
	}

	if _, ok := collection.First([]int{1, 2}, big); ok {
		t.Error("First on no match must report false")
	}
	if !collection.Contains([]int{1, 3}, big) {
		t.Error("Contains missed a match")
	}
}

func TestReduceAndSum(t *testing.T) {
	got := collection.Reduce([]string{"a", "b", "c"}, "", func(acc, s string) string { return acc + s })
	if got != "abc" {
		t.Errorf("Reduce = %q", got)
	}

	sum := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f })
	if sum != 4.0 {
		t.Errorf("Sum = %v", sum)
	}
}
