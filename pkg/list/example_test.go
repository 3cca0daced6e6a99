package list_test

import (
	"errors"
	"fmt"

	"github.com/ArturiaGit/DataStructure/pkg/list"
)

func Example() {
	l, _ := list.Of("1", "2", "3", "4")

	_ = l.InsertAt(0, "0")
	_ = l.RemoveValue("3")
	_ = l.Update(1, "one")

	for v := range l.All() {
		fmt.Println(v)
	}

	index, _ := l.Contains("4")
	fmt.Println("index of 4:", index)

	_, err := l.GetAt(10)
	fmt.Println(errors.Is(err, list.ErrIndexOutOfRange))

	// Output:
	// 0
	// one
	// 2
	// 4
	// index of 4: 3
	// true
}

func ExampleList_Iterator() {
	l, _ := list.Of(10, 20, 30)
	for it := l.Iterator(); it.Next(); {
		fmt.Println(it.Value())
	}
	// Output:
	// 10
	// 20
	// 30
}
