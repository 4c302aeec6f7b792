// Package adt defines Abstract Data Type (ADT) interfaces.
//
// # What is an Abstract Data Type?
//
// An Abstract Data Type describes WHAT operations a data structure supports,
// but not HOW those operations are implemented. It is a contract: any type
// that satisfies the interface can be used interchangeably.
//
// For example, a Stack ADT specifies Push, Pop, and Peek operations. Whether
// the Stack uses an array or linked list internally is hidden. You can swap
// implementations without changing the code that uses them.
//
// # Why Use ADTs?
//
// ADTs let you think at the right level of abstraction. When solving a problem,
// you focus on what operations you need rather than implementation details.
// Later, you can choose or swap the concrete implementation based on
// performance needs.
//
// This package provides small, composable interfaces. Rather than one large
// interface, we define Sizer, Getter, Appender, and so on. Types implement
// only what they need, and generic algorithms constrain on only what they use.
//
// # Design Philosophy
//
// Go favors small interfaces. The standard library's io.Reader and io.Writer
// are single-method interfaces that compose beautifully. This package follows
// that pattern: each interface captures one capability. This makes interfaces
// easy to implement and algorithms maximally reusable.
package adt

// Sizer describes a data structure that tracks its element count.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	Size() -> 5
//
// The Size method returns the number of elements currently stored.
// An empty structure returns 0.
type Sizer interface {
	Size() int
}

// Emptier describes a data structure that can report if it has no elements.
//
//	Empty structure:         Non-empty structure:
//	┌───┐                    ┌───┬───┬───┐
//	│   │ (no elements)      │ A │ B │ C │
//	└───┘                    └───┴───┴───┘
//	Empty() -> true           Empty() -> false
//
// The Empty method returns true if and only if Size() equals 0.
type Emptier interface {
	Empty() bool
}

// Getter describes a data structure that supports index-based element access.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  0   1   2   3   4   <- indices
//
//	Get(0) -> A    (first element)
//	Get(2) -> C    (middle element)
//	Get(4) -> E    (last element)
//
// The Get method retrieves the element at the specified index.
// Valid indices are in range [0, Size()-1].
//
// Panics:
//   - If index is negative
//   - If index >= Size()
//   - If the structure is empty
type Getter[T any] interface {
	Get(int) T
}

// Setter describes a data structure that supports updating elements by index.
//
//	Before Set(2, X):        After Set(2, X):
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ A │ B │ X │ D │ E │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┴───┘
//	  0   1   2   3   4        0   1   2   3   4
//	          ↑                        ↑
//	       updated                  updated
//
// The Set method replaces the element at the given index with a new value.
// This does NOT change the size of the structure.
// Valid indices are in range [0, Size()-1].
//
// Panics:
//   - If index is negative
//   - If index >= Size()
type Setter[T any] interface {
	Set(int, T)
}

// Appender describes a data structure that supports adding elements at the end.
//
//	Before Append(F):        After Append(F):
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ A │ B │ C │ D │ E │ F │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┴───┴───┘
//	                  ↑                            ↑
//	              old tail                     new tail
//
// The Append method inserts a new element after the last element.
// The appended element becomes the new Tail().
// Size increases by 1.
type Appender[T any] interface {
	Append(T)
}

// Prepender describes a data structure that supports adding elements at the front.
//
//	Before Prepend(Z):       After Prepend(Z):
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ Z │ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┴───┴───┘
//	  ↑                        ↑
//	old head               new head
//
// The Prepend method inserts a new element before the first element.
// The prepended element becomes the new Head().
// Size increases by 1.
type Prepender[T any] interface {
	Prepend(T)
}

// Tailer describes a data structure that provides access to its last element.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	                  ↑
//	                tail
//
//	Tail() -> E
//
// The Tail method returns the last element without removing it.
// This is equivalent to Get(Size()-1).
//
// Panics:
//   - If the structure is empty
type Tailer[T any] interface {
	Tail() T
}

// Header describes a data structure that provides access to its first element.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  ↑
//	head
//
//	Head() -> A
//
// The Head method returns the first element without removing it.
// This is equivalent to Get(0).
//
// Panics:
//   - If the structure is empty
type Header[T any] interface {
	Head() T
}

// Popper describes a data structure that supports removing elements from the end.
//
//	Before Pop():            After Pop():
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ A │ B │ C │ D │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┘
//	                  ↑                    ↑
//	              removed              new tail
//
//	Pop() -> E (the removed element)
//
// The Pop method removes and returns the last element.
// Size decreases by 1.
//
// Panics:
//   - If the structure is empty
type Popper[T any] interface {
	Pop() T
}

// Shifter describes a data structure that supports removing elements from the front.
//
//	Before Shift():          After Shift():
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┘
//	  ↑                        ↑
//	removed                new head
//
//	Shift() -> A (the removed element)
//
// The Shift method removes and returns the first element.
// All remaining elements shift to lower indices.
// Size decreases by 1.
//
// Panics:
//   - If the structure is empty
type Shifter[T any] interface {
	Shift() T
}

// Iterator describes a data structure that can be traversed element by element.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  ↓   ↓   ↓   ↓   ↓
//	  1   2   3   4   5    <- iteration order (forward)
//
// The Iter method accepts a yield function called for each element.
//
// Example using Go 1.23+ range-over-func:
//
//	for value := range structure.Iter {
//	    fmt.Println(value)
//	}
type Iterator[T any] interface {
	Iter(func(T) bool)
}

// BackwardIterator describes a data structure that can be traversed in reverse.
//
//	┌───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │
//	└───┴───┴───┴───┴───┘
//	  ↓   ↓   ↓   ↓   ↓
//	  5   4   3   2   1    <- iteration order (backward)
//
// The IterBackward method visits elements from tail to head.
type BackwardIterator[T any] interface {
	IterBackward(func(T) bool)
}

// Remover describes a data structure that supports removing elements by index.
//
//	Before Remove(2):        After Remove(2):
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ A │ B │ D │ E │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┘
//	  0   1   2   3   4        0   1   2   3
//	          ↑
//	       removed
//
//	Remove(2) -> C (the removed element)
//
// The Remove method deletes the element at the given index and returns it.
// Elements after the removed index shift to lower indices.
// Size decreases by 1.
//
// Panics:
//   - If index is negative
//   - If index >= Size()
type Remover[E any] interface {
	Remove(index int) E
}

// Inserter describes a data structure that supports inserting elements at any position.
//
//	Before Insert(2, X):     After Insert(2, X):
//	┌───┬───┬───┬───┬───┐    ┌───┬───┬───┬───┬───┬───┐
//	│ A │ B │ C │ D │ E │    │ A │ B │ X │ C │ D │ E │
//	└───┴───┴───┴───┴───┘    └───┴───┴───┴───┴───┴───┘
//	  0   1   2   3   4        0   1   2   3   4   5
//	          ↑                        ↑
//	    insert here              new element
//
// The Insert method adds a new element at the specified index.
// Elements at and after that index shift to higher indices.
// Size increases by 1.
// Valid indices are in range [0, Size()] (can insert at the end).
//
// Panics:
//   - If index is negative
//   - If index > Size()
type Inserter[E any] interface {
	Insert(index int, data E)
}
