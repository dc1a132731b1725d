package dbg

import (
	"fmt"
	"reflect"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Turns arbitrary values (usually pointers) into readable names like
// "BraveOtter", so a segment can be followed through a long sweep log without
// comparing addresses. Names are handed out lazily and never forgotten, which
// leaks, but only while debug logging is actually on.

var (
	memoLock sync.Mutex
	memo     = make(map[interface{}]string)
	title    = cases.Title(language.English)
)

func init() {
	// Names are assigned in order of demand, so make them differ between runs.
	// The same name does not refer to the same thing in two different logs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && v.IsNil() {
		return "Ø"
	}

	memoLock.Lock()
	defer memoLock.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", title.String(petname.Adjective()), title.String(petname.Name()))
	memo[obj] = r
	return r
}

// Forget every name handed out so far.
func Reset() {
	memoLock.Lock()
	defer memoLock.Unlock()
	memo = make(map[interface{}]string)
}
