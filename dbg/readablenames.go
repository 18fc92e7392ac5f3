package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts directed edge index pairs into random readable names. It
// flagrantly leaks memory but generates the names lazily, so it's not a
// problem unless you're actually tracing. "CuddlyOtter" is much easier to
// follow through a refinement trace than a bare pair of ints.

var memo map[[2]int]string

func init() {
	memo = make(map[[2]int]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same edge between runs.
	petname.NonDeterministicMode()
}

func EdgeName(i, j int) string {
	key := [2]int{i, j}
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
