// Package capi exposes the itn package's public entry points over a
// C-compatible ABI, for embedding this library from a host language via
// cgo. String arguments and results are null-terminated UTF-8 C strings.
// The normalize functions return NULL on null or non-UTF-8 input;
// ItnAddRule and ItnRemoveRule return 0 for such input.
package capi

/*
#include <stdlib.h>
*/
import "C"

import (
	"unicode/utf8"
	"unsafe"

	itn "github.com/speechnorm/go-itn"
)

// ItnNormalize normalizes a single spoken-form expression to written
// form. Returns NULL if input is NULL or not valid UTF-8; the returned
// string must be released with ItnFreeString.
//
//export ItnNormalize
func ItnNormalize(input *C.char) *C.char {
	s, ok := goString(input)
	if !ok {
		return nil
	}
	return toCString(itn.Normalize(s))
}

// ItnNormalizeSentence scans input for normalizable spans using the
// default 16-token window. Returns NULL if input is NULL or not valid
// UTF-8; the returned string must be released with ItnFreeString.
//
//export ItnNormalizeSentence
func ItnNormalizeSentence(input *C.char) *C.char {
	s, ok := goString(input)
	if !ok {
		return nil
	}
	return toCString(itn.NormalizeSentence(s))
}

// ItnNormalizeSentenceWithMaxSpan is ItnNormalizeSentence with a caller-
// supplied window width. A maxSpan of 0 is treated as 1.
//
//export ItnNormalizeSentenceWithMaxSpan
func ItnNormalizeSentenceWithMaxSpan(input *C.char, maxSpan C.int) *C.char {
	s, ok := goString(input)
	if !ok {
		return nil
	}
	return toCString(itn.NormalizeSentenceWithMaxSpan(s, int(maxSpan)))
}

// ItnAddRule registers a custom rule on the default engine. Returns
// false if either argument is NULL or not valid UTF-8.
//
//export ItnAddRule
func ItnAddRule(spoken, written *C.char) C.int {
	s, ok1 := goString(spoken)
	w, ok2 := goString(written)
	if !ok1 || !ok2 {
		return 0
	}
	itn.AddRule(s, w)
	return 1
}

// ItnRemoveRule removes a custom rule from the default engine, reporting
// whether it was found.
//
//export ItnRemoveRule
func ItnRemoveRule(spoken *C.char) C.int {
	s, ok := goString(spoken)
	if !ok {
		return 0
	}
	if itn.RemoveRule(s) {
		return 1
	}
	return 0
}

// ItnClearRules removes every custom rule from the default engine.
//
//export ItnClearRules
func ItnClearRules() {
	itn.ClearRules()
}

// ItnRuleCount reports how many custom rules are registered on the
// default engine.
//
//export ItnRuleCount
func ItnRuleCount() C.uint {
	return C.uint(itn.RuleCount())
}

// ItnVersion returns the library's version string. The returned pointer
// is a static constant and must NOT be passed to ItnFreeString.
//
//export ItnVersion
func ItnVersion() *C.char {
	return versionCString
}

// versionCString is allocated once at init and never freed, matching the
// static, non-freeable version string the Rust FFI layer returns.
var versionCString = C.CString(itn.Version())

// ItnFreeString releases a string returned by ItnNormalize,
// ItnNormalizeSentence, or ItnNormalizeSentenceWithMaxSpan. Passing NULL
// is a no-op; passing the same non-NULL pointer twice is undefined
// behavior, as with any C allocator.
//
//export ItnFreeString
func ItnFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

func goString(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	str := C.GoString(s)
	// C.GoString stops at the first NUL byte, so any malformed UTF-8
	// that survives is still a plain Go string; validate explicitly.
	if !isValidUTF8(str) {
		return "", false
	}
	return str, true
}

func toCString(s string) *C.char {
	return C.CString(s)
}

func isValidUTF8(s string) bool {
	return utf8.ValidString(s)
}
