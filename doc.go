// Package itn performs inverse text normalization: it converts spoken-form
// English text, the kind a speech recognizer emits, into written form.
//
//	itn.Normalize("two hundred thirty two")            // "232"
//	itn.Normalize("five dollars and fifty cents")      // "$5.50"
//	itn.NormalizeSentence("I have twenty one apples")  // "I have 21 apples"
//
// Normalize applies a fixed-priority pipeline of taggers to a single
// expression. NormalizeSentence tokenizes a full utterance and slides a
// longest-match window across it, so ordinary words are left untouched while
// numbers, dates, money, and similar spoken forms are rewritten in place.
//
// All package-level functions are safe for concurrent use. For an isolated
// set of custom rules, create a separate [Engine] with [NewEngine].
package itn
