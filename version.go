package itn

// packageVersion is the library's semantic version. It is a compile-time
// constant; the C ABI exposes it as a static, non-freeable string.
const packageVersion = "0.1.0"

// Version reports the library's semantic version string.
func Version() string {
	return packageVersion
}
