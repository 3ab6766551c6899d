package judge

import (
	"regexp"
	"strings"
)

var (
	funcDecl  = regexp.MustCompile(`function\s+([A-Za-z_$][\w$]*)\s*\(`)
	funcValue = regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>|[A-Za-z_$][\w$]*\s*=>)`)
)

// DefaultEntryPoint is called when neither the source nor the problem names one.
const DefaultEntryPoint = "solution"

const harness = `

const __input = require('fs').readFileSync(0, 'utf-8').trim();
try {
  let __arg = __input;
  try {
    __arg = JSON.parse(__input);
  } catch (e) {}
  const __result = __ENTRY__(__arg);
  if (__result === undefined) {
    console.log('');
  } else if (__result !== null && typeof __result === 'object') {
    console.log(JSON.stringify(__result));
  } else {
    console.log(String(__result));
  }
} catch (error) {
  console.error(error && error.message ? error.message : String(error));
}
`

// EntryPoint finds the function the harness should call: a function
// declaration first, then a function or arrow assigned to a binding, then
// fallback, then DefaultEntryPoint.
func EntryPoint(code, fallback string) string {
	if m := funcDecl.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if m := funcValue.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return DefaultEntryPoint
}

// WrapJavaScript appends a stdin harness to a JavaScript solution. The
// harness feeds stdin (JSON-decoded when possible) to the entry function and
// prints its return value (undefined prints an empty line, null prints
// "null"); exceptions go to stderr.
func WrapJavaScript(code, fallback string) string {
	return code + strings.Replace(harness, "__ENTRY__", EntryPoint(code, fallback), 1)
}
