package jslint

import "strings"

func nameSet(names string) map[string]bool {
	set := make(map[string]bool)
	for _, n := range strings.Fields(names) {
		set[n] = true
	}
	return set
}

// standardGlobals are defined by ECMAScript in every environment.
var standardGlobals = nameSet(`
	Array ArrayBuffer BigInt Boolean DataView Date Error EvalError Float32Array
	Float64Array Function Infinity Int16Array Int32Array Int8Array JSON Map Math
	NaN Number Object Promise Proxy RangeError ReferenceError Reflect RegExp Set
	String Symbol SyntaxError TypeError URIError Uint16Array Uint32Array Uint8Array
	Uint8ClampedArray WeakMap WeakSet arguments decodeURI decodeURIComponent
	encodeURI encodeURIComponent escape eval globalThis isFinite isNaN parseFloat
	parseInt undefined unescape
`)

// browserGlobals matches JSLint's browser option.
var browserGlobals = nameSet(`
	clearInterval clearTimeout document event FormData frames history Image
	localStorage location name navigator Option parent screen sessionStorage
	setInterval setTimeout Storage window XMLHttpRequest
`)

// nodeGlobals matches JSLint's node option.
var nodeGlobals = nameSet(`
	Buffer clearImmediate clearInterval clearTimeout console exports global module
	process querystring require setImmediate setInterval setTimeout __dirname
	__filename
`)

// isKnownGlobal reports whether name is defined without a declaration in the
// file under the pass's options.
func (p *pass) isKnownGlobal(name string) bool {
	switch {
	case standardGlobals[name]:
		return true
	case p.opts.Browser && browserGlobals[name]:
		return true
	case p.opts.Node && nodeGlobals[name]:
		return true
	}
	return p.predef[name]
}
