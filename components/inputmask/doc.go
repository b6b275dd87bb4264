// Package inputmask exposes the mask presets over a small net/http handler.
//
// The handler answers GET and HEAD requests of the form
//
//	GET <base>/api/masks?preset=<name>&value=<raw>
//
// with {"data": {...}} holding the mask elements, their notation and
// placeholder. For auto-correcting date presets a conformed query parameter
// (and optionally placeholder) runs the date pipe and adds a "pipe" object
// with the corrected value or "rejected": true.
package inputmask
