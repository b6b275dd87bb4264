package inputmask

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-inputmask/pkg/mask"
	"github.com/goliatone/go-inputmask/pkg/preset"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type maskResponse struct {
	Data maskData `json:"data"`
}

type maskData struct {
	preset.Result
	Pipe *pipeResult `json:"pipe,omitempty"`
}

type pipeResult struct {
	Value            string `json:"value,omitempty"`
	CharacterIndexes []int  `json:"characterIndexes,omitempty"`
	Rejected         bool   `json:"rejected,omitempty"`
}

// Handler builds a net/http handler with default options plus any overrides.
// It is an alias of NewHandler to match the recommended component API surface.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options value.
// Defaults are re-applied so a zero Options value still serves the built-in presets.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				opts.logWarn(r, "guard rejected request", err)
				writeGuardError(w, err)
				return
			}
		}

		data, err := evaluate(r, opts)
		if err != nil {
			code := http.StatusInternalServerError
			var httpErr HTTPError
			if errors.As(err, &httpErr) {
				code = httpErr.StatusCode()
			}
			opts.logWarn(r, "mask request failed", err)
			http.Error(w, http.StatusText(code), code)
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(maskResponse{Data: data})
	})
}

func evaluate(r *http.Request, opts Options) (maskData, error) {
	query := r.URL.Query()

	name := strings.TrimSpace(query.Get(opts.PresetParam))
	if name == "" {
		return maskData{}, StatusError{Code: http.StatusBadRequest, Err: fmt.Errorf("inputmask: missing %q parameter", opts.PresetParam)}
	}
	p, err := opts.Presets.Lookup(name)
	if err != nil {
		return maskData{}, StatusError{Code: http.StatusNotFound, Err: err}
	}

	raw := query.Get(opts.ValueParam)
	conformed := query.Get(opts.ConformedParam)
	if len(raw) > opts.MaxValueLength || len(conformed) > opts.MaxValueLength {
		return maskData{}, StatusError{Code: http.StatusRequestEntityTooLarge, Err: fmt.Errorf("inputmask: value exceeds %d bytes", opts.MaxValueLength)}
	}

	res, err := p.Generate(raw, opts.Locales)
	if err != nil {
		return maskData{}, err
	}
	data := maskData{Result: res}

	if query.Has(opts.ConformedParam) && p.AutoCorrects() {
		correction, ok := p.Correct(mask.ProcessResult{
			ConformedValue:  conformed,
			PlaceholderChar: mask.DefaultPlaceholderChar,
			Placeholder:     query.Get(opts.PlaceholderParam),
		})
		if ok {
			data.Pipe = &pipeResult{Value: correction.Value, CharacterIndexes: correction.CharacterIndexes}
		} else {
			data.Pipe = &pipeResult{Rejected: true}
		}
	}
	return data, nil
}

func (o Options) logWarn(r *http.Request, msg string, err error) {
	if o.Logger == nil {
		return
	}
	o.Logger.Warn("inputmask: "+msg, "method", r.Method, "path", r.URL.Path, "error", err)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
