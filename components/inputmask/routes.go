package inputmask

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// presetsSuffix is appended to the mount path for the preset index route.
const presetsSuffix = "/presets"

// Mux is the minimal interface required to register a net/http handler.
// It is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// MountPath returns the full mount path for the mask route under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	opts := NewOptions(fns...)
	return joinPath(basePath, opts.RoutePath)
}

// RegisterRoutes registers the mask handler and the preset index under
// basePath on mux. It returns the mask route pattern.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions is RegisterRoutes for a pre-built Options value.
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (string, error) {
	if mux == nil {
		return "", fmt.Errorf("inputmask: missing mux")
	}
	opts = NewOptions(func(o *Options) { *o = opts })
	pattern := joinPath(basePath, opts.RoutePath)
	mux.Handle(pattern, HandlerWithOptions(opts))
	mux.Handle(strings.TrimRight(pattern, "/")+presetsSuffix, presetIndexHandler(opts))
	return pattern, nil
}

type presetIndexResponse struct {
	Data []string `json:"data"`
}

// presetIndexHandler lists the served preset names.
func presetIndexHandler(opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}
		names := opts.Presets.Names()
		if names == nil {
			names = []string{}
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(presetIndexResponse{Data: names})
	})
}

func joinPath(basePath, routePath string) string {
	base := strings.Trim(strings.TrimSpace(basePath), "/")
	route := "/" + strings.TrimLeft(strings.TrimSpace(routePath), "/")
	if base == "" {
		return route
	}
	return "/" + base + route
}
