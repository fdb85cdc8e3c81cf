package font

import (
	"errors"
	"sync"

	"github.com/npillmayer/typecase/core"
)

// ErrNoResolver is stored in descriptors which have been created without
// any resolver available.
var ErrNoResolver = core.ErrorWithCode(errors.New("no font resolver installed"), core.EMISSING)

var defaultResolver struct {
	sync.RWMutex
	r Resolver
}

// SetDefaultResolver installs the resolver used by New and From.
// Descriptors created earlier keep their resolution outcome.
// Passing nil uninstalls the current resolver.
func SetDefaultResolver(r Resolver) {
	defaultResolver.Lock()
	defer defaultResolver.Unlock()
	defaultResolver.r = r
}

// DefaultResolver returns the resolver used by New and From. If none has been
// installed, it returns a resolver failing with ErrNoResolver.
func DefaultResolver() Resolver {
	defaultResolver.RLock()
	defer defaultResolver.RUnlock()
	if defaultResolver.r == nil {
		return noResolver
	}
	return defaultResolver.r
}

var noResolver = ResolverFunc(func(string) (Backend, error) {
	return nil, ErrNoResolver
})
