// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package resourcetest provides an in-memory HTTP server hosting far resources, for use in tests.
package resourcetest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/farresource/xhttp"
)

// Request is a record of one request the Server received.
type Request struct {
	Method  string
	Path    string
	Name    string
	HasName bool
	Body    []byte
	Header  http.Header
}

// Option represents a configuration option for a Server
type Option func(*Server)

// WithHeader adds static headers to every response.
func WithHeader(h http.Header) Option {
	return func(s *Server) {
		s.header = h
	}
}

type key struct {
	path    string
	name    string
	hasName bool
}

// Server hosts text resources in memory.  GET reads a resource, PUT and POST replace it and
// echo the new contents, and DELETE makes it permanently gone, after which every request
// for it answers 410.  Sub-resource names are taken from a trailing "&q=" in the path, or
// from a "q" query parameter.
type Server struct {
	*httptest.Server

	header http.Header

	lock      sync.Mutex
	resources map[key][]byte
	gone      map[string]bool
	forced    map[string]int
	requests  []Request
}

// NewServer starts a Server.  Callers must Close it.
func NewServer(options ...Option) *Server {
	s := &Server{
		resources: make(map[key][]byte),
		gone:      make(map[string]bool),
		forced:    make(map[string]int),
	}

	for _, o := range options {
		o(s)
	}

	router := mux.NewRouter().UseEncodedPath().SkipClean(true)
	router.Methods(http.MethodGet).PathPrefix("/").HandlerFunc(s.get)
	router.Methods(http.MethodPut, http.MethodPost).PathPrefix("/").HandlerFunc(s.put)
	router.Methods(http.MethodDelete).PathPrefix("/").HandlerFunc(s.delete)

	s.Server = httptest.NewServer(
		alice.New(xhttp.StaticHeaders(s.header), s.record, s.guard).Then(router),
	)

	return s
}

// URLFor returns the absolute URL of the resource at path.
func (s *Server) URLFor(path string) string {
	return s.Server.URL + path
}

// Set stores the contents of an unnamed resource.
func (s *Server) Set(path string, body []byte) {
	s.lock.Lock()
	s.resources[key{path: path}] = body
	s.lock.Unlock()
}

// SetNamed stores the contents of a named sub-resource.
func (s *Server) SetNamed(path, name string, body []byte) {
	s.lock.Lock()
	s.resources[key{path: path, name: name, hasName: true}] = body
	s.lock.Unlock()
}

// Get returns the contents of an unnamed resource.
func (s *Server) Get(path string) ([]byte, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	body, ok := s.resources[key{path: path}]
	return body, ok
}

// GetNamed returns the contents of a named sub-resource.
func (s *Server) GetNamed(path, name string) ([]byte, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	body, ok := s.resources[key{path: path, name: name, hasName: true}]
	return body, ok
}

// Gone makes the resource at path, and all of its sub-resources, permanently gone.
func (s *Server) Gone(path string) {
	s.lock.Lock()
	s.gone[path] = true
	s.lock.Unlock()
}

// Fail forces every request for path to answer with the given status.  A status of zero
// removes the override.
func (s *Server) Fail(path string, status int) {
	s.lock.Lock()
	if status == 0 {
		delete(s.forced, path)
	} else {
		s.forced[path] = status
	}

	s.lock.Unlock()
}

// Requests returns a copy of every request received so far, in order.
func (s *Server) Requests() []Request {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Request(nil), s.requests...)
}

// parseKey extracts the resource key from a request.
func parseKey(r *http.Request) key {
	p := r.URL.EscapedPath()
	if i := strings.Index(p, "&q="); i >= 0 {
		name, err := url.PathUnescape(p[i+3:])
		if err != nil {
			name = p[i+3:]
		}

		return key{path: p[:i], name: name, hasName: true}
	}

	if values, ok := r.URL.Query()["q"]; ok && len(values) > 0 {
		return key{path: p, name: values[0], hasName: true}
	}

	return key{path: p}
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		var body []byte
		if request.Body != nil {
			body, _ = io.ReadAll(request.Body)
			request.Body = io.NopCloser(bytes.NewReader(body))
		}

		if len(body) == 0 {
			body = nil
		}

		k := parseKey(request)
		s.lock.Lock()
		s.requests = append(s.requests, Request{
			Method:  request.Method,
			Path:    k.path,
			Name:    k.name,
			HasName: k.hasName,
			Body:    body,
			Header:  request.Header.Clone(),
		})

		s.lock.Unlock()
		next.ServeHTTP(response, request)
	})
}

// guard applies gone resources and forced statuses ahead of routing.
func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		k := parseKey(request)
		s.lock.Lock()
		gone, forced := s.gone[k.path], s.forced[k.path]
		s.lock.Unlock()

		switch {
		case gone:
			xhttp.WriteErrorf(response, http.StatusGone, "%s is gone", k.path)
		case forced > 0:
			xhttp.WriteErrorf(response, forced, "forced status for %s", k.path)
		default:
			next.ServeHTTP(response, request)
		}
	})
}

func (s *Server) get(response http.ResponseWriter, request *http.Request) {
	k := parseKey(request)
	s.lock.Lock()
	body, ok := s.resources[k]
	s.lock.Unlock()

	if !ok {
		xhttp.WriteErrorf(response, http.StatusNotFound, "no such resource: %s", k.path)
		return
	}

	response.Header().Set("Content-Type", "text/plain")
	response.WriteHeader(http.StatusOK)
	response.Write(body)
}

func (s *Server) put(response http.ResponseWriter, request *http.Request) {
	k := parseKey(request)
	body, err := io.ReadAll(request.Body)
	if err != nil {
		xhttp.WriteErrorf(response, http.StatusBadRequest, "unable to read body: %s", err)
		return
	}

	s.lock.Lock()
	s.resources[k] = body
	s.lock.Unlock()

	response.Header().Set("Content-Type", "text/plain")
	response.WriteHeader(http.StatusOK)
	response.Write(body)
}

func (s *Server) delete(response http.ResponseWriter, request *http.Request) {
	k := parseKey(request)
	s.Gone(k.path)
	response.WriteHeader(http.StatusOK)
}
