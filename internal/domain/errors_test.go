package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error_WithAndWithoutWrapped(t *testing.T) {
	plain := NewNotFound("city not found")
	if plain.Error() != "city not found" {
		t.Errorf("Error() = %q, want %q", plain.Error(), "city not found")
	}

	wrapped := NewNetwork(errors.New("dial tcp: connection refused"))
	want := "network error: dial tcp: connection refused"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestAppError_Unwrap_ExposesCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewSchema("decode weather response", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}
}

func TestCodeHelpers_MatchOnlyTheirCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"validation matches", NewValidation("amount must be non-negative"), IsValidation, true},
		{"validation rejects not-found", NewNotFound("x"), IsValidation, false},
		{"not-found matches", NewNotFound("city not found"), IsNotFound, true},
		{"network matches", NewNetwork(errors.New("timeout")), IsNetwork, true},
		{"upstream matches", NewUpstream(429, "rate limited"), IsUpstream, true},
		{"schema matches", NewSchema("bad body", nil), IsSchema, true},
		{"configuration matches", NewConfiguration("key missing"), IsConfiguration, true},
		{"plain error matches nothing", errors.New("boom"), IsUpstream, false},
		{"nil matches nothing", nil, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeHelpers_MatchWrappedErrors(t *testing.T) {
	err := fmt.Errorf("fetch characters: %w", NewUpstream(503, "service unavailable"))

	if !IsUpstream(err) {
		t.Error("expected IsUpstream to match a wrapped upstream error")
	}
	if got := UpstreamStatus(err); got != 503 {
		t.Errorf("UpstreamStatus = %d, want 503", got)
	}
}

func TestHTTPStatusCode_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation is 400", NewValidation("q required"), http.StatusBadRequest},
		{"not-found is 404", NewNotFound("gone"), http.StatusNotFound},
		{"network is 500", NewNetwork(errors.New("refused")), http.StatusInternalServerError},
		{"upstream keeps original status", NewUpstream(418, "teapot"), 418},
		{"schema is 502", NewSchema("bad body", nil), http.StatusBadGateway},
		{"configuration is 400", NewConfiguration("no key"), http.StatusBadRequest},
		{"plain error is 500", errors.New("boom"), http.StatusInternalServerError},
		{"nil is 500", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWrap_KeepsClassificationAndStatus(t *testing.T) {
	err := Wrap(NewUpstream(502, "bad gateway"), "fetch top cryptos")

	if !IsUpstream(err) {
		t.Fatal("expected wrapped error to stay classified as upstream")
	}
	if got := HTTPStatusCode(err); got != 502 {
		t.Errorf("HTTPStatusCode = %d, want 502", got)
	}
	want := "fetch top cryptos: bad gateway"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil, "anything") != nil {
		t.Error("expected nil")
	}
}
