package client

/*
typofuzz — domain typosquatting generator and registration status checker
Copyright (C) 2025  typofuzz contributors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"net/http"
	"testing"
	"time"
)

func TestInitHTTPClientFillsDefaults(t *testing.T) {
	sharedClient = nil
	clientInitialized = false

	InitHTTPClient(&Config{})
	c := GetHTTPClient()

	tr, ok := c.Transport.(*http.Transport)
	if !ok || tr == nil {
		t.Fatalf("expected *http.Transport, got %T", c.Transport)
	}
	if tr.MaxIdleConns == 0 {
		t.Fatalf("expected MaxIdleConns defaulted, got %d", tr.MaxIdleConns)
	}
	if tr.MaxIdleConnsPerHost == 0 {
		t.Fatalf("expected MaxIdleConnsPerHost defaulted, got %d", tr.MaxIdleConnsPerHost)
	}
	if tr.MaxConnsPerHost == 0 {
		t.Fatalf("expected MaxConnsPerHost defaulted, got %d", tr.MaxConnsPerHost)
	}
	if c.Timeout == 0 {
		t.Fatalf("expected RequestTimeout defaulted, got %v", c.Timeout)
	}
}

func TestConfigureHTTPClientOverrides(t *testing.T) {
	sharedClient = nil
	clientInitialized = false

	ConfigureHTTPClient(&Config{
		RequestTimeout:      3 * time.Second,
		MaxIdleConnsPerHost: 2,
	})
	c := GetHTTPClient()

	if c.Timeout != 3*time.Second {
		t.Fatalf("expected 3s request timeout, got %v", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok || tr == nil {
		t.Fatalf("expected *http.Transport, got %T", c.Transport)
	}
	if tr.MaxIdleConnsPerHost != 2 {
		t.Fatalf("expected MaxIdleConnsPerHost=2, got %d", tr.MaxIdleConnsPerHost)
	}
	// Unset fields still get defaults.
	if tr.MaxConnsPerHost == 0 {
		t.Fatalf("expected MaxConnsPerHost defaulted, got %d", tr.MaxConnsPerHost)
	}
}
