package status

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
	"context"
	"errors"
	"testing"
)

// fakeTier returns a fixed outcome or error and records the domains it saw.
type fakeTier struct {
	name    string
	outcome Outcome
	err     error
	seen    []string
}

func (f *fakeTier) Name() string { return f.name }

func (f *fakeTier) Check(_ context.Context, domain string) (Outcome, error) {
	f.seen = append(f.seen, domain)
	return f.outcome, f.err
}

func TestResolveFirstTierWins(t *testing.T) {
	t.Parallel()
	first := &fakeTier{name: "first", outcome: Available}
	second := &fakeTier{name: "second", outcome: Registered}

	r := NewResolverWithTiers(first, second)
	if got := r.Resolve(context.Background(), "example.com"); got != Available {
		t.Errorf("Resolve = %q; want %q", got, Available)
	}
	if len(second.seen) != 0 {
		t.Errorf("second tier was consulted: %v", second.seen)
	}
}

func TestResolveFallsThroughOnError(t *testing.T) {
	t.Parallel()
	first := &fakeTier{name: "first", err: errors.New("no endpoint")}
	second := &fakeTier{name: "second", err: errors.New("unrecognized response")}
	third := &fakeTier{name: "third", outcome: Parked}

	r := NewResolverWithTiers(first, second, third)
	if got := r.Resolve(context.Background(), "example.com"); got != Parked {
		t.Errorf("Resolve = %q; want %q", got, Parked)
	}
	if len(first.seen) != 1 || len(second.seen) != 1 || len(third.seen) != 1 {
		t.Errorf("cascade depth wrong: %d %d %d", len(first.seen), len(second.seen), len(third.seen))
	}
}

func TestResolveAllTiersFail(t *testing.T) {
	t.Parallel()
	r := NewResolverWithTiers(&fakeTier{name: "only", err: errors.New("down")})
	if got := r.Resolve(context.Background(), "example.com"); got != Timeout {
		t.Errorf("Resolve = %q; want %q", got, Timeout)
	}
}

func TestResolveUsesRegistrableDomain(t *testing.T) {
	t.Parallel()
	tier := &fakeTier{name: "only", outcome: Registered}
	r := NewResolverWithTiers(tier)
	r.Resolve(context.Background(), "Login.Secure.Example.COM")

	if len(tier.seen) != 1 || tier.seen[0] != "example.com" {
		t.Errorf("tier saw %v; want [example.com]", tier.seen)
	}
}

func TestResolveCancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tier := &fakeTier{name: "only", outcome: Registered}
	r := NewResolverWithTiers(tier)
	if got := r.Resolve(ctx, "example.com"); got != Timeout {
		t.Errorf("Resolve = %q; want %q", got, Timeout)
	}
	if len(tier.seen) != 0 {
		t.Errorf("tier consulted after cancellation: %v", tier.seen)
	}
}
