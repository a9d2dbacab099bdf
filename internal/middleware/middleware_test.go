package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/sharemates/internal/auth"
	"github.com/mmynk/sharemates/internal/metrics"
)

type identity struct {
	household   string
	participant string
}

// capture returns a terminal UnaryFunc that records the identity it sees.
func capture(got *identity, err error) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		*got = identity{GetHouseholdID(ctx), GetParticipantID(ctx)}
		if err != nil {
			return nil, err
		}
		return connect.NewResponse(&struct{}{}), nil
	}
}

func requestWith(header string) *connect.Request[struct{}] {
	req := connect.NewRequest(&struct{}{})
	if header != "" {
		req.Header().Set("Authorization", header)
	}
	return req
}

func TestAuthInterceptors(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret-key-for-middleware", time.Hour)
	token, err := jwtManager.Generate("flat-4b", "alice")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		header       string
		optionalWant identity
		requireCode  connect.Code // 0 when the call is let through
	}{
		{"valid token", "Bearer " + token, identity{"flat-4b", "alice"}, 0},
		{"no header", "", identity{}, connect.CodeUnauthenticated},
		{"garbage token", "Bearer nope", identity{}, connect.CodeUnauthenticated},
		{"wrong scheme", "Basic " + token, identity{}, connect.CodeUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got identity
			_, err := OptionalAuth(jwtManager)(capture(&got, nil))(context.Background(), requestWith(tt.header))
			if err != nil {
				t.Fatalf("OptionalAuth returned error: %v", err)
			}
			if got != tt.optionalWant {
				t.Errorf("OptionalAuth identity = %+v, want %+v", got, tt.optionalWant)
			}

			got = identity{}
			_, err = RequireAuth(jwtManager)(capture(&got, nil))(context.Background(), requestWith(tt.header))
			if tt.requireCode == 0 {
				if err != nil {
					t.Errorf("RequireAuth rejected valid token: %v", err)
				}
				return
			}
			if connect.CodeOf(err) != tt.requireCode {
				t.Errorf("RequireAuth code = %v, want %v", connect.CodeOf(err), tt.requireCode)
			}
		})
	}
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New()
	var got identity

	ok := MetricsInterceptor(m)(capture(&got, nil))
	fail := MetricsInterceptor(m)(capture(&got, connect.NewError(connect.CodeNotFound, errors.New("missing"))))

	if _, err := ok(context.Background(), requestWith("")); err != nil {
		t.Fatal(err)
	}
	if _, err := fail(context.Background(), requestWith("")); err == nil {
		t.Fatal("expected error to pass through")
	}

	if n := testutil.CollectAndCount(m.RPCDuration); n != 2 {
		t.Errorf("expected 2 label sets (ok, not_found), got %d", n)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	var got identity
	ctx := WithIdentity(context.Background(), "flat-4b", "bob")
	wantErr := connect.NewError(connect.CodeInvalidArgument, errors.New("bad"))

	_, err := LoggingInterceptor()(capture(&got, wantErr))(ctx, requestWith(""))
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
	if got.participant != "bob" {
		t.Errorf("identity lost: %+v", got)
	}
}
