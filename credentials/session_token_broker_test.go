/*
 * Copyright (c) 2026 Michael Morris. All Rights Reserved.
 *
 * Licensed under the MIT license (the "License"). You may not use this file except in compliance
 * with the License. A copy of the License is located at
 *
 * https://github.com/mmmorris1975/aws-mfa-ls/blob/master/LICENSE
 *
 * or in the "license" file accompanying this file. This file is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License
 * for the specific language governing permissions and limitations under the License.
 */

package credentials

import (
	"context"
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/aws/smithy-go"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"strings"
	"testing"
	"time"
)

const testDevice = "arn:aws:iam::123456789012:mfa/test-device"

var testIdentity = Identity{AccessKeyId: "AKIA-TEST", SecretAccessKey: "mockSecret"}

func TestNewSessionTokenBroker(t *testing.T) {
	b := NewSessionTokenBroker(aws.Config{Region: "us-east-1"})

	if b.Client == nil {
		t.Error("invalid Client")
	}

	if b.Logger == nil {
		t.Error("invalid default logger")
	}

	if b.Clock == nil {
		t.Error("invalid default clock")
	}
}

//nolint:gocognit
func TestSessionTokenBroker_Exchange(t *testing.T) {
	device, _ := NewDeviceReference(testDevice)

	t.Run("good", func(t *testing.T) {
		issued := time.Now()
		b, m := newSessionTokenBroker()
		b.Clock = func() time.Time { return issued }
		m.now = b.Clock

		c, err := b.Exchange(context.Background(), testIdentity, device, "123456", 3600*time.Second)
		if err != nil {
			t.Error(err)
			return
		}

		if !c.HasKeys() || c.ProviderName() != SessionTokenProviderName {
			t.Error("invalid credentials")
		}

		if !c.Expiration().Equal(issued.Add(3600*time.Second)) || !c.IssuedAt().Equal(issued) {
			t.Error("expiration mismatch")
		}

		if m.calls != 1 {
			t.Errorf("expected 1 api call, got %d", m.calls)
		}
	})

	t.Run("identity forwarded", func(t *testing.T) {
		b, m := newSessionTokenBroker()

		if _, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour); err != nil {
			t.Error(err)
			return
		}

		if m.identity.AccessKeyID != testIdentity.AccessKeyId || m.identity.SecretAccessKey != testIdentity.SecretAccessKey {
			t.Error("long-term identity was not used for the request")
		}

		if len(m.identity.SessionToken) > 0 {
			t.Error("unexpected session token on identity")
		}
	})

	t.Run("expiration bounds", func(t *testing.T) {
		for _, d := range []time.Duration{SessionTokenDurationMin, time.Hour, 12 * time.Hour, SessionTokenDurationMax} {
			b, _ := newSessionTokenBroker()
			start := time.Now()

			c, err := b.Exchange(context.Background(), testIdentity, device, "123456", d)
			if err != nil {
				t.Error(err)
				return
			}

			if !c.Expiration().After(c.IssuedAt()) || c.Expiration().After(c.IssuedAt().Add(d)) {
				t.Errorf("expiration out of bounds for duration %s", d)
			}

			if c.IssuedAt().Before(start) {
				t.Error("issue time before exchange start")
			}
		}
	})

	t.Run("expiration capped", func(t *testing.T) {
		issued := time.Now()
		b, m := newSessionTokenBroker()
		b.Clock = func() time.Time { return issued }
		m.out = &sts.GetSessionTokenOutput{Credentials: buildCredentials(issued, 2*time.Hour)}

		c, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour)
		if err != nil {
			t.Error(err)
			return
		}

		if !c.Expiration().Equal(issued.Add(time.Hour)) {
			t.Error("expiration was not capped to requested duration")
		}
	})

	t.Run("bad code", func(t *testing.T) {
		b, m := newSessionTokenBroker()

		c, err := b.Exchange(context.Background(), testIdentity, device, "000000", time.Hour)
		if !errors.Is(err, shared.ErrAuthenticationFailed) {
			t.Errorf("unexpected error: %v", err)
		}

		if c != nil {
			t.Error("credentials returned with error")
		}

		if m.calls != 1 {
			t.Error("expected a single api call")
		}
	})

	t.Run("reused code", func(t *testing.T) {
		b, _ := newSessionTokenBroker()

		if _, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour); err != nil {
			t.Error(err)
			return
		}

		if _, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour); !errors.Is(err, shared.ErrAuthenticationFailed) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("malformed code", func(t *testing.T) {
		for _, code := range []string{"", "12345", "1234567", "abcdef", " 123456"} {
			b, m := newSessionTokenBroker()

			_, err := b.Exchange(context.Background(), testIdentity, device, code, time.Hour)
			if !errors.Is(err, shared.ErrAuthenticationFailed) || !errors.Is(err, ErrMalformedCode) {
				t.Errorf("unexpected error for code %q: %v", code, err)
			}

			if m.calls > 0 {
				t.Error("api called with malformed code")
			}
		}
	})

	t.Run("invalid duration", func(t *testing.T) {
		for _, d := range []time.Duration{0, time.Minute, 37 * time.Hour} {
			b, m := newSessionTokenBroker()

			if _, err := b.Exchange(context.Background(), testIdentity, device, "123456", d); !errors.Is(err, shared.ErrInvalidDuration) {
				t.Errorf("unexpected error for duration %s: %v", d, err)
			}

			if m.calls > 0 {
				t.Error("api called with invalid duration")
			}
		}
	})

	t.Run("no device", func(t *testing.T) {
		b, _ := newSessionTokenBroker()

		_, err := b.Exchange(context.Background(), testIdentity, DeviceReference{}, "123456", time.Hour)
		if !errors.Is(err, ErrMfaRequired) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("bad identity", func(t *testing.T) {
		b, m := newSessionTokenBroker()
		id := Identity{AccessKeyId: "ASIA", SecretAccessKey: "sk", SessionToken: "token"}

		if _, err := b.Exchange(context.Background(), id, device, "123456", time.Hour); !errors.Is(err, shared.ErrAuthenticationFailed) {
			t.Errorf("unexpected error: %v", err)
		}

		if m.calls > 0 {
			t.Error("api called with invalid identity")
		}
	})

	t.Run("incomplete response", func(t *testing.T) {
		b, m := newSessionTokenBroker()
		m.out = &sts.GetSessionTokenOutput{Credentials: &types.Credentials{AccessKeyId: aws.String("ASIA")}}

		c, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour)
		if !errors.Is(err, shared.ErrTransientService) || c != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("expired response", func(t *testing.T) {
		b, m := newSessionTokenBroker()
		m.out = &sts.GetSessionTokenOutput{Credentials: buildCredentials(time.Now(), -1*time.Minute)}

		if _, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour); !errors.Is(err, shared.ErrTransientService) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		b, m := newSessionTokenBroker()
		m.err = context.Canceled

		c, err := b.Exchange(ctx, testIdentity, device, "123456", time.Hour)
		if !errors.Is(err, context.Canceled) || shared.Classify(err) != nil || c != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestSessionTokenBroker_Exchange_Errors(t *testing.T) {
	device, _ := NewDeviceReference(testDevice)

	tests := map[string]struct {
		err  error
		kind error
	}{
		"access denied":   {&smithy.GenericAPIError{Code: "AccessDenied"}, shared.ErrAuthenticationFailed},
		"bad key":         {&smithy.GenericAPIError{Code: "InvalidClientTokenId"}, shared.ErrAuthenticationFailed},
		"bad signature":   {&smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}, shared.ErrAuthenticationFailed},
		"code validation": {&smithy.GenericAPIError{Code: "ValidationError", Message: "Value at 'tokenCode' failed"}, shared.ErrAuthenticationFailed},
		"duration":        {&smithy.GenericAPIError{Code: "ValidationError", Message: "Value at 'durationSeconds' failed"}, shared.ErrInvalidDuration},
		"throttled":       {&smithy.GenericAPIError{Code: "Throttling"}, shared.ErrTransientService},
		"network":         {errors.New("dial tcp: i/o timeout"), shared.ErrTransientService},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			b, m := newSessionTokenBroker()
			m.err = tc.err

			c, err := b.Exchange(context.Background(), testIdentity, device, "123456", time.Hour)
			if shared.Classify(err) != tc.kind {
				t.Errorf("kind mismatch: %v", err)
			}

			if !errors.Is(err, tc.err) {
				t.Error("cause was not wrapped")
			}

			if c != nil {
				t.Error("credentials returned with error")
			}
		})
	}
}

func TestSessionTokenBroker_ClampDuration(t *testing.T) {
	sb := new(strings.Builder)
	b, _ := newSessionTokenBroker()
	b.Logger = &builderLogger{sb}

	tests := map[time.Duration]time.Duration{
		0:                  SessionTokenDurationDefault,
		-1 * time.Hour:     SessionTokenDurationDefault,
		1 * time.Second:    SessionTokenDurationMin,
		2 * time.Hour:      2 * time.Hour,
		100 * time.Hour:    SessionTokenDurationMax,
		3600 * time.Second: time.Hour,
	}

	for in, want := range tests {
		if got := b.ClampDuration(in); got != want {
			t.Errorf("ClampDuration(%s) = %s, want %s", in, got, want)
		}
	}

	if !strings.Contains(sb.String(), "too long") || !strings.Contains(sb.String(), "too short") {
		t.Error("missing clamp warnings")
	}
}

func newSessionTokenBroker() (*SessionTokenBroker, *stsMock) {
	m := new(stsMock)
	b := NewSessionTokenBroker(aws.Config{Region: "us-east-1"})
	b.Client = m
	b.Logger = new(shared.DefaultLogger)
	return b, m
}

type builderLogger struct {
	sb *strings.Builder
}

func (l *builderLogger) Debugf(f string, v ...interface{})   { l.write("DEBUG", f, v...) }
func (l *builderLogger) Infof(f string, v ...interface{})    { l.write("INFO", f, v...) }
func (l *builderLogger) Warningf(f string, v ...interface{}) { l.write("WARN", f, v...) }
func (l *builderLogger) Errorf(f string, v ...interface{})   { l.write("ERROR", f, v...) }

func (l *builderLogger) write(lvl, f string, v ...interface{}) {
	l.sb.WriteString(lvl + " ")
	l.sb.WriteString(fmt.Sprintf(f, v...))
	l.sb.WriteString("\n")
}
