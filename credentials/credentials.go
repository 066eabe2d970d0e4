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
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/mmmorris1975/aws-mfa-ls/shared"
	"time"
)

// Credentials is the short-lived, scoped credential issued by the session token exchange.  The fields are not
// exported, a value can not be changed once it is issued.  The secret key and session token are only reachable
// through Value() or Retrieve(), which exist to hand them to the AWS SDK; formatting the type redacts them.
type Credentials struct {
	accessKeyId     string
	secretAccessKey string
	token           string
	issued          time.Time
	expiration      time.Time
	providerName    string
}

// NewCredentials returns a Credentials type from the provided values.  The issued time is the time the exchange
// was started, and must be before expiration for the credentials to be considered valid.
func NewCredentials(accessKeyId, secretAccessKey, token string, issued, expiration time.Time) *Credentials {
	return &Credentials{
		accessKeyId:     accessKeyId,
		secretAccessKey: secretAccessKey,
		token:           token,
		issued:          issued,
		expiration:      expiration,
		providerName:    SessionTokenProviderName,
	}
}

// FromStsCredentials provides a way to take an AWS sts.Credentials and convert it to a Credentials type.
func FromStsCredentials(v *types.Credentials, issued time.Time) *Credentials {
	c := &Credentials{issued: issued, providerName: SessionTokenProviderName}

	if v == nil {
		return c
	}

	if v.AccessKeyId != nil {
		c.accessKeyId = *v.AccessKeyId
	}

	if v.SecretAccessKey != nil {
		c.secretAccessKey = *v.SecretAccessKey
	}

	if v.SessionToken != nil {
		c.token = *v.SessionToken
	}

	if v.Expiration != nil {
		c.expiration = *v.Expiration
	}

	return c
}

// AccessKeyId returns the session access key id.  This value is not secret.
func (c *Credentials) AccessKeyId() string {
	return c.accessKeyId
}

// IssuedAt returns the time the credentials were requested.
func (c *Credentials) IssuedAt() time.Time {
	return c.issued
}

// Expiration returns the time the credentials stop being valid.
func (c *Credentials) Expiration() time.Time {
	return c.expiration
}

// ProviderName returns the name of the component which issued the credentials.
func (c *Credentials) ProviderName() string {
	return c.providerName
}

// HasKeys returns true if the access key, secret key and session token are all present.
func (c *Credentials) HasKeys() bool {
	return c != nil && len(c.accessKeyId) > 0 && len(c.secretAccessKey) > 0 && len(c.token) > 0
}

// Expired returns true if the current time is at or past the expiration time.
func (c *Credentials) Expired() bool {
	return c == nil || !time.Now().Before(c.expiration)
}

// ExpiresIn returns the time remaining until expiration, which is negative for expired credentials.
func (c *Credentials) ExpiresIn() time.Duration {
	return time.Until(c.expiration)
}

// Value returns an aws.Credentials type for programmatic use.
func (c *Credentials) Value() aws.Credentials {
	return aws.Credentials{
		AccessKeyID:     c.accessKeyId,
		SecretAccessKey: c.secretAccessKey,
		SessionToken:    c.token,
		Source:          c.providerName,
		Expires:         c.expiration,
		CanExpire:       true,
	}
}

// Retrieve implements the aws.CredentialsProvider interface, so the credentials can be set directly in an
// aws.Config.  Once the credentials expire, every call fails with shared.ErrAccessDenied.
func (c *Credentials) Retrieve(context.Context) (aws.Credentials, error) {
	if !c.HasKeys() {
		return aws.Credentials{}, shared.Wrap(shared.ErrAccessDenied, ErrInvalidCredentials)
	}

	if c.Expired() {
		return aws.Credentials{}, shared.Wrap(shared.ErrAccessDenied, ErrExpiredCredentials)
	}
	return c.Value(), nil
}

// String implements fmt.Stringer, and never includes the secret key or session token.
func (c *Credentials) String() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprintf("{AccessKeyId: %s, SecretAccessKey: %s, SessionToken: %s, Expiration: %s, ProviderName: %s}",
		c.accessKeyId, redacted, redacted, c.expiration.Format(time.RFC3339), c.providerName)
}

// GoString implements fmt.GoStringer so %#v is redacted as well.
func (c *Credentials) GoString() string {
	return "&credentials.Credentials" + c.String()
}

// Format implements fmt.Formatter, routing every verb through String() so no formatting verb can reach the
// unexported secret fields.
func (c *Credentials) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = fmt.Fprint(f, c.GoString())
		return
	}
	_, _ = fmt.Fprint(f, c.String())
}
