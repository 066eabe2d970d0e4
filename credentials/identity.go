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
	"errors"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"regexp"
	"strings"
)

const redacted = "<redacted>"

// IdentityProviderName is the credential source name reported for long-term identity credentials.
const IdentityProviderName = "LongTermIdentity"

var serialRe = regexp.MustCompile(`^[\w+=/:,.@-]{9,256}$`)

// Identity is the long-term IAM user access key pair used to authenticate the session token exchange.
// It is only ever handed to the token service, never to the storage client.
type Identity struct {
	AccessKeyId     string
	SecretAccessKey string
	// SessionToken is only populated to detect (and reject) temporary credentials masquerading as an identity.
	SessionToken string
}

// Validate checks that the Identity holds a complete long-term key pair.
func (i Identity) Validate() error {
	if len(i.AccessKeyId) < 1 || len(i.SecretAccessKey) < 1 {
		return fmt.Errorf("%w: missing access key id or secret key", ErrInvalidCredentials)
	}

	if len(i.SessionToken) > 0 {
		return fmt.Errorf("%w: long-term identity must not carry a session token", ErrInvalidCredentials)
	}
	return nil
}

// String implements fmt.Stringer without exposing the secret key.
func (i Identity) String() string {
	return fmt.Sprintf("{AccessKeyId: %s, SecretAccessKey: %s}", i.AccessKeyId, redacted)
}

// GoString implements fmt.GoStringer without exposing the secret key.
func (i Identity) GoString() string {
	return "credentials.Identity" + i.String()
}

func (i Identity) provider() aws.CredentialsProvider {
	p := awscreds.NewStaticCredentialsProvider(i.AccessKeyId, i.SecretAccessKey, "")
	p.Value.Source = IdentityProviderName
	return p
}

// DeviceReference identifies the MFA device bound to an Identity, either a hardware device serial number, or the
// ARN of a virtual MFA device.  The zero value is an unset reference.
type DeviceReference struct {
	value string
}

// NewDeviceReference validates the provided serial number or ARN and returns it as a DeviceReference.
func NewDeviceReference(s string) (DeviceReference, error) {
	s = strings.TrimSpace(s)
	if len(s) < 1 {
		return DeviceReference{}, ErrMfaRequired
	}

	if arn.IsARN(s) {
		a, err := arn.Parse(s)
		if err != nil {
			return DeviceReference{}, err
		}

		if a.Service != "iam" || !strings.HasPrefix(a.Resource, "mfa/") || len(a.Resource) < 5 {
			return DeviceReference{}, fmt.Errorf("%s is not an IAM virtual MFA device ARN", s)
		}
		return DeviceReference{value: s}, nil
	}

	if !serialRe.MatchString(s) {
		return DeviceReference{}, errors.New("invalid MFA device serial number")
	}
	return DeviceReference{value: s}, nil
}

// IsVirtual returns true if the reference is a virtual MFA device ARN.
func (d DeviceReference) IsVirtual() bool {
	return arn.IsARN(d.value)
}

// IsZero returns true if the reference has not been set.
func (d DeviceReference) IsZero() bool {
	return len(d.value) < 1
}

// String returns the serial number or ARN.
func (d DeviceReference) String() string {
	return d.value
}
